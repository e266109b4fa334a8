package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrShootFailed = "shoot operation failed"
)

var (
	// Returned (wrapped) when an entity runs out of placement trials.
	// The settings are infeasible for the grid size.
	ErrPlacementFailure = errors.New("placement failure")
	ErrInvalidIndex     = errors.New("invalid grid index")
)

func ErrPlacementFailed(entity string, entityIdx, size, trials int) error {
	return fmt.Errorf("%w: could not place %s no. %d (size %d) after %d trials", ErrPlacementFailure, entity, entityIdx, size, trials)
}

func ErrIndexOutOfGridBound(index, cells int) error {
	return fmt.Errorf("%w: index %d out of grid bound\tcells: %d", ErrInvalidIndex, index, cells)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of grid bound\tx: %d\ty: %d", x, y)
}

func ErrShotPositionAlreadyFired(x, y int) error {
	return fmt.Errorf("this position is already shot in previous rounds\tx: %d\ty: %d", x, y)
}

func ErrGridNotExists(gridUuid string) error {
	return fmt.Errorf("grid with this uuid does not exist, uuid: %s", gridUuid)
}

func ErrGridNotCreated() error {
	return fmt.Errorf("no grid is created for this session yet")
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrInvalidGridDimensions(rows, cols int) error {
	return fmt.Errorf("grid dimensions must be positive\trows: %d\tcols: %d", rows, cols)
}

func ErrInvalidEntitySize(entity string, size int) error {
	return fmt.Errorf("size of %s must be positive, got: %d", entity, size)
}

func ErrInvalidTowerCount(count int) error {
	return fmt.Errorf("number of towers cannot be negative, got: %d", count)
}
