package battleship

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

func TestGridManager(t *testing.T) {
	bgm := NewBattleshipGridManager(denseSettings())

	gridUuid, grid, err := bgm.CreateGrid(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(gridUuid) != 6 {
		t.Fatalf("expected uuid length: 6\tgot: %d", len(gridUuid))
	}

	fetched, err := bgm.GetGrid(gridUuid)
	if err != nil {
		t.Fatal(err)
	}
	if fetched != grid {
		t.Fatal("fetched grid is not the created one")
	}

	otherUuid, other, err := bgm.CreateGrid(3)
	if err != nil {
		t.Fatal(err)
	}
	if otherUuid == gridUuid {
		t.Fatal("expected distinct grid uuids")
	}
	if !reflect.DeepEqual(grid.Cells(), other.Cells()) {
		t.Fatal("same seed produced different layouts")
	}
	if bgm.CountGrids() != 2 {
		t.Fatalf("expected grids: 2\tgot: %d", bgm.CountGrids())
	}

	bgm.TerminateGrid(gridUuid)
	if _, err := bgm.GetGrid(gridUuid); err == nil {
		t.Fatal("expected error for terminated grid")
	}
	if bgm.CountGrids() != 1 {
		t.Fatalf("expected grids: 1\tgot: %d", bgm.CountGrids())
	}
}

func TestGridManagerPlacementFailure(t *testing.T) {
	bgm := NewBattleshipGridManager(Settings{GridRows: 10, GridCols: 10, Ships: []int{12}})

	_, _, err := bgm.CreateGrid(1)
	if !errors.Is(err, cerr.ErrPlacementFailure) {
		t.Fatalf("expected placement failure\tgot: %v", err)
	}
	if bgm.CountGrids() != 0 {
		t.Fatalf("failed grids must not be stored\tgot: %d", bgm.CountGrids())
	}
}

func TestGridManagerIdCollision(t *testing.T) {
	bgm := NewBattleshipGridManager(denseSettings())

	ids := []string{"aaaaaa", "aaaaaa", "aaaaaa", "bbbbbb"}
	bgm.newId = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	firstUuid, first, err := bgm.CreateGrid(1)
	if err != nil {
		t.Fatal(err)
	}
	secondUuid, _, err := bgm.CreateGrid(2)
	if err != nil {
		t.Fatal(err)
	}

	if firstUuid != "aaaaaa" || secondUuid != "bbbbbb" {
		t.Fatalf("expected uuids: aaaaaa, bbbbbb\tgot: %s, %s", firstUuid, secondUuid)
	}

	fetched, err := bgm.GetGrid(firstUuid)
	if err != nil {
		t.Fatal(err)
	}
	if fetched != first {
		t.Fatal("colliding id replaced an existing grid")
	}
	if bgm.CountGrids() != 2 {
		t.Fatalf("expected grids: 2\tgot: %d", bgm.CountGrids())
	}
}
