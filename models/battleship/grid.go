package battleship

import (
	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

// Rand is the random source placement draws from. *math/rand.Rand
// satisfies it; tests swap in a seeded or scripted one.
type Rand interface {
	Intn(n int) int
}

// Grid is one player's side of the board: who owns each cell, what
// was shot where, and the ships, towers and earths placed on it.
//
// Grid is not safe for concurrent use. Callers serialize shots per grid.
type Grid struct {
	rows   int
	cols   int
	cells  []Cell
	shots  []ShotState
	ships  []Ship
	towers []Tower
	earths []Earth
	rng    Rand
}

func newEmptyGrid(rows, cols int, rng Rand) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		shots: make([]ShotState, rows*cols),
		rng:   rng,
	}

	for i := range g.cells {
		g.cells[i] = WaterCell()
	}
	return g
}

// NewGrid lays out earths, then towers, then ships. Towers need the
// earths to stand on and ships must avoid both, so the order is fixed.
// If any entity runs out of trials the whole grid is rejected with an
// error wrapping cerr.ErrPlacementFailure.
func NewGrid(settings Settings, rng Rand) (*Grid, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	g := newEmptyGrid(settings.GridRows, settings.GridCols, rng)

	if err := g.placeEarths(settings.Earths); err != nil {
		return nil, err
	}
	if err := g.placeTowers(settings.Towers); err != nil {
		return nil, err
	}
	if err := g.placeShips(settings.Ships); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Len() int  { return len(g.cells) }

func (g *Grid) Index(x, y int) int {
	return y*g.cols + x
}

func (g *Grid) CoordinatesOf(index int) Coordinates {
	return NewCoordinates(index%g.cols, index/g.cols)
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

func (g *Grid) validIndex(index int) error {
	if index < 0 || index >= len(g.cells) {
		return cerr.ErrIndexOutOfGridBound(index, len(g.cells))
	}
	return nil
}

func (g *Grid) CellAt(index int) (Cell, error) {
	if err := g.validIndex(index); err != nil {
		return Cell{}, err
	}
	return g.cells[index], nil
}

func (g *Grid) ShotAt(index int) (ShotState, error) {
	if err := g.validIndex(index); err != nil {
		return ShotNone, err
	}
	return g.shots[index], nil
}

// The accessors below hand out copies so the transport side can
// serialize them without touching grid state.

func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

func (g *Grid) Shots() []ShotState {
	return append([]ShotState(nil), g.shots...)
}

func (g *Grid) Ships() []Ship {
	return append([]Ship(nil), g.ships...)
}

func (g *Grid) Towers() []Tower {
	return append([]Tower(nil), g.towers...)
}

func (g *Grid) Earths() []Earth {
	return append([]Earth(nil), g.earths...)
}
