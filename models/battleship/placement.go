package battleship

import (
	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

// Trial caps per entity.
const (
	EarthPlacementTrials = 250
	TowerPlacementTrials = 250
	ShipPlacementTrials  = 25
)

func (g *Grid) placeEarths(sizes []int) error {
	for earthIdx, size := range sizes {
		earth := NewEarth(size)
		if !g.placeEarthRandom(&earth) {
			return cerr.ErrPlacementFailed(EntityEarth, earthIdx, size, EarthPlacementTrials)
		}
		g.earths = append(g.earths, earth)
	}
	return nil
}

func (g *Grid) placeTowers(count int) error {
	for towerIdx := 0; towerIdx < count; towerIdx++ {
		tower := NewTower()
		if !g.placeTowerRandom(&tower, towerIdx) {
			return cerr.ErrPlacementFailed(EntityTower, towerIdx, tower.Size, TowerPlacementTrials)
		}
		g.towers = append(g.towers, tower)
	}
	return nil
}

func (g *Grid) placeShips(sizes []int) error {
	for shipIdx, size := range sizes {
		ship := NewShip(size)
		if !g.placeShipRandom(&ship, shipIdx) {
			return cerr.ErrPlacementFailed(EntityShip, shipIdx, size, ShipPlacementTrials)
		}
		g.ships = append(g.ships, ship)
	}
	return nil
}

// The square is kept off the last row and column, so the anchor range
// is one smaller than a plain fit would allow.
func (g *Grid) placeEarthRandom(earth *Earth) bool {
	xMax := g.cols - earth.Size
	yMax := g.rows - earth.Size

	// Cannot fit anywhere; every trial would be rejected.
	if xMax <= 0 || yMax <= 0 {
		return false
	}

	for i := 0; i < EarthPlacementTrials; i++ {
		earth.X = g.rng.Intn(xMax)
		earth.Y = g.rng.Intn(yMax)

		if !g.earthOverlaps(*earth) {
			g.fillEarth(*earth)
			return true
		}
	}
	return false
}

func (g *Grid) earthOverlaps(earth Earth) bool {
	for _, c := range earth.Footprint() {
		cell := g.cells[g.Index(c.X, c.Y)]
		if cell.IsShip() || cell.IsEarth() {
			return true
		}
	}
	return false
}

func (g *Grid) fillEarth(earth Earth) {
	for _, c := range earth.Footprint() {
		g.cells[g.Index(c.X, c.Y)] = EarthCell()
	}
}

// A tower must stand on an earth cell itself, being next to one
// is not enough.
func (g *Grid) placeTowerRandom(tower *Tower, towerIdx int) bool {
	for i := 0; i < TowerPlacementTrials; i++ {
		tower.X = g.rng.Intn(g.cols)
		tower.Y = g.rng.Intn(g.rows)

		index := g.Index(tower.X, tower.Y)
		cell := g.cells[index]
		if !cell.IsTower() && cell.IsEarth() {
			g.cells[index] = TowerCell(towerIdx)
			return true
		}
	}
	return false
}

func (g *Grid) placeShipRandom(ship *Ship, shipIdx int) bool {
	for i := 0; i < ShipPlacementTrials; i++ {
		ship.Horizontal = g.rng.Intn(2) == 0

		xMax, yMax := g.cols, g.rows
		if ship.Horizontal {
			xMax -= ship.Size - 1
		} else {
			yMax -= ship.Size - 1
		}

		// Too long for this orientation; the trial is spent.
		if xMax <= 0 || yMax <= 0 {
			continue
		}

		ship.X = g.rng.Intn(xMax)
		ship.Y = g.rng.Intn(yMax)

		if g.canPlaceShip(*ship) {
			g.fillShip(*ship, shipIdx)
			return true
		}
	}
	return false
}

func (g *Grid) canPlaceShip(ship Ship) bool {
	return !g.shipOverlaps(ship) && !g.shipAdjacent(ship) && g.isPosWater(ship)
}

func (g *Grid) shipOverlaps(ship Ship) bool {
	for _, c := range ship.Footprint() {
		if g.cells[g.Index(c.X, c.Y)].IsShip() {
			return true
		}
	}
	return false
}

// Checks the box one cell wider than the ship on every side, clipped
// to the grid. Ships may not touch, diagonals included.
func (g *Grid) shipAdjacent(ship Ship) bool {
	x1, y1 := ship.X-1, ship.Y-1
	x2, y2 := ship.X+1, ship.Y+ship.Size
	if ship.Horizontal {
		x2, y2 = ship.X+ship.Size, ship.Y+1
	}

	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			if !g.InBounds(x, y) {
				continue
			}
			if g.cells[g.Index(x, y)].IsShip() {
				return true
			}
		}
	}
	return false
}

func (g *Grid) isPosWater(ship Ship) bool {
	for _, c := range ship.Footprint() {
		if !g.cells[g.Index(c.X, c.Y)].IsWater() {
			return false
		}
	}
	return true
}

func (g *Grid) fillShip(ship Ship, shipIdx int) {
	for _, c := range ship.Footprint() {
		g.cells[g.Index(c.X, c.Y)] = ShipCell(shipIdx)
	}
}
