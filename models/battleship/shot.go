package battleship

// Shoot resolves a shot at a linear index and reports whether it hit a
// ship or a tower. Shooting the same cell again is not rejected here;
// it resolves the same way and counts another hit.
func (g *Grid) Shoot(index int) (bool, error) {
	if err := g.validIndex(index); err != nil {
		return false, err
	}

	cell := g.cells[index]
	switch cell.Kind {
	case CellShip:
		g.ships[cell.Index].GotHit()
		g.shots[index] = ShotHit
		return true, nil

	case CellTower:
		g.towers[cell.Index].GotHit()
		g.shots[index] = ShotHit
		return true, nil

	default:
		g.shots[index] = ShotMiss
		return false, nil
	}
}

func (g *Grid) SunkShips() []Ship {
	sunk := make([]Ship, 0, len(g.ships))
	for _, ship := range g.ships {
		if ship.IsSunk() {
			sunk = append(sunk, ship)
		}
	}
	return sunk
}

func (g *Grid) SunkTowers() []Tower {
	sunk := make([]Tower, 0, len(g.towers))
	for _, tower := range g.towers {
		if tower.IsSunk() {
			sunk = append(sunk, tower)
		}
	}
	return sunk
}

func (g *Grid) ShipsLeft() int {
	var left int
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			left++
		}
	}
	return left
}

func (g *Grid) TowersLeft() int {
	var left int
	for _, tower := range g.towers {
		if !tower.IsSunk() {
			left++
		}
	}
	return left
}

// The board is cleared once every ship is sunk. Towers do not
// have to fall.
func (g *Grid) IsCleared() bool {
	return g.ShipsLeft() == 0
}
