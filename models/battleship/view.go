package battleship

import "strings"

const (
	GlyphWater = '~'
	GlyphEarth = '#'
	GlyphTower = 'T'
	GlyphShip  = '='
	GlyphHit   = 'X'
	GlyphMiss  = 'o'
	GlyphSunk  = '@'
)

// Glyph returns the character for one cell. Earths and towers are
// always visible. Ships only show once sunk unless reveal is set.
func (g *Grid) Glyph(index int, reveal bool) rune {
	cell := g.cells[index]

	switch cell.Kind {
	case CellShip:
		if g.ships[cell.Index].IsSunk() {
			return GlyphSunk
		}
	case CellTower:
		if g.towers[cell.Index].IsSunk() {
			return GlyphSunk
		}
	}

	switch g.shots[index] {
	case ShotHit:
		return GlyphHit
	case ShotMiss:
		return GlyphMiss
	}

	switch cell.Kind {
	case CellEarth:
		return GlyphEarth
	case CellTower:
		return GlyphTower
	case CellShip:
		if reveal {
			return GlyphShip
		}
	}
	return GlyphWater
}

// String renders the grid with every ship revealed, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.rows)

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			sb.WriteRune(g.Glyph(g.Index(x, y), true))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
