package battleship

import "testing"

func TestGlyph(t *testing.T) {
	g := newScenarioGrid()
	_, _ = g.Shoot(22)
	_, _ = g.Shoot(99)
	_, _ = g.Shoot(58)
	_, _ = g.Shoot(68)

	tests := []struct {
		name     string
		index    int
		reveal   bool
		expected rune
	}{
		{name: "hidden ship", index: 23, reveal: false, expected: GlyphWater},
		{name: "revealed ship", index: 23, reveal: true, expected: GlyphShip},
		{name: "hit", index: 22, reveal: false, expected: GlyphHit},
		{name: "miss", index: 99, reveal: false, expected: GlyphMiss},
		{name: "sunk ship", index: 58, reveal: false, expected: GlyphSunk},
		{name: "tower", index: 0, reveal: false, expected: GlyphTower},
		{name: "earth", index: 1, reveal: false, expected: GlyphEarth},
		{name: "water", index: 55, reveal: true, expected: GlyphWater},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := g.Glyph(test.index, test.reveal); got != test.expected {
				t.Fatalf("expected glyph: %q\tgot: %q", test.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	g := newEmptyGrid(2, 3, &scriptedRand{})
	g.fillShip(Ship{X: 0, Y: 1, Size: 2, Horizontal: true}, 0)
	g.ships = append(g.ships, Ship{X: 0, Y: 1, Size: 2, Horizontal: true})

	expected := "~~~\n==~\n"
	if got := g.String(); got != expected {
		t.Fatalf("expected:\n%s\tgot:\n%s", expected, got)
	}
}
