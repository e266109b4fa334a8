package battleship

const EntityShip = "ship"

type Ship struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Size       int  `json:"size"`
	Horizontal bool `json:"horizontal"`
	Hits       int  `json:"hits"`
}

func NewShip(size int) Ship {
	return Ship{Size: size}
}

func (sh *Ship) GotHit() {
	sh.Hits++
}

func (sh Ship) IsSunk() bool {
	return sh.Hits >= sh.Size
}

// Footprint returns the cells covered by the ship, starting at
// the anchor.
func (sh Ship) Footprint() []Coordinates {
	coords := make([]Coordinates, 0, sh.Size)
	for i := 0; i < sh.Size; i++ {
		if sh.Horizontal {
			coords = append(coords, NewCoordinates(sh.X+i, sh.Y))
		} else {
			coords = append(coords, NewCoordinates(sh.X, sh.Y+i))
		}
	}
	return coords
}
