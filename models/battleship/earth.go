package battleship

const EntityEarth = "earth"

// Earth is a square block of terrain anchored at its top-left cell.
// It is never hit; it only blocks ships and carries towers.
type Earth struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

func NewEarth(size int) Earth {
	return Earth{Size: size}
}

func (e Earth) Footprint() []Coordinates {
	coords := make([]Coordinates, 0, e.Size*e.Size)
	for y := e.Y; y < e.Y+e.Size; y++ {
		for x := e.X; x < e.X+e.Size; x++ {
			coords = append(coords, NewCoordinates(x, y))
		}
	}
	return coords
}
