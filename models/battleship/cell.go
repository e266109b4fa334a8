package battleship

type CellKind uint8

const (
	CellWater CellKind = iota
	CellEarth
	CellTower
	CellShip
)

// Cell records which entity owns a grid position. Index points into
// the tower or ship registry and is only meaningful for CellTower and
// CellShip.
type Cell struct {
	Kind  CellKind `json:"kind"`
	Index int      `json:"index,omitempty"`
}

func WaterCell() Cell          { return Cell{Kind: CellWater} }
func EarthCell() Cell          { return Cell{Kind: CellEarth} }
func TowerCell(index int) Cell { return Cell{Kind: CellTower, Index: index} }
func ShipCell(index int) Cell  { return Cell{Kind: CellShip, Index: index} }
func (c Cell) IsWater() bool   { return c.Kind == CellWater }
func (c Cell) IsEarth() bool   { return c.Kind == CellEarth }
func (c Cell) IsTower() bool   { return c.Kind == CellTower }
func (c Cell) IsShip() bool    { return c.Kind == CellShip }

type ShotState uint8

const (
	ShotNone ShotState = iota
	ShotMiss
	ShotHit
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}
