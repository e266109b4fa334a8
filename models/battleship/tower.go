package battleship

const (
	EntityTower = "tower"
	TowerSize   = 1
)

type Tower struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
	Hits int `json:"hits"`
}

func NewTower() Tower {
	return Tower{Size: TowerSize}
}

func (t *Tower) GotHit() {
	t.Hits++
}

func (t Tower) IsSunk() bool {
	return t.Hits >= t.Size
}
