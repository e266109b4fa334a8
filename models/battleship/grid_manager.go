package battleship

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

type GridManager interface {
	CreateGrid(seed int64) (string, *Grid, error)
	GetGrid(gridUuid string) (*Grid, error)
	TerminateGrid(gridUuid string)
	Settings() Settings
}

type BattleshipGridManager struct {
	settings Settings
	grids    map[string]*Grid
	mu       sync.RWMutex
	newId    func() string
}

var _ GridManager = (*BattleshipGridManager)(nil)

func NewBattleshipGridManager(settings Settings) *BattleshipGridManager {
	return &BattleshipGridManager{
		settings: settings,
		grids:    make(map[string]*Grid, 10),
		newId:    func() string { return uuid.NewString()[:6] },
	}
}

func (bgm *BattleshipGridManager) Settings() Settings {
	return bgm.settings
}

// Each grid gets its own seeded source, so a seed reproduces
// the whole layout.
func (bgm *BattleshipGridManager) CreateGrid(seed int64) (string, *Grid, error) {
	grid, err := NewGrid(bgm.settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return "", nil, err
	}

	bgm.mu.Lock()
	// Short ids do collide; a live grid is never replaced
	gridUuid := bgm.newId()
	for {
		if _, taken := bgm.grids[gridUuid]; !taken {
			break
		}
		gridUuid = bgm.newId()
	}
	bgm.grids[gridUuid] = grid
	bgm.mu.Unlock()

	return gridUuid, grid, nil
}

func (bgm *BattleshipGridManager) GetGrid(gridUuid string) (*Grid, error) {
	bgm.mu.RLock()
	grid, prs := bgm.grids[gridUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGridNotExists(gridUuid)
	}

	return grid, nil
}

func (bgm *BattleshipGridManager) TerminateGrid(gridUuid string) {
	bgm.mu.Lock()
	delete(bgm.grids, gridUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGridManager) CountGrids() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.grids)
}
