package battleship

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

const (
	DefaultGridRows = 30
	DefaultGridCols = 40
	DefaultTowers   = 3
)

// Settings is everything the grid needs to lay out one player side.
type Settings struct {
	GridRows int   `yaml:"grid_rows"`
	GridCols int   `yaml:"grid_cols"`
	Earths   []int `yaml:"earths"`
	Towers   int   `yaml:"towers"`
	Ships    []int `yaml:"ships"`
}

func DefaultSettings() Settings {
	return Settings{
		GridRows: DefaultGridRows,
		GridCols: DefaultGridCols,
		Earths:   []int{5, 4, 4, 3, 3},
		Towers:   DefaultTowers,
		Ships:    []int{5, 4, 3, 3, 2},
	}
}

// LoadSettings reads a yaml settings file on top of DefaultSettings,
// so keys missing from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate only rejects malformed values. A config that is well formed
// but too crowded for the grid is caught by placement instead.
func (s Settings) Validate() error {
	if s.GridRows <= 0 || s.GridCols <= 0 {
		return cerr.ErrInvalidGridDimensions(s.GridRows, s.GridCols)
	}
	for _, size := range s.Earths {
		if size <= 0 {
			return cerr.ErrInvalidEntitySize(EntityEarth, size)
		}
	}
	if s.Towers < 0 {
		return cerr.ErrInvalidTowerCount(s.Towers)
	}
	for _, size := range s.Ships {
		if size <= 0 {
			return cerr.ErrInvalidEntitySize(EntityShip, size)
		}
	}
	return nil
}
