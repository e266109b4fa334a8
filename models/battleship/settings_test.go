package battleship

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	defaults := DefaultSettings()

	tests := []struct {
		name        string
		content     string
		expected    Settings
		expectedErr bool
	}{
		{
			name:     "empty file keeps defaults",
			content:  "",
			expected: defaults,
		},
		{
			name:    "full file",
			content: "grid_rows: 10\ngrid_cols: 12\nearths: [3, 2]\ntowers: 2\nships: [4, 3]\n",
			expected: Settings{
				GridRows: 10,
				GridCols: 12,
				Earths:   []int{3, 2},
				Towers:   2,
				Ships:    []int{4, 3},
			},
		},
		{
			name:    "partial file",
			content: "grid_rows: 10\ngrid_cols: 10\ntowers: 0\n",
			expected: Settings{
				GridRows: 10,
				GridCols: 10,
				Earths:   defaults.Earths,
				Towers:   0,
				Ships:    defaults.Ships,
			},
		},
		{
			name:        "negative size",
			content:     "ships: [3, -1]\n",
			expectedErr: true,
		},
		{
			name:        "not yaml",
			content:     "grid_rows: [oops\n",
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			settings, err := LoadSettings(writeSettingsFile(t, test.content))
			if test.expectedErr {
				if err == nil {
					t.Fatalf("expected error\tgot settings: %+v", settings)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(settings, test.expected) {
				t.Fatalf("expected: %+v\tgot: %+v", test.expected, settings)
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		valid    bool
	}{
		{name: "defaults", settings: DefaultSettings(), valid: true},
		{name: "infeasible but well formed", settings: Settings{GridRows: 10, GridCols: 10, Ships: []int{12}}, valid: true},
		{name: "zero cols", settings: Settings{GridRows: 10}, valid: false},
		{name: "zero earth", settings: Settings{GridRows: 10, GridCols: 10, Earths: []int{0}}, valid: false},
		{name: "negative towers", settings: Settings{GridRows: 10, GridCols: 10, Towers: -1}, valid: false},
		{name: "zero ship", settings: Settings{GridRows: 10, GridCols: 10, Ships: []int{2, 0}}, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.settings.Validate()
			if test.valid && err != nil {
				t.Fatalf("expected valid\tgot: %v", err)
			}
			if !test.valid && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
