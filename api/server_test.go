package api

import (
	"testing"

	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

func TestServerOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantPanic bool
		wantAddr  string
		wantStage string
	}{
		{
			name:      "defaults",
			wantAddr:  "0.0.0.0:8000",
			wantStage: StageDev,
		},
		{
			name:      "port and stage",
			opts:      []Option{WithPort(9191), WithStage(StageProd)},
			wantAddr:  "0.0.0.0:9191",
			wantStage: StageProd,
		},
		{
			name:      "invalid port",
			opts:      []Option{WithPort(-1)},
			wantPanic: true,
		},
		{
			name:      "invalid stage",
			opts:      []Option{WithStage("staging")},
			wantPanic: true,
		},
		{
			name:      "invalid settings",
			opts:      []Option{WithSettings(testSettingsWithRows(0))},
			wantPanic: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if test.wantPanic && r == nil {
					t.Fatal("expected panic")
				}
				if !test.wantPanic && r != nil {
					t.Fatalf("unexpected panic: %v", r)
				}
			}()

			server := NewServer(test.opts...)
			if server.Addr() != test.wantAddr {
				t.Fatalf("expected addr: %s\tgot: %s", test.wantAddr, server.Addr())
			}
			if server.Stage() != test.wantStage {
				t.Fatalf("expected stage: %s\tgot: %s", test.wantStage, server.Stage())
			}
		})
	}
}

func testSettingsWithRows(rows int) mb.Settings {
	settings := testSettings
	settings.GridRows = rows
	return settings
}
