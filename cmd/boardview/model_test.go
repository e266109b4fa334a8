package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

var boardSettings = mb.Settings{
	GridRows: 10,
	GridCols: 10,
	Earths:   []int{3},
	Towers:   1,
	Ships:    []int{2},
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	next, _ := m.Update(msg)
	updated, ok := next.(model)
	if !ok {
		t.Fatalf("expected model\tgot: %T", next)
	}
	return updated
}

func TestCursorMovement(t *testing.T) {
	m := newModel(boardSettings, 1)
	if m.err != nil {
		t.Fatal(m.err)
	}

	tests := []struct {
		name  string
		key   tea.KeyMsg
		wantX int
		wantY int
	}{
		{name: "left clamps at zero", key: tea.KeyMsg{Type: tea.KeyLeft}, wantX: 0, wantY: 0},
		{name: "up clamps at zero", key: tea.KeyMsg{Type: tea.KeyUp}, wantX: 0, wantY: 0},
		{name: "right", key: tea.KeyMsg{Type: tea.KeyRight}, wantX: 1, wantY: 0},
		{name: "down with j", key: runeKey('j'), wantX: 1, wantY: 1},
		{name: "left with h", key: runeKey('h'), wantX: 0, wantY: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m = update(t, m, test.key)
			if m.cursorX != test.wantX || m.cursorY != test.wantY {
				t.Fatalf("expected cursor: (%d, %d)\tgot: (%d, %d)", test.wantX, test.wantY, m.cursorX, m.cursorY)
			}
		})
	}

	m.cursorX, m.cursorY = boardSettings.GridCols-1, boardSettings.GridRows-1
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursorX != boardSettings.GridCols-1 || m.cursorY != boardSettings.GridRows-1 {
		t.Fatalf("cursor left the grid: (%d, %d)", m.cursorX, m.cursorY)
	}
}

func TestShootFromBoard(t *testing.T) {
	m := newModel(boardSettings, 2)
	if m.err != nil {
		t.Fatal(m.err)
	}

	ship := m.grid.Ships()[0]
	footprint := ship.Footprint()

	m.cursorX, m.cursorY = footprint[0].X, footprint[0].Y
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.status, "hit") {
		t.Fatalf("expected hit status\tgot: %s", m.status)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.status, "already fired") {
		t.Fatalf("expected already fired status\tgot: %s", m.status)
	}
	if m.shots != 1 {
		t.Fatalf("expected shots: 1\tgot: %d", m.shots)
	}

	m.cursorX, m.cursorY = footprint[1].X, footprint[1].Y
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !strings.HasPrefix(m.status, "all ships sunk") {
		t.Fatalf("expected cleared status\tgot: %s", m.status)
	}
	if m.grid.ShipsLeft() != 0 {
		t.Fatalf("expected ships left: 0\tgot: %d", m.grid.ShipsLeft())
	}
}

func TestNewBoardAndQuit(t *testing.T) {
	m := newModel(boardSettings, 3)
	m = update(t, m, runeKey('n'))
	if m.seed != 4 {
		t.Fatalf("expected seed: 4\tgot: %d", m.seed)
	}
	if m.shots != 0 {
		t.Fatalf("expected fresh board\tgot shots: %d", m.shots)
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message")
	}
}

func TestViewShowsPlacementError(t *testing.T) {
	crowded := mb.Settings{GridRows: 4, GridCols: 4, Ships: []int{6}}
	m := newModel(crowded, 1)
	if m.err == nil {
		t.Fatal("expected placement error")
	}
	if !strings.Contains(m.View(), "placement failure") {
		t.Fatalf("expected placement failure in view\tgot: %s", m.View())
	}

	// Movement is ignored without a grid
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursorX != 0 {
		t.Fatalf("expected cursor to stay\tgot: %d", m.cursorX)
	}
}

func TestViewRendersCursor(t *testing.T) {
	m := newModel(boardSettings, 5)
	view := m.View()
	if !strings.Contains(view, "seed: 5") {
		t.Fatalf("expected seed in view\tgot: %s", view)
	}
	if strings.Count(view, "[") != 1 {
		t.Fatalf("expected a single cursor cell\tgot: %s", view)
	}
}
