package main

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

type model struct {
	settings mb.Settings
	seed     int64
	grid     *mb.Grid
	err      error

	cursorX int
	cursorY int
	shots   int
	reveal  bool
	status  string
}

func newModel(settings mb.Settings, seed int64) model {
	m := model{settings: settings, seed: seed}
	m.grid, m.err = mb.NewGrid(settings, rand.New(rand.NewSource(seed)))
	m.status = "new board"
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		return newModel(m.settings, m.seed+1), nil
	}

	if m.err != nil {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursorY = max(m.cursorY-1, 0)
	case "down", "j":
		m.cursorY = min(m.cursorY+1, m.grid.Rows()-1)
	case "left", "h":
		m.cursorX = max(m.cursorX-1, 0)
	case "right", "l":
		m.cursorX = min(m.cursorX+1, m.grid.Cols()-1)
	case "r":
		m.reveal = !m.reveal
	case "enter", " ":
		m.shoot()
	}
	return m, nil
}

func (m *model) shoot() {
	index := m.grid.Index(m.cursorX, m.cursorY)
	if shot, _ := m.grid.ShotAt(index); shot != mb.ShotNone {
		m.status = fmt.Sprintf("already fired at (%d, %d)", m.cursorX, m.cursorY)
		return
	}

	wasCleared := m.grid.IsCleared()
	hit, err := m.grid.Shoot(index)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.shots++

	switch {
	case !wasCleared && m.grid.IsCleared():
		m.status = fmt.Sprintf("all ships sunk in %d shots, press n for a new board", m.shots)
	case hit:
		m.status = fmt.Sprintf("hit at (%d, %d)", m.cursorX, m.cursorY)
	default:
		m.status = fmt.Sprintf("miss at (%d, %d)", m.cursorX, m.cursorY)
	}
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("seed %d: %v\n\nn: next seed  q: quit\n", m.seed, m.err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "seed: %d  ships left: %d/%d  towers left: %d/%d  shots: %d\n\n",
		m.seed,
		m.grid.ShipsLeft(), len(m.settings.Ships),
		m.grid.TowersLeft(), m.settings.Towers,
		m.shots,
	)

	for y := 0; y < m.grid.Rows(); y++ {
		for x := 0; x < m.grid.Cols(); x++ {
			glyph := m.grid.Glyph(m.grid.Index(x, y), m.reveal)
			if x == m.cursorX && y == m.cursorY {
				fmt.Fprintf(&sb, "[%c]", glyph)
				continue
			}
			fmt.Fprintf(&sb, " %c ", glyph)
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\n%s\n\narrows/hjkl: move  enter/space: shoot  r: reveal  n: new board  q: quit\n", m.status)
	return sb.String()
}
