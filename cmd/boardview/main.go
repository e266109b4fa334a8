package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed of the first board; n moves to seed+1")
	settingsPath := flag.String("settings", "", "Optional yaml file with grid settings")
	flag.Parse()

	settings := mb.DefaultSettings()
	if *settingsPath != "" {
		loaded, err := mb.LoadSettings(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded
	}

	p := tea.NewProgram(newModel(settings, *seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
