package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tada/internal/config"
)

// Run starts the program and blocks until the user quits. Tasks and the
// daily quote are fetched from Init, so the screen comes up immediately.
func Run(cfg config.Config, opts Options) error {
	program := tea.NewProgram(New(cfg, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
