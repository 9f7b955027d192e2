package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gosyncquotes/internal/app"
)

// Run starts the interactive quote browser over an already wired App and
// blocks until the user quits. Auto-sync keeps running in the background
// while the browser is open; the caller owns app shutdown.
func Run(a *app.App) error {
	model := newModel(a)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running quote browser: %w", err)
	}
	return nil
}
