package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the viewer on a random game seeded with seed.
func Run(seed uint64) error {
	p := tea.NewProgram(NewModel(seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
