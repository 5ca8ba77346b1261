package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input. Only quit keys do anything, every
// other key press is swallowed so stray input never disturbs the view.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.run.Stop()
		return true, tea.Quit
	}
	return true, nil
}
