// Package dashboard implements the live TUI for the scan session.
//
// The package uses the Bubble Tea framework (Model-Update-View). The model
// never owns the protocol data: it holds a read handle on the shared
// status table and copies a fresh snapshot on every refresh tick, while
// the prober keeps writing on its own cadence. Key handling and redraw
// share Bubble Tea's event loop, so input latency is bounded by the
// event loop, not by the redraw interval.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hamscan/ham/internal/status"
)

// Model is the Bubble Tea model for the scan dashboard.
type Model struct {
	table    *status.Table
	run      *status.RunState
	rows     []status.Record
	interval time.Duration

	spinner    spinner.Model
	width      int
	height     int
	lastUpdate time.Time
	quitting   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard model reading from the given table.
// The run flag is dropped exactly once, on quit input.
func NewModel(table *status.Table, run *status.RunState, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = PendingStyle

	return Model{
		table:    table,
		run:      run,
		rows:     table.Snapshot(), // first frame always shows every row
		interval: interval,
		spinner:  sp,
	}
}

// Init starts the refresh tick and the pending-row spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.rows = m.table.Snapshot()
		m.lastUpdate = time.Time(msg)
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Quitting reports whether quit input has been received.
func (m Model) Quitting() bool {
	return m.quitting
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
