package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hamscan/ham/internal/status"
	"github.com/hamscan/ham/internal/ui"
)

var (
	// TitleStyle renders the dashboard header line.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorInfo)

	// HintStyle renders the quit hint under the header.
	HintStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	// NameStyle renders probe names in the leftmost column.
	NameStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	// GoodStyle renders rows in the Good band.
	GoodStyle = lipgloss.NewStyle().
			Foreground(ui.ColorGood)

	// LimitedStyle renders rows in the Limited band.
	LimitedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorLimited)

	// BlockedStyle renders rows in the Blocked/Failed band.
	BlockedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorBlocked)

	// PendingStyle renders rows that have no probe result yet.
	PendingStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	// DetailStyle renders the per-probe description column.
	DetailStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)
)

// bandStyle maps a band to the style its rows render with.
func bandStyle(b status.Band) lipgloss.Style {
	switch b {
	case status.BandGood:
		return GoodStyle
	case status.BandLimited:
		return LimitedStyle
	case status.BandBlocked:
		return BlockedStyle
	default:
		return PendingStyle
	}
}
