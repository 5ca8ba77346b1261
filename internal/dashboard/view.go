package dashboard

import (
	"fmt"
	"strings"

	"github.com/hamscan/ham/internal/status"
	"github.com/hamscan/ham/internal/ui"
)

const barSegments = status.MaxScore

// render produces the full dashboard frame.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("HAM · Connectivity Monitor"))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("Press q to quit"))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, r := range m.rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	for _, r := range m.rows {
		b.WriteString(m.renderRow(r, nameWidth))
		b.WriteString("\n")
	}

	if !m.lastUpdate.IsZero() {
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("Updated " + m.lastUpdate.Format("15:04:05")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one probe line: name, score bar, band label, detail.
func (m Model) renderRow(r status.Record, nameWidth int) string {
	name := NameStyle.Render(fmt.Sprintf("%-*s", nameWidth, r.Name))

	if !r.Updated {
		return fmt.Sprintf("  %s  %s %s",
			name,
			m.spinner.View(),
			PendingStyle.Render("Testing..."),
		)
	}

	band := r.Band()
	style := bandStyle(band)

	bar := strings.Repeat(ui.BarFilled, r.Score) +
		strings.Repeat(ui.BarEmpty, barSegments-r.Score)

	return fmt.Sprintf("  %s  %s  %s  %s",
		name,
		style.Render(bar),
		style.Render(fmt.Sprintf("%-14s", band.String())),
		DetailStyle.Render(r.Detail),
	)
}
