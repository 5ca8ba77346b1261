package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ApplyColorMode configures the global lipgloss color profile from the
// config's output.color mode. "auto" keeps color only when stdout is a
// real terminal, so piped report output stays clean.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default: // "auto" or unset
		if !IsTerminal() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInputTerminal reports whether stdin is attached to a terminal.
// Interactive prompts are skipped when it isn't.
func IsInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
