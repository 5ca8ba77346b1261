package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
// The three band tiers map onto the classic traffic-light colors.

// Semantic colors for health bands and status indication
const (
	ColorGood    lipgloss.Color = "2" // Green  - healthy tier
	ColorLimited lipgloss.Color = "3" // Yellow - caution tier
	ColorBlocked lipgloss.Color = "1" // Red    - alert tier
	ColorInfo    lipgloss.Color = "6" // Cyan   - headers, accents
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)
