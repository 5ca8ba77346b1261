package ui

// Unicode symbols for status indicators in one-shot report output.
const (
	SymbolPass    = "✓" // Check passed / endpoint reachable
	SymbolFail    = "✗" // Check failed / endpoint blocked
	SymbolWarn    = "⚠" // Degraded / limited
	SymbolUnknown = "?" // Could not determine
)

// Bar segments for the 10-step health bar in the live dashboard.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)
