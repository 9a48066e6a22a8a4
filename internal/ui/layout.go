package ui

import "time"

// Layout sizes.
const (
	// CalculatorWidth is the inner width of the calculator body.
	CalculatorWidth = 30

	// SidePanelWidth is the inner width of the history and memory panels.
	SidePanelWidth = 32

	// SidePanelMinTerminal is the terminal width below which side panels
	// stack under the calculator instead of beside it.
	SidePanelMinTerminal = CalculatorWidth + SidePanelWidth + 8

	// ListVisibleRows is the number of list rows shown before scrolling.
	ListVisibleRows = 10
)

// Diagnostics limits.
const (
	// DiagnosticsTailLines is how many trailing log lines are scanned.
	DiagnosticsTailLines = 200

	// DiagnosticsShown is the maximum number of problem lines displayed.
	DiagnosticsShown = 3
)

// Timing constants.
const (
	// flashDuration is how long status messages stay visible.
	flashDuration = 2 * time.Second
)
