// Package ui renders the control-panel widgets with Lipgloss.
//
// Every control has a default look defined in this package. A loaded
// stylesheet is layered on top by object name, so an empty sheet renders the
// default appearance:
//
//	theme := ui.NewTheme(sheet)
//	view := theme.Button(estop, ui.EStopButtonStyles, focused, 30)
//
// The package also carries the non-interactive output used by CLI
// subcommands (Printer and Result), which print styled boxes once and exit.
package ui
