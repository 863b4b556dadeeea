package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - borders, titles
	HighlightColor = lipgloss.Color("#43BF6D") // Green - focus, success
	ErrorColor     = lipgloss.Color("#FF5555") // Red - e-stop, errors
	WarningColor   = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor     = lipgloss.Color("#626262") // Gray - placeholders, help
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
	DangerBgColor  = lipgloss.Color("#8B0000") // Dark red - armed e-stop
)

// Layout constants
const (
	MinTerminalWidth  = 80
	MinTerminalHeight = 24
	MaxContentWidth   = 100 // Cap for one-shot CLI output
)

// ButtonStyles are the default looks of a push button.
type ButtonStyles struct {
	Normal  lipgloss.Style
	Checked lipgloss.Style
}

var (
	// TitleStyle is the window title bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center)

	// GroupStyle frames a titled panel.
	GroupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	// GroupTitleStyle is the heading inside a panel.
	GroupTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// PlaceholderStyle is for static placeholder text such as the camera feed.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true).
				Align(lipgloss.Center)

	// TextViewStyle is for read-only joint tables.
	TextViewStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// LabelStyle is for plain inline labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// StatusStyle is the bottom status bar.
	StatusStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Align(lipgloss.Right)

	// EStopLabelStyle is the heading of the emergency-stop frame.
	EStopLabelStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Align(lipgloss.Center)

	// EStopFrameStyle frames the emergency-stop controls.
	EStopFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)

	// ComboStyle is the camera topic selector.
	ComboStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1)

	// HelpStyle is the key help footer.
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

var (
	// DefaultButtonStyles is a regular push button.
	DefaultButtonStyles = ButtonStyles{
		Normal: lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Align(lipgloss.Center),
		Checked: lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HighlightColor).
			Align(lipgloss.Center),
	}

	// EStopButtonStyles is the emergency-stop toggle.
	EStopButtonStyles = ButtonStyles{
		Normal: lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(ErrorColor).
			Align(lipgloss.Center),
		Checked: lipgloss.NewStyle().
			Foreground(TextColor).
			Background(DangerBgColor).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(WarningColor).
			Align(lipgloss.Center),
	}
)

// GetTerminalSize returns the terminal size, never below the minimum.
// Used before the first tea.WindowSizeMsg arrives.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, MinTerminalHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	return width, height
}

// GetTerminalWidth returns the width for one-shot CLI output, capped at
// MaxContentWidth.
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
