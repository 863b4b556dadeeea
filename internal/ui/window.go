package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderWindow lays out a full-screen window: title bar, content, status
// bar, and key help, inside an outer border filling the terminal.
func RenderWindow(title, content, status, help string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	inner := width - 4

	bar := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(PrimaryColor).
		Width(inner).
		Render(title)

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(PrimaryColor).
		Width(inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, status, HelpStyle.Render(help)))

	body := lipgloss.NewStyle().Width(inner).Render(content)

	// Keep the footer pinned to the bottom of the window.
	used := lipgloss.Height(bar) + lipgloss.Height(footer)
	if fill := height - 2 - used; fill > lipgloss.Height(body) {
		body = lipgloss.NewStyle().Width(inner).Height(fill).Render(content)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, bar, body, footer))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, frame)
}
