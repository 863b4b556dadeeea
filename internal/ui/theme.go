package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rsx-robotics/arm-control/internal/stylesheet"
	"github.com/rsx-robotics/arm-control/internal/widget"
)

// Theme renders widgets with the default styles overridden by a stylesheet.
type Theme struct {
	sheet *stylesheet.Sheet
}

// NewTheme wraps sheet. A nil sheet renders the default appearance.
func NewTheme(sheet *stylesheet.Sheet) Theme {
	return Theme{sheet: sheet}
}

// Sheet returns the stylesheet in use.
func (t Theme) Sheet() *stylesheet.Sheet {
	return t.sheet
}

// Style resolves the style for an object name.
func (t Theme) Style(name string, base lipgloss.Style, states ...stylesheet.State) lipgloss.Style {
	return t.sheet.Style(name, base, states...)
}

// Title renders a window title across width.
func (t Theme) Title(name, text string, width int) string {
	return t.Style(name, TitleStyle).Width(width).Render(text)
}

// Label renders a label with the given base style.
func (t Theme) Label(l *widget.Label, base lipgloss.Style, width int) string {
	style := t.Style(l.ObjectName(), base)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(l.Text())
}

// Button renders a push button. Focus is shown with the highlight border and
// a marker around the text.
func (t Theme) Button(b *widget.PushButton, styles ButtonStyles, focused bool, width int) string {
	base := styles.Normal
	var states []stylesheet.State
	if b.IsCheckable() && b.IsChecked() {
		base = styles.Checked
		states = append(states, stylesheet.Checked)
	}
	text := b.Text()
	if focused {
		base = base.BorderForeground(HighlightColor)
		states = append(states, stylesheet.Focused)
		text = "▸ " + text + " ◂"
	}

	style := t.Style(b.ObjectName(), base, states...)
	return style.Width(innerWidth(style, width)).Render(text)
}

// Combo renders a selector as "‹ current ›", followed by the position when
// there is more than one item.
func (t Theme) Combo(c *widget.ComboBox, focused bool, width int) string {
	base := ComboStyle
	var states []stylesheet.State
	if focused {
		base = base.BorderForeground(HighlightColor)
		states = append(states, stylesheet.Focused)
	}
	text := "‹ " + c.CurrentText() + " ›"
	if c.Count() > 1 {
		text += fmt.Sprintf("  %d/%d", c.CurrentIndex()+1, c.Count())
	}
	style := t.Style(c.ObjectName(), base, states...)
	return style.Width(innerWidth(style, width)).Render(text)
}

// Group renders body inside a titled panel. Hidden groups render as "".
func (t Theme) Group(g *widget.Group, body string, width int) string {
	if !g.IsVisible() {
		return ""
	}
	style := t.Style(g.ObjectName(), GroupStyle)
	title := GroupTitleStyle.Render(g.Title())
	return style.Width(innerWidth(style, width)).Render(title + "\n" + body)
}

// Frame renders body inside an untitled frame with the given base style.
func (t Theme) Frame(name string, base lipgloss.Style, body string, width int) string {
	style := t.Style(name, base)
	return style.Width(innerWidth(style, width)).Render(body)
}

// TextView renders a read-only text view.
func (t Theme) TextView(v *widget.TextView) string {
	return t.Style(v.ObjectName(), TextViewStyle).Render(v.View())
}

// innerWidth converts an outer width to the lipgloss Width, which excludes
// borders.
func innerWidth(style lipgloss.Style, width int) int {
	w := width - style.GetHorizontalBorderSize()
	if w < 1 {
		return 1
	}
	return w
}

// Column stacks rendered blocks vertically, skipping empty ones.
func Column(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
