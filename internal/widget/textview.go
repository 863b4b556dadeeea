package widget

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// TextView is a read-only, scrollable block of plain text.
type TextView struct {
	name string
	text string
	vp   viewport.Model
}

// NewTextView creates a text view of the given size.
func NewTextView(name string, width, height int) *TextView {
	return &TextView{name: name, vp: viewport.New(width, height)}
}

func (v *TextView) ObjectName() string { return v.name }
func (v *TextView) PlainText() string  { return v.text }

// SetPlainText replaces the content and scrolls back to the top.
func (v *TextView) SetPlainText(text string) {
	v.text = text
	v.vp.SetContent(text)
	v.vp.GotoTop()
}

// SetSize resizes the visible area.
func (v *TextView) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.vp.Width = width
	v.vp.Height = height
	v.vp.SetContent(v.text)
}

// ScrollDown moves the view down by n lines.
func (v *TextView) ScrollDown(n int) { v.vp.LineDown(n) }

// ScrollUp moves the view up by n lines.
func (v *TextView) ScrollUp(n int) { v.vp.LineUp(n) }

// Offset returns the index of the first visible line.
func (v *TextView) Offset() int { return v.vp.YOffset }

// View renders the visible lines.
func (v *TextView) View() string { return v.vp.View() }
