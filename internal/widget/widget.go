package widget

// Widget is anything addressable by object name.
type Widget interface {
	ObjectName() string
}

// Label is a single piece of display text.
type Label struct {
	name string
	text string
}

// NewLabel creates a label.
func NewLabel(name, text string) *Label {
	return &Label{name: name, text: text}
}

func (l *Label) ObjectName() string  { return l.name }
func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }

// PushButton is a clickable button, optionally checkable.
type PushButton struct {
	name      string
	text      string
	checkable bool
	checked   bool

	clicked []func()
	toggled []func(checked bool)
}

// NewPushButton creates an unchecked, non-checkable button.
func NewPushButton(name, text string) *PushButton {
	return &PushButton{name: name, text: text}
}

func (b *PushButton) ObjectName() string  { return b.name }
func (b *PushButton) Text() string        { return b.text }
func (b *PushButton) SetText(text string) { b.text = text }
func (b *PushButton) IsCheckable() bool   { return b.checkable }
func (b *PushButton) IsChecked() bool     { return b.checked }

// SetCheckable makes the button keep a checked state. Turning it off clears
// the state without notifying toggle handlers.
func (b *PushButton) SetCheckable(checkable bool) {
	b.checkable = checkable
	if !checkable {
		b.checked = false
	}
}

// OnClicked registers a handler run on every click.
func (b *PushButton) OnClicked(fn func()) {
	b.clicked = append(b.clicked, fn)
}

// OnToggled registers a handler run whenever the checked state changes.
func (b *PushButton) OnToggled(fn func(checked bool)) {
	b.toggled = append(b.toggled, fn)
}

// Click presses the button. A checkable button flips its state first, so
// toggle handlers run before click handlers.
func (b *PushButton) Click() {
	if b.checkable {
		b.SetChecked(!b.checked)
	}
	for _, fn := range b.clicked {
		fn()
	}
}

// SetChecked sets the checked state of a checkable button. Toggle handlers
// run only when the state actually changes.
func (b *PushButton) SetChecked(checked bool) {
	if !b.checkable || b.checked == checked {
		return
	}
	b.checked = checked
	for _, fn := range b.toggled {
		fn(checked)
	}
}

// ComboBox selects one item from a fixed list.
type ComboBox struct {
	name    string
	items   []string
	index   int
	changed []func(index int, text string)
}

// NewComboBox creates a selector with the first item current. With no items
// the current index is -1.
func NewComboBox(name string, items ...string) *ComboBox {
	c := &ComboBox{name: name, items: append([]string(nil), items...), index: -1}
	if len(c.items) > 0 {
		c.index = 0
	}
	return c
}

func (c *ComboBox) ObjectName() string { return c.name }
func (c *ComboBox) CurrentIndex() int  { return c.index }
func (c *ComboBox) Count() int         { return len(c.items) }

// Items returns a copy of the selectable items.
func (c *ComboBox) Items() []string {
	return append([]string(nil), c.items...)
}

// CurrentText returns the selected item, or "" when there are no items.
func (c *ComboBox) CurrentText() string {
	if c.index < 0 {
		return ""
	}
	return c.items[c.index]
}

// OnCurrentIndexChanged registers a handler run when the selection changes.
func (c *ComboBox) OnCurrentIndexChanged(fn func(index int, text string)) {
	c.changed = append(c.changed, fn)
}

// SetCurrentIndex selects an item. Out-of-range indexes are ignored.
func (c *ComboBox) SetCurrentIndex(index int) {
	if index < 0 || index >= len(c.items) || index == c.index {
		return
	}
	c.index = index
	for _, fn := range c.changed {
		fn(index, c.items[index])
	}
}

// Next selects the following item, wrapping to the first.
func (c *ComboBox) Next() {
	if len(c.items) == 0 {
		return
	}
	c.SetCurrentIndex((c.index + 1) % len(c.items))
}

// Prev selects the preceding item, wrapping to the last.
func (c *ComboBox) Prev() {
	if len(c.items) == 0 {
		return
	}
	c.SetCurrentIndex((c.index - 1 + len(c.items)) % len(c.items))
}

// Group is a titled panel that can be shown or hidden.
type Group struct {
	name    string
	title   string
	visible bool
}

// NewGroup creates a visible group.
func NewGroup(name, title string) *Group {
	return &Group{name: name, title: title, visible: true}
}

func (g *Group) ObjectName() string      { return g.name }
func (g *Group) Title() string           { return g.title }
func (g *Group) IsVisible() bool         { return g.visible }
func (g *Group) SetVisible(visible bool) { g.visible = visible }
