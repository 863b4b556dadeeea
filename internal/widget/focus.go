package widget

// FocusRing cycles keyboard focus through an ordered set of controls.
type FocusRing struct {
	items []Widget
	index int
}

// NewFocusRing focuses the first control.
func NewFocusRing(items ...Widget) *FocusRing {
	return &FocusRing{items: items}
}

// Current returns the focused control, or nil for an empty ring.
func (f *FocusRing) Current() Widget {
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.index]
}

// Next moves focus forward, wrapping around.
func (f *FocusRing) Next() {
	if len(f.items) == 0 {
		return
	}
	f.index = (f.index + 1) % len(f.items)
}

// Prev moves focus backward, wrapping around.
func (f *FocusRing) Prev() {
	if len(f.items) == 0 {
		return
	}
	f.index = (f.index - 1 + len(f.items)) % len(f.items)
}

// Focus moves focus to the control with the given object name.
func (f *FocusRing) Focus(name string) bool {
	for i, w := range f.items {
		if w.ObjectName() == name {
			f.index = i
			return true
		}
	}
	return false
}

// IsFocused reports whether w holds focus.
func (f *FocusRing) IsFocused(w Widget) bool {
	cur := f.Current()
	return cur != nil && cur.ObjectName() == w.ObjectName()
}
