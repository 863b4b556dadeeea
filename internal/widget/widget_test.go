package widget

import (
	"strings"
	"testing"
)

func TestPushButtonClick(t *testing.T) {
	b := NewPushButton("feature", "View Camera Feed")
	clicks := 0
	b.OnClicked(func() { clicks++ })
	b.OnToggled(func(bool) { t.Error("non-checkable button should not toggle") })

	b.Click()
	b.Click()

	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
	if b.IsChecked() {
		t.Error("non-checkable button should never be checked")
	}
}

func TestCheckableButtonTogglesBeforeClick(t *testing.T) {
	b := NewPushButton("estop_button", "E-STOP (DISARMED)")
	b.SetCheckable(true)

	var events []string
	b.OnToggled(func(checked bool) {
		if checked {
			events = append(events, "on")
		} else {
			events = append(events, "off")
		}
	})
	b.OnClicked(func() { events = append(events, "click") })

	b.Click()
	if !b.IsChecked() {
		t.Fatal("button should be checked after first click")
	}
	b.Click()
	if b.IsChecked() {
		t.Fatal("button should be unchecked after second click")
	}

	want := "on,click,off,click"
	if got := strings.Join(events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestSetCheckedEmitsOnlyOnChange(t *testing.T) {
	b := NewPushButton("path_planning_button", "Enable Path Planning Mode")
	b.SetCheckable(true)
	toggles := 0
	b.OnToggled(func(bool) { toggles++ })

	b.SetChecked(false)
	b.SetChecked(true)
	b.SetChecked(true)

	if toggles != 1 {
		t.Errorf("toggles = %d, want 1", toggles)
	}

	b.SetCheckable(false)
	if b.IsChecked() {
		t.Error("clearing checkable should clear checked state")
	}
}

func TestComboBox(t *testing.T) {
	c := NewComboBox("camera_topic", "/a", "/b", "/c")
	if c.CurrentText() != "/a" {
		t.Fatalf("CurrentText() = %q, want /a", c.CurrentText())
	}

	var seen []string
	c.OnCurrentIndexChanged(func(_ int, text string) { seen = append(seen, text) })

	c.Next()
	c.Next()
	c.Next()
	c.Prev()
	c.SetCurrentIndex(2)
	c.SetCurrentIndex(7)

	if got := strings.Join(seen, ","); got != "/b,/c,/a,/c" {
		t.Errorf("changes = %s", got)
	}
	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", c.CurrentIndex())
	}
}

func TestEmptyComboBox(t *testing.T) {
	c := NewComboBox("camera_topic")
	c.Next()
	c.Prev()
	if c.CurrentIndex() != -1 || c.CurrentText() != "" {
		t.Errorf("empty combo = (%d, %q)", c.CurrentIndex(), c.CurrentText())
	}
}

func TestComboBoxItemsCopied(t *testing.T) {
	items := []string{"/a", "/b"}
	c := NewComboBox("camera_topic", items...)
	items[0] = "/changed"
	got := c.Items()
	got[1] = "/changed"

	if c.CurrentText() != "/a" || c.Items()[1] != "/b" {
		t.Error("combo box items should not alias caller slices")
	}
}

func TestGroupVisibility(t *testing.T) {
	g := NewGroup("view3d_group", "3D Arm Visualization & Target Position")
	if !g.IsVisible() {
		t.Error("groups start visible")
	}
	g.SetVisible(false)
	if g.IsVisible() {
		t.Error("group should be hidden")
	}
}

func TestTextView(t *testing.T) {
	v := NewTextView("joint_states_display", 20, 2)
	v.SetPlainText("one\ntwo\nthree\nfour")

	if v.PlainText() != "one\ntwo\nthree\nfour" {
		t.Errorf("PlainText() = %q", v.PlainText())
	}
	if !strings.Contains(v.View(), "one") || strings.Contains(v.View(), "three") {
		t.Errorf("View() should show the first two lines, got %q", v.View())
	}

	v.ScrollDown(2)
	if v.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", v.Offset())
	}
	if !strings.Contains(v.View(), "three") {
		t.Errorf("View() after scroll = %q", v.View())
	}

	v.SetPlainText("reset")
	if v.Offset() != 0 {
		t.Error("new content should scroll back to the top")
	}
}

func TestFocusRing(t *testing.T) {
	a := NewPushButton("a", "A")
	b := NewPushButton("b", "B")
	c := NewComboBox("c", "x")
	ring := NewFocusRing(a, b, c)

	if !ring.IsFocused(a) {
		t.Fatal("first control should start focused")
	}
	ring.Next()
	ring.Next()
	if !ring.IsFocused(c) {
		t.Error("expected c focused")
	}
	ring.Next()
	if !ring.IsFocused(a) {
		t.Error("focus should wrap to first control")
	}
	ring.Prev()
	if !ring.IsFocused(c) {
		t.Error("focus should wrap back to last control")
	}
	if !ring.Focus("b") || !ring.IsFocused(b) {
		t.Error("Focus(b) should focus b")
	}
	if ring.Focus("missing") {
		t.Error("Focus on unknown name should fail")
	}

	empty := NewFocusRing()
	empty.Next()
	if empty.Current() != nil {
		t.Error("empty ring has no current control")
	}
}
