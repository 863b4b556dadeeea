package launcher

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsx-robotics/arm-control/internal/stylesheet"
	"github.com/rsx-robotics/arm-control/internal/tuitest"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	return New(Options{Sheet: stylesheet.Empty(), Width: 100, Height: 40})
}

func TestInitialState(t *testing.T) {
	w := newTestWindow(t)
	if w.Status() != StatusReady {
		t.Errorf("Status() = %q, want %q", w.Status(), StatusReady)
	}
	if w.EStopArmed() {
		t.Error("e-stop should start disarmed")
	}
	if w.Focused() != Features[0].Name {
		t.Errorf("Focused() = %q, want first feature", w.Focused())
	}
}

func TestCameraFeedButtonOnlyWritesStatus(t *testing.T) {
	w := newTestWindow(t)
	before := w.View()

	w.Button("View Camera Feed").Click()

	want := "Status: Camera feed view selected - will subscribe to /camera/image_raw"
	if w.Status() != want {
		t.Errorf("Status() = %q, want %q", w.Status(), want)
	}
	if w.EStopArmed() {
		t.Error("feature buttons must not touch the e-stop")
	}
	if w.Button("View Camera Feed").IsChecked() {
		t.Error("feature buttons keep no state")
	}

	after := w.View()
	if strings.Count(after, "\n") != strings.Count(before, "\n") {
		t.Error("no panel should appear after clicking a feature button")
	}
	if !strings.Contains(after, want) {
		t.Errorf("status line missing from view:\n%s", after)
	}
}

func TestEveryFeatureButton(t *testing.T) {
	w := newTestWindow(t)
	for _, f := range Features {
		b := w.Button(f.Label)
		if b == nil {
			t.Fatalf("missing button %q", f.Label)
		}
		b.Click()
		if w.Status() != f.Status {
			t.Errorf("%s: Status() = %q, want %q", f.Label, w.Status(), f.Status)
		}
	}
	if w.Button("Nonexistent") != nil {
		t.Error("unknown label should return nil")
	}
}

func TestEStopRoundTrip(t *testing.T) {
	w := newTestWindow(t)
	label, status := w.EStopButton().Text(), w.Status()

	w.EStopButton().Click()
	if !w.EStopArmed() || w.EStopButton().Text() != EStopReleaseText || w.Status() != StatusEStopActive {
		t.Errorf("armed = (%v, %q, %q)", w.EStopArmed(), w.EStopButton().Text(), w.Status())
	}
	if !strings.Contains(w.Status(), "/emergency_stop") {
		t.Error("armed status should name the e-stop topic")
	}

	w.EStopButton().Click()
	if w.EStopArmed() || w.EStopButton().Text() != label || w.Status() != status {
		t.Errorf("round trip = (%q, %q), want (%q, %q)", w.EStopButton().Text(), w.Status(), label, status)
	}

	w.Button("View Joint States").Click()
	w.EStopButton().Click()
	w.EStopButton().Click()
	if w.Status() != StatusReady {
		t.Errorf("releasing should always show %q, got %q", StatusReady, w.Status())
	}
}

func TestKeyboard(t *testing.T) {
	h := tuitest.New(newTestWindow(t))
	w := h.Model().(*Window)

	h.Press("down", "down", "enter")
	if w.Status() != Features[2].Status {
		t.Errorf("Status() = %q, want camera message", w.Status())
	}

	h.Press("up", "up", "up")
	if w.Focused() != NameEStopButton {
		t.Errorf("focus should wrap to the e-stop, got %q", w.Focused())
	}
	h.Press(" ")
	if !w.EStopArmed() {
		t.Error("space should arm the focused e-stop")
	}
	h.Press("e")
	if w.EStopArmed() {
		t.Error("e should toggle the e-stop from anywhere")
	}

	h.Press("up", "e")
	if w.Focused() != NameEStopButton || !w.EStopArmed() {
		t.Errorf("e should focus and arm the e-stop, focus %q", w.Focused())
	}

	h.Press("q")
	if !h.Quit() {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	h := tuitest.New(newTestWindow(t))
	h.Send(tea.WindowSizeMsg{Width: 90, Height: 40})

	view := h.View()
	for _, want := range []string{WindowTitle, StatusReady, EStopText} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for _, f := range Features {
		if !strings.Contains(view, f.Label) {
			t.Errorf("view missing button %q", f.Label)
		}
	}
}
