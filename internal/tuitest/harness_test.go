package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type counter struct{ n int }

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "+":
			c.n++
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestHarness(t *testing.T) {
	h := New(counter{})
	h.Press("+", "+")
	if got := h.Model().(counter).n; got != 2 {
		t.Errorf("n = %d, want 2", got)
	}
	if h.Quit() {
		t.Fatal("should not have quit yet")
	}
	h.Press("q")
	if !h.Quit() {
		t.Error("q should quit")
	}
}

func TestKeyMsgStrings(t *testing.T) {
	for _, name := range []string{"enter", " ", "tab", "shift+tab", "up", "pgdown", "ctrl+c", "e"} {
		if got := KeyMsg(name).String(); got != name {
			t.Errorf("KeyMsg(%q).String() = %q", name, got)
		}
	}
}
