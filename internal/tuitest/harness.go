// Package tuitest drives Bubble Tea models programmatically in tests.
package tuitest

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness routes messages through a model and executes returned commands.
type Harness struct {
	model tea.Model
	quit  bool
}

// New creates a harness for model.
func New(model tea.Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and runs any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	h.model = mdl
	h.processCmd(cmd)
}

// Press sends one key message per key name, e.g. "tab", "enter", "e".
func (h *Harness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(KeyMsg(k))
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		h.model = mdl
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool { return h.quit }

// Model exposes the current model.
func (h *Harness) Model() tea.Model { return h.model }

// View returns the current view string.
func (h *Harness) View() string { return h.model.View() }

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	" ":         tea.KeySpace,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"esc":       tea.KeyEsc,
	"ctrl+c":    tea.KeyCtrlC,
}

// KeyMsg builds the key message Bubble Tea would deliver for name.
func KeyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
