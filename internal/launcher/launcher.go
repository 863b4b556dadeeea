// Package launcher implements the simple RSX arm launcher: one button per
// feature area plus an emergency-stop toggle. Feature buttons only describe
// what they would open in the status line; they keep no state.
package launcher

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rsx-robotics/arm-control/internal/logging"
	"github.com/rsx-robotics/arm-control/internal/stylesheet"
	"github.com/rsx-robotics/arm-control/internal/ui"
	"github.com/rsx-robotics/arm-control/internal/widget"
)

// Texts shown by the launcher.
const (
	WindowTitle = "RSX Arm Control"

	StatusReady       = "Status: Ready"
	StatusEStopActive = "Status: ⚠️ EMERGENCY STOP ACTIVATED - would publish to /emergency_stop"

	EStopText        = "EMERGENCY STOP"
	EStopReleaseText = "RELEASE E-STOP"
)

// Object names, used for stylesheet lookup and logging.
const (
	NameTitle       = "title"
	NameEStopButton = "estop_button"
	NameStatus      = "status_label"
)

const windowName = "launcher"

// Feature is one launcher button and the status sentence it writes.
type Feature struct {
	Name   string
	Label  string
	Status string
}

// Features lists the launcher buttons in display order.
var Features = []Feature{
	{"joint_states_button", "View Joint States", "Status: Joint states view selected - will subscribe to /joint_states"},
	{"joint_angles_button", "View Joint Angles", "Status: Joint angles view selected - will subscribe to /joint_angles"},
	{"camera_button", "View Camera Feed", "Status: Camera feed view selected - will subscribe to /camera/image_raw"},
	{"view3d_button", "3D Arm View", "Status: 3D arm view selected - visualization not yet implemented"},
	{"path_planning_button", "Path Planning", "Status: Path planning selected - planner not yet implemented"},
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	EStop    key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.EStop, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Options configure a new launcher window.
type Options struct {
	Sheet  *stylesheet.Sheet
	Width  int
	Height int
}

// Window is the launcher's Bubble Tea model.
type Window struct {
	theme  ui.Theme
	width  int
	height int

	title       *widget.Label
	buttons     []*widget.PushButton
	estopButton *widget.PushButton
	status      *widget.Label

	focus *widget.FocusRing
	keys  keyMap
	help  help.Model
}

// New builds the launcher window.
func New(opts Options) *Window {
	w := &Window{
		theme:       ui.NewTheme(opts.Sheet),
		title:       widget.NewLabel(NameTitle, WindowTitle),
		estopButton: widget.NewPushButton(NameEStopButton, EStopText),
		status:      widget.NewLabel(NameStatus, StatusReady),
		help:        help.New(),
		keys: keyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k", "shift+tab"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j", "tab"),
				key.WithHelp("↓/j", "down"),
			),
			Activate: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", "press"),
			),
			EStop: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "e-stop"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}

	focusable := make([]widget.Widget, 0, len(Features)+1)
	for _, f := range Features {
		b := widget.NewPushButton(f.Name, f.Label)
		b.OnClicked(w.describe(f))
		w.buttons = append(w.buttons, b)
		focusable = append(focusable, b)
	}

	w.estopButton.SetCheckable(true)
	w.estopButton.OnToggled(w.onEStop)
	focusable = append(focusable, w.estopButton)
	w.focus = widget.NewFocusRing(focusable...)

	w.width, w.height = opts.Width, opts.Height
	if w.width == 0 || w.height == 0 {
		w.width, w.height = ui.GetTerminalSize()
	}
	return w
}

func (w *Window) describe(f Feature) func() {
	return func() {
		w.status.SetText(f.Status)
		logging.LogControl(windowName, f.Name, "clicked")
	}
}

func (w *Window) onEStop(checked bool) {
	if checked {
		w.estopButton.SetText(EStopReleaseText)
		w.status.SetText(StatusEStopActive)
	} else {
		w.estopButton.SetText(EStopText)
		w.status.SetText(StatusReady)
	}
	logging.LogControl(windowName, NameEStopButton, "toggled", zap.Bool("armed", checked))
}

// Button returns the feature button with the given label, or nil.
func (w *Window) Button(label string) *widget.PushButton {
	for _, b := range w.buttons {
		if b.Text() == label {
			return b
		}
	}
	return nil
}

// EStopButton exposes the emergency-stop toggle.
func (w *Window) EStopButton() *widget.PushButton { return w.estopButton }

// EStopArmed reports whether the emergency-stop toggle is armed.
func (w *Window) EStopArmed() bool { return w.estopButton.IsChecked() }

// Status returns the status line text.
func (w *Window) Status() string { return w.status.Text() }

// Focused returns the object name of the focused control.
func (w *Window) Focused() string { return w.focus.Current().ObjectName() }

// Init implements tea.Model
func (w *Window) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		w.help.Width = msg.Width - 4

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Quit):
			return w, tea.Quit
		case key.Matches(msg, w.keys.Up):
			w.focus.Prev()
		case key.Matches(msg, w.keys.Down):
			w.focus.Next()
		case key.Matches(msg, w.keys.Activate):
			if b, ok := w.focus.Current().(*widget.PushButton); ok {
				b.Click()
			}
		case key.Matches(msg, w.keys.EStop):
			w.focus.Focus(NameEStopButton)
			w.estopButton.Click()
		}
	}
	return w, nil
}

// View implements tea.Model
func (w *Window) View() string {
	inner := w.width - 4
	buttonWidth := inner / 2
	if buttonWidth < 30 {
		buttonWidth = 30
	}

	var blocks []string
	for _, b := range w.buttons {
		blocks = append(blocks, w.theme.Button(b, ui.DefaultButtonStyles, w.focus.IsFocused(b), buttonWidth))
	}
	blocks = append(blocks, w.theme.Button(w.estopButton, ui.EStopButtonStyles, w.focus.IsFocused(w.estopButton), buttonWidth))

	column := ui.Column(blocks...)
	return ui.RenderWindow(
		w.theme.Title(NameTitle, w.title.Text(), inner),
		w.theme.Frame("button_column", lipgloss.NewStyle().Align(lipgloss.Center).PaddingTop(1), column, inner),
		w.theme.Label(w.status, ui.StatusStyle.Align(lipgloss.Left), inner),
		w.help.View(w.keys),
		w.width, w.height,
	)
}
