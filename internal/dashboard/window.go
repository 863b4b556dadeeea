package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rsx-robotics/arm-control/internal/config"
	"github.com/rsx-robotics/arm-control/internal/joints"
	"github.com/rsx-robotics/arm-control/internal/logging"
	"github.com/rsx-robotics/arm-control/internal/stylesheet"
	"github.com/rsx-robotics/arm-control/internal/ui"
	"github.com/rsx-robotics/arm-control/internal/widget"
)

// Texts shown by the dashboard.
const (
	WindowTitle = "RSX Arm Control System"

	StatusReady        = "Status: Ready"
	StatusEStopActive  = "Status: ⚠️ EMERGENCY STOP ACTIVE"
	StatusPathPlanning = "Status: Path planning mode enabled - 3D visualization active"

	EStopDisarmedText       = "E-STOP (DISARMED)"
	EStopArmedText          = "E-STOP (ARMED)"
	EStopHeading            = "🛑 EMERGENCY STOP"
	EnablePathPlanningText  = "Enable Path Planning Mode"
	DisablePathPlanningText = "Disable Path Planning Mode"

	CameraPlaceholder = "Camera feed placeholder\n(Subscribe to topic when available)"
	View3DPlaceholder = "Interactive 3D view placeholder\n(Arm model and target position will be displayed here in path planning mode)"
)

// Object names, used for stylesheet lookup and logging.
const (
	NameTitle         = "title"
	NameControlGroup  = "control_group"
	NameCameraTopic   = "camera_topic_combo"
	NamePathPlanning  = "path_planning_button"
	NameAnglesGroup   = "angles_group"
	NameJointAngles   = "joint_angles_display"
	NameEStopFrame    = "estop_frame"
	NameEStopLabel    = "estop_label"
	NameEStopButton   = "estop_button"
	NameCameraGroup   = "camera_group"
	NameCameraDisplay = "camera_display"
	NameView3DGroup   = "view3d_group"
	NameView3DDisplay = "view3d_display"
	NameStatesGroup   = "states_group"
	NameJointStates   = "joint_states_display"
	NameStatus        = "status_label"
)

const (
	windowName   = "dashboard"
	anglesHeight = 8
)

// Options configure a new dashboard window.
type Options struct {
	Sheet        *stylesheet.Sheet
	CameraTopics []string // Defaults to config.DefaultCameraTopics
	Width        int
	Height       int
}

// JointStatesMsg asks the window to re-render the joint state panel.
type JointStatesMsg map[string]joints.JointState

// JointAnglesMsg asks the window to re-render the joint angle panel.
type JointAnglesMsg map[string]float64

// Window is the dashboard's Bubble Tea model.
type Window struct {
	theme  ui.Theme
	width  int
	height int

	pathPlanningMode bool

	title         *widget.Label
	controlGroup  *widget.Group
	topicLabel    *widget.Label
	cameraTopic   *widget.ComboBox
	pathPlanning  *widget.PushButton
	anglesGroup   *widget.Group
	jointAngles   *widget.TextView
	estopLabel    *widget.Label
	estopButton   *widget.PushButton
	cameraGroup   *widget.Group
	cameraDisplay *widget.Label
	view3dGroup   *widget.Group
	view3dDisplay *widget.Label
	statesGroup   *widget.Group
	jointStates   *widget.TextView
	status        *widget.Label

	focus *widget.FocusRing
	keys  keyMap
	help  help.Model
}

// New builds the dashboard and fills the joint panels with sample data.
func New(opts Options) *Window {
	topics := opts.CameraTopics
	if len(topics) == 0 {
		topics = config.DefaultCameraTopics
	}

	w := &Window{
		theme: ui.NewTheme(opts.Sheet),
		keys:  newKeyMap(),
		help:  help.New(),

		title:         widget.NewLabel(NameTitle, WindowTitle),
		controlGroup:  widget.NewGroup(NameControlGroup, "Control Panel"),
		topicLabel:    widget.NewLabel("camera_topic_label", "Camera Topic:"),
		cameraTopic:   widget.NewComboBox(NameCameraTopic, topics...),
		pathPlanning:  widget.NewPushButton(NamePathPlanning, EnablePathPlanningText),
		anglesGroup:   widget.NewGroup(NameAnglesGroup, "Joint Angles (rad)"),
		jointAngles:   widget.NewTextView(NameJointAngles, 1, anglesHeight),
		estopLabel:    widget.NewLabel(NameEStopLabel, EStopHeading),
		estopButton:   widget.NewPushButton(NameEStopButton, EStopDisarmedText),
		cameraGroup:   widget.NewGroup(NameCameraGroup, "Live Camera Feed"),
		cameraDisplay: widget.NewLabel(NameCameraDisplay, CameraPlaceholder),
		view3dGroup:   widget.NewGroup(NameView3DGroup, "3D Arm Visualization & Target Position"),
		view3dDisplay: widget.NewLabel(NameView3DDisplay, View3DPlaceholder),
		statesGroup:   widget.NewGroup(NameStatesGroup, "Joint States"),
		jointStates:   widget.NewTextView(NameJointStates, 1, 1),
		status:        widget.NewLabel(NameStatus, StatusReady),
	}

	w.pathPlanning.SetCheckable(true)
	w.pathPlanning.OnToggled(w.onPathPlanningToggle)
	w.estopButton.SetCheckable(true)
	w.estopButton.OnToggled(w.onEStop)
	w.cameraTopic.OnCurrentIndexChanged(w.onCameraTopicChanged)
	w.view3dGroup.SetVisible(false)

	w.jointAngles.SetPlainText(joints.WaitingForAngles)
	w.jointStates.SetPlainText(joints.WaitingForStates)

	w.focus = widget.NewFocusRing(w.cameraTopic, w.pathPlanning, w.estopButton)

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		width, height = ui.GetTerminalSize()
	}
	w.resize(width, height)

	w.showSampleData()
	return w
}

func (w *Window) showSampleData() {
	states := joints.SampleStates()
	w.UpdateJointStates(states)
	w.UpdateJointAngles(joints.AnglesFromStates(states))
}

func (w *Window) onEStop(checked bool) {
	if checked {
		w.estopButton.SetText(EStopArmedText)
		w.status.SetText(StatusEStopActive)
	} else {
		w.estopButton.SetText(EStopDisarmedText)
		w.status.SetText(StatusReady)
	}
	logging.LogControl(windowName, NameEStopButton, "toggled", zap.Bool("armed", checked))
}

func (w *Window) onPathPlanningToggle(checked bool) {
	w.pathPlanningMode = checked
	if checked {
		w.pathPlanning.SetText(DisablePathPlanningText)
		w.view3dGroup.SetVisible(true)
		w.status.SetText(StatusPathPlanning)
	} else {
		w.pathPlanning.SetText(EnablePathPlanningText)
		w.view3dGroup.SetVisible(false)
		w.status.SetText(StatusReady)
	}
	logging.LogControl(windowName, NamePathPlanning, "toggled", zap.Bool("enabled", checked))
}

func (w *Window) onCameraTopicChanged(_ int, topic string) {
	logging.LogControl(windowName, NameCameraTopic, "changed", zap.String("topic", topic))
}

// UpdateJointStates re-renders the joint state panel, keyed by joint name.
func (w *Window) UpdateJointStates(states map[string]joints.JointState) {
	w.jointStates.SetPlainText(joints.FormatStates(states))
}

// UpdateJointAngles re-renders the joint angle panel, keyed by joint name.
func (w *Window) UpdateJointAngles(angles map[string]float64) {
	w.jointAngles.SetPlainText(joints.FormatAngles(angles))
}

// EStopArmed reports whether the emergency-stop toggle is armed.
func (w *Window) EStopArmed() bool { return w.estopButton.IsChecked() }

// PathPlanningEnabled reports whether path planning mode is on.
func (w *Window) PathPlanningEnabled() bool { return w.pathPlanningMode }

// View3DVisible reports whether the 3D panel is shown.
func (w *Window) View3DVisible() bool { return w.view3dGroup.IsVisible() }

// Status returns the status bar text.
func (w *Window) Status() string { return w.status.Text() }

// EStopButton exposes the emergency-stop toggle.
func (w *Window) EStopButton() *widget.PushButton { return w.estopButton }

// PathPlanningButton exposes the path-planning toggle.
func (w *Window) PathPlanningButton() *widget.PushButton { return w.pathPlanning }

// CameraTopic exposes the camera topic selector.
func (w *Window) CameraTopic() *widget.ComboBox { return w.cameraTopic }

// JointStatesText returns the joint state panel content.
func (w *Window) JointStatesText() string { return w.jointStates.PlainText() }

// JointAnglesText returns the joint angle panel content.
func (w *Window) JointAnglesText() string { return w.jointAngles.PlainText() }

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
		w.resize(msg.Width, msg.Height)

	case JointStatesMsg:
		w.UpdateJointStates(msg)

	case JointAnglesMsg:
		w.UpdateJointAngles(msg)

	case tea.KeyMsg:
		return w.handleKey(msg)
	}
	return w, nil
}

func (w *Window) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit):
		return w, tea.Quit

	case key.Matches(msg, w.keys.Next):
		w.focus.Next()

	case key.Matches(msg, w.keys.Prev):
		w.focus.Prev()

	case key.Matches(msg, w.keys.Activate):
		w.activateFocused()

	case key.Matches(msg, w.keys.Left):
		if w.focus.IsFocused(w.cameraTopic) {
			w.cameraTopic.Prev()
		}

	case key.Matches(msg, w.keys.Right):
		if w.focus.IsFocused(w.cameraTopic) {
			w.cameraTopic.Next()
		}

	case key.Matches(msg, w.keys.EStop):
		w.focus.Focus(NameEStopButton)
		w.estopButton.Click()

	case key.Matches(msg, w.keys.PathPlanning):
		w.pathPlanning.Click()

	case key.Matches(msg, w.keys.ScrollDown):
		w.jointStates.ScrollDown(1)
		w.jointAngles.ScrollDown(1)

	case key.Matches(msg, w.keys.ScrollUp):
		w.jointStates.ScrollUp(1)
		w.jointAngles.ScrollUp(1)

	case key.Matches(msg, w.keys.Help):
		w.help.ShowAll = !w.help.ShowAll
		w.resize(w.width, w.height)
	}
	return w, nil
}

func (w *Window) activateFocused() {
	switch c := w.focus.Current().(type) {
	case *widget.PushButton:
		c.Click()
	case *widget.ComboBox:
		c.Next()
	}
}

// columns splits the content width 1:2:1 like the original layout, with a
// one-column gap between panels.
func (w *Window) columns() (left, center, right int) {
	inner := w.width - 4 - 2
	left = inner / 4
	right = inner / 4
	center = inner - left - right
	return left, center, right
}

func (w *Window) resize(width, height int) {
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}
	if height < ui.MinTerminalHeight {
		height = ui.MinTerminalHeight
	}
	w.width, w.height = width, height
	w.help.Width = width - 4

	left, _, right := w.columns()
	// Frame, title bar, status, and help take the remaining rows.
	footer := 4
	if w.help.ShowAll {
		footer += 3
	}
	content := height - 2 - 2 - footer

	w.jointAngles.SetSize(left-4, anglesHeight)
	w.jointStates.SetSize(right-4, content-3)
}

// View implements tea.Model
func (w *Window) View() string {
	left, center, right := w.columns()
	gap := " "

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		w.renderLeft(left), gap,
		w.renderCenter(center), gap,
		w.renderRight(right),
	)

	inner := w.width - 4
	return ui.RenderWindow(
		w.theme.Title(NameTitle, w.title.Text(), inner),
		body,
		w.theme.Label(w.status, ui.StatusStyle, inner),
		w.help.View(w.keys),
		w.width, w.height,
	)
}

func (w *Window) renderLeft(width int) string {
	inner := width - 4

	controls := ui.Column(
		w.theme.Label(w.topicLabel, ui.LabelStyle, 0),
		w.theme.Combo(w.cameraTopic, w.focus.IsFocused(w.cameraTopic), inner),
		w.theme.Button(w.pathPlanning, ui.DefaultButtonStyles, w.focus.IsFocused(w.pathPlanning), inner),
	)

	estop := ui.Column(
		w.theme.Label(w.estopLabel, ui.EStopLabelStyle, inner),
		w.theme.Button(w.estopButton, ui.EStopButtonStyles, w.focus.IsFocused(w.estopButton), inner),
	)

	return ui.Column(
		w.theme.Group(w.controlGroup, controls, width),
		w.theme.Group(w.anglesGroup, w.theme.TextView(w.jointAngles), width),
		w.theme.Frame(NameEStopFrame, ui.EStopFrameStyle, estop, width),
	)
}

func (w *Window) renderCenter(width int) string {
	inner := width - 4
	return ui.Column(
		w.theme.Group(w.cameraGroup, w.theme.Label(w.cameraDisplay, ui.PlaceholderStyle, inner), width),
		w.theme.Group(w.view3dGroup, w.theme.Label(w.view3dDisplay, ui.PlaceholderStyle, inner), width),
	)
}

func (w *Window) renderRight(width int) string {
	return w.theme.Group(w.statesGroup, w.theme.TextView(w.jointStates), width)
}
