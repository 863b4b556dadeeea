// Package joints holds the arm joint data model and the plain-text tables the
// control panels render it into.
package joints

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholder text shown before any joint data has been rendered.
const (
	WaitingForStates = "Waiting for joint state data..."
	WaitingForAngles = "Waiting for joint angle data..."
)

// JointState describes one degree of freedom of the arm.
// Homed and Homing are not mutually exclusive; Homed wins when both are set.
type JointState struct {
	Name     string
	Position float64 // radians
	Velocity float64
	Effort   float64
	Homed    bool
	Homing   bool
}

// JointStatus is the homing status shown next to a joint.
type JointStatus int

const (
	NotHomed JointStatus = iota
	Homing
	Homed
)

// String returns the status text.
func (s JointStatus) String() string {
	switch s {
	case Homed:
		return "HOMED"
	case Homing:
		return "HOMING"
	default:
		return "NOT HOMED"
	}
}

// Glyph returns the colored marker shown before the status text.
func (s JointStatus) Glyph() string {
	switch s {
	case Homed:
		return "🟢"
	case Homing:
		return "🟡"
	default:
		return "🔴"
	}
}

// Status resolves a joint's status with priority homed > homing > not homed.
func Status(state JointState) JointStatus {
	switch {
	case state.Homed:
		return Homed
	case state.Homing:
		return Homing
	default:
		return NotHomed
	}
}

// SampleStates returns the fixed demonstration data shown at startup.
func SampleStates() map[string]JointState {
	return map[string]JointState{
		"joint1": {Name: "joint1", Position: 0.1, Homed: true},
		"joint2": {Name: "joint2", Position: 0.2, Homed: true},
		"joint3": {Name: "joint3", Position: -0.1, Homing: true},
		"joint4": {Name: "joint4", Position: 0.3, Homed: true},
	}
}

// AnglesFromStates maps each joint name to its position.
func AnglesFromStates(states map[string]JointState) map[string]float64 {
	angles := make(map[string]float64, len(states))
	for name, state := range states {
		angles[name] = state.Position
	}
	return angles
}

const (
	statesHeader = "Joint Name        | Position (rad) | Velocity | Effort | Status"
	anglesHeader = "Joint Angles (radians):"
)

// FormatStates renders the joint state table, sorted by joint name. The map
// key is the displayed name.
func FormatStates(states map[string]JointState) string {
	var b strings.Builder
	b.WriteString(statesHeader + "\n")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	for _, name := range sortedKeys(states) {
		state := states[name]
		status := Status(state)
		fmt.Fprintf(&b, "%-15s | %13.4f | %7.3f | %6.2f | %s %s\n",
			name, state.Position, state.Velocity, state.Effort, status.Glyph(), status)
	}
	return b.String()
}

// FormatAngles renders the joint angle list, sorted by joint name.
func FormatAngles(angles map[string]float64) string {
	var b strings.Builder
	b.WriteString(anglesHeader + "\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, name := range sortedKeys(angles) {
		fmt.Fprintf(&b, "%-15s: %10.4f\n", name, angles[name])
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
