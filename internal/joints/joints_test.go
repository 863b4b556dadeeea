package joints

import (
	"strings"
	"testing"
)

func TestStatusPriority(t *testing.T) {
	tests := []struct {
		name  string
		state JointState
		want  JointStatus
		glyph string
		label string
	}{
		{"homed", JointState{Homed: true}, Homed, "🟢", "HOMED"},
		{"homing", JointState{Homing: true}, Homing, "🟡", "HOMING"},
		{"neither", JointState{}, NotHomed, "🔴", "NOT HOMED"},
		{"stale both set", JointState{Homed: true, Homing: true}, Homed, "🟢", "HOMED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Status(tt.state)
			if got != tt.want {
				t.Fatalf("Status() = %v, want %v", got, tt.want)
			}
			if got.Glyph() != tt.glyph {
				t.Errorf("Glyph() = %q, want %q", got.Glyph(), tt.glyph)
			}
			if got.String() != tt.label {
				t.Errorf("String() = %q, want %q", got.String(), tt.label)
			}
		})
	}
}

func TestFormatStatesSortsByName(t *testing.T) {
	states := map[string]JointState{
		"joint2": {Position: 0.2, Homed: true},
		"joint1": {Homing: true},
	}

	out := FormatStates(states)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}

	if lines[0] != "Joint Name        | Position (rad) | Velocity | Effort | Status" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", 70) {
		t.Errorf("divider = %q", lines[1])
	}

	want1 := "joint1          |        0.0000 |   0.000 |   0.00 | 🟡 HOMING"
	want2 := "joint2          |        0.2000 |   0.000 |   0.00 | 🟢 HOMED"
	if lines[2] != want1 {
		t.Errorf("row 1 = %q, want %q", lines[2], want1)
	}
	if lines[3] != want2 {
		t.Errorf("row 2 = %q, want %q", lines[3], want2)
	}
}

func TestFormatStatesNegativeAndWideValues(t *testing.T) {
	out := FormatStates(map[string]JointState{
		"wrist_roll": {Position: -1.5707963, Velocity: -0.25, Effort: 12.5},
	})
	want := "wrist_roll      |       -1.5708 |  -0.250 |  12.50 | 🔴 NOT HOMED\n"
	if !strings.HasSuffix(out, want) {
		t.Errorf("row = %q, want suffix %q", out, want)
	}
}

func TestFormatStatesEmpty(t *testing.T) {
	out := FormatStates(nil)
	if strings.Count(out, "\n") != 2 {
		t.Errorf("empty table should only have header and divider, got:\n%s", out)
	}
}

func TestFormatAngles(t *testing.T) {
	out := FormatAngles(map[string]float64{"jointA": 1.23456})
	want := "Joint Angles (radians):\n" +
		strings.Repeat("=", 40) + "\n" +
		"jointA         :     1.2346\n"
	if out != want {
		t.Errorf("FormatAngles() =\n%q\nwant\n%q", out, want)
	}
}

func TestFormatAnglesSorted(t *testing.T) {
	out := FormatAngles(map[string]float64{"b": 2, "a": 1, "c": -3})
	ia := strings.Index(out, "a  ")
	ib := strings.Index(out, "b  ")
	ic := strings.Index(out, "c  ")
	if !(ia < ib && ib < ic) {
		t.Errorf("angles not sorted:\n%s", out)
	}
}

func TestSampleData(t *testing.T) {
	states := SampleStates()
	if len(states) != 4 {
		t.Fatalf("got %d sample joints, want 4", len(states))
	}
	if Status(states["joint3"]) != Homing {
		t.Errorf("joint3 should be homing")
	}

	angles := AnglesFromStates(states)
	if angles["joint3"] != -0.1 || angles["joint4"] != 0.3 {
		t.Errorf("angles not derived from positions: %v", angles)
	}
}
