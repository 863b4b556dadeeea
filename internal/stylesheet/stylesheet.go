// Package stylesheet loads the optional style-description file that restyles
// the control panels.
//
// The file is YAML keyed by control object name:
//
//	title:
//	  foreground: "#58a6ff"
//	  bold: true
//	estop_button:
//	  foreground: "#ffffff"
//	  background: "#8b0000"
//	  border: rounded
//	  checked:
//	    background: "#ff0000"
//
// A missing or broken file never stops a window from opening; LoadOptional
// falls back to an empty sheet, which renders the default appearance.
package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rsx-robotics/arm-control/internal/logging"
)

// DefaultPath is the stylesheet looked up in the working directory.
const DefaultPath = "styles.yaml"

// ErrInvalidRule is returned for a rule with an unsupported value.
var ErrInvalidRule = errors.New("invalid stylesheet rule")

// State selects a state variant of a rule.
type State int

const (
	Checked State = iota
	Focused
)

// Rule is the style applied to one control. Unset fields keep the
// control's default.
type Rule struct {
	Foreground       string `yaml:"foreground,omitempty"`
	Background       string `yaml:"background,omitempty"`
	Border           string `yaml:"border,omitempty"`
	BorderForeground string `yaml:"border_foreground,omitempty"`
	Bold             *bool  `yaml:"bold,omitempty"`
	Italic           *bool  `yaml:"italic,omitempty"`
	Underline        *bool  `yaml:"underline,omitempty"`
	Padding          []int  `yaml:"padding,omitempty"`
	Align            string `yaml:"align,omitempty"`

	Checked *Rule `yaml:"checked,omitempty"`
	Focused *Rule `yaml:"focused,omitempty"`
}

// Sheet maps control object names to rules. The zero value and a nil *Sheet
// are both empty sheets.
type Sheet struct {
	Path  string
	Rules map[string]Rule
}

// Empty returns a sheet without rules.
func Empty() *Sheet {
	return &Sheet{Rules: map[string]Rule{}}
}

// Load reads and validates the stylesheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	sheet.Path = path
	return sheet, nil
}

// LoadOptional loads path and falls back to an empty sheet on any failure.
// Failures are logged, never returned.
func LoadOptional(path string) *Sheet {
	if path == "" {
		return Empty()
	}

	sheet, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("No stylesheet found, using default appearance", zap.String("path", path))
		} else {
			logging.LogStylesheet(path, 0, err)
		}
		return Empty()
	}

	logging.LogStylesheet(path, sheet.Len(), nil)
	return sheet
}

// Parse decodes stylesheet YAML. Unknown rule fields are rejected.
func Parse(data []byte) (*Sheet, error) {
	rules := map[string]Rule{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	for name, rule := range rules {
		if err := rule.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return &Sheet{Rules: rules}, nil
}

// Len returns the number of rules in the sheet.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

// Names returns the styled object names in sorted order.
func (s *Sheet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Rules))
	for name := range s.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style layers the rule for name, then any requested state variants, over
// base. Without a matching rule base is returned unchanged.
func (s *Sheet) Style(name string, base lipgloss.Style, states ...State) lipgloss.Style {
	if s == nil {
		return base
	}
	rule, ok := s.Rules[name]
	if !ok {
		return base
	}

	style := rule.Apply(base)
	for _, state := range states {
		var variant *Rule
		switch state {
		case Checked:
			variant = rule.Checked
		case Focused:
			variant = rule.Focused
		}
		if variant != nil {
			style = variant.Apply(style)
		}
	}
	return style
}

// Apply returns base with the rule's set fields applied.
func (r Rule) Apply(base lipgloss.Style) lipgloss.Style {
	style := base
	if r.Foreground != "" {
		style = style.Foreground(lipgloss.Color(r.Foreground))
	}
	if r.Background != "" {
		style = style.Background(lipgloss.Color(r.Background))
	}
	if r.Border != "" {
		style = style.Border(borders[r.Border])
	}
	if r.BorderForeground != "" {
		style = style.BorderForeground(lipgloss.Color(r.BorderForeground))
	}
	if r.Bold != nil {
		style = style.Bold(*r.Bold)
	}
	if r.Italic != nil {
		style = style.Italic(*r.Italic)
	}
	if r.Underline != nil {
		style = style.Underline(*r.Underline)
	}
	if len(r.Padding) > 0 {
		style = style.Padding(r.Padding...)
	}
	if r.Align != "" {
		style = style.Align(alignments[r.Align])
	}
	return style
}

var (
	borders = map[string]lipgloss.Border{
		"normal":  lipgloss.NormalBorder(),
		"rounded": lipgloss.RoundedBorder(),
		"double":  lipgloss.DoubleBorder(),
		"thick":   lipgloss.ThickBorder(),
		"hidden":  lipgloss.HiddenBorder(),
	}

	alignments = map[string]lipgloss.Position{
		"left":   lipgloss.Left,
		"center": lipgloss.Center,
		"right":  lipgloss.Right,
	}

	hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func (r Rule) validate() error {
	for field, value := range map[string]string{
		"foreground":        r.Foreground,
		"background":        r.Background,
		"border_foreground": r.BorderForeground,
	} {
		if value != "" && !validColor(value) {
			return fmt.Errorf("%w: %s %q is not a hex or ANSI color", ErrInvalidRule, field, value)
		}
	}

	if r.Border != "" {
		if _, ok := borders[r.Border]; !ok {
			return fmt.Errorf("%w: unknown border %q", ErrInvalidRule, r.Border)
		}
	}
	if r.Align != "" {
		if _, ok := alignments[r.Align]; !ok {
			return fmt.Errorf("%w: unknown align %q", ErrInvalidRule, r.Align)
		}
	}

	if len(r.Padding) > 4 {
		return fmt.Errorf("%w: padding takes 1 to 4 values, got %d", ErrInvalidRule, len(r.Padding))
	}
	for _, p := range r.Padding {
		if p < 0 {
			return fmt.Errorf("%w: negative padding %d", ErrInvalidRule, p)
		}
	}

	if r.Checked != nil {
		if err := r.Checked.validate(); err != nil {
			return fmt.Errorf("checked: %w", err)
		}
	}
	if r.Focused != nil {
		if err := r.Focused.validate(); err != nil {
			return fmt.Errorf("focused: %w", err)
		}
	}
	return nil
}

func validColor(value string) bool {
	if hexColor.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
