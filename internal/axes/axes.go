// Package axes models the single/dual y-axis choice as a two-state machine.
//
// Transitions only compute the next Mode. The set of per-axis panes a mode
// needs is derived by Panes, so callers rebuild their widgets from that set
// instead of mutating layouts during the transition.
package axes

import (
	"fmt"
	"strings"
)

// Mode is the y-axis layout of a chart.
type Mode int

const (
	SingleAxis Mode = iota
	DualAxis
)

func (m Mode) String() string {
	switch m {
	case SingleAxis:
		return "single"
	case DualAxis:
		return "dual"
	default:
		return "unknown"
	}
}

// Label is the human readable name shown in mode selectors.
func (m Mode) Label() string {
	switch m {
	case SingleAxis:
		return "Single y axis"
	case DualAxis:
		return "Dual y axis"
	default:
		return "Unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == DualAxis {
		return SingleAxis
	}
	return DualAxis
}

// ParseMode accepts "single" or "dual" (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return SingleAxis, nil
	case "dual":
		return DualAxis, nil
	default:
		return SingleAxis, fmt.Errorf("unknown axis mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Pane is one axis-dependent input.
type Pane int

const (
	PaneLeftColumns Pane = iota
	PaneLeftLabel
	PaneRightColumns
	PaneRightLabel
)

func (p Pane) String() string {
	switch p {
	case PaneLeftColumns:
		return "left columns"
	case PaneLeftLabel:
		return "left axis label"
	case PaneRightColumns:
		return "right columns"
	case PaneRightLabel:
		return "right axis label"
	default:
		return "unknown"
	}
}

// Panes returns the panes required by mode, in display order.
func Panes(m Mode) []Pane {
	if m == DualAxis {
		return []Pane{PaneLeftColumns, PaneLeftLabel, PaneRightColumns, PaneRightLabel}
	}
	return []Pane{PaneLeftColumns, PaneLeftLabel}
}

// Has reports whether mode shows pane.
func Has(m Mode, p Pane) bool {
	for _, candidate := range Panes(m) {
		if candidate == p {
			return true
		}
	}
	return false
}

// MarshalYAML writes the mode as its name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML reads a mode name.
func (m *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
