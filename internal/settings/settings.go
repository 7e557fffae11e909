// Package settings persists the last plot inputs between runs.
package settings

import (
	"github.com/akasprzok/graphdrawer/internal/axes"
)

// Settings is everything restored when a file is opened again.
type Settings struct {
	LastFile string    `yaml:"last_file,omitempty"`
	Title    string    `yaml:"title,omitempty"`
	XLabel   string    `yaml:"x_label,omitempty"`
	Mode     axes.Mode `yaml:"mode"`
	Single   Single    `yaml:"single"`
	Dual     Dual      `yaml:"dual"`
}

// Single holds the single axis selection.
type Single struct {
	Columns   []string `yaml:"columns,omitempty"`
	LeftLabel string   `yaml:"left_label,omitempty"`
}

// Dual holds the dual axis selection.
type Dual struct {
	LeftColumns  []string `yaml:"left_columns,omitempty"`
	LeftLabel    string   `yaml:"left_label,omitempty"`
	RightColumns []string `yaml:"right_columns,omitempty"`
	RightLabel   string   `yaml:"right_label,omitempty"`
}

// Store loads and saves Settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// Restored is a saved selection matched against the columns of a file.
type Restored struct {
	LeftColumns  []string
	LeftLabel    string
	RightColumns []string
	RightLabel   string
}

// Restore returns the saved selection for mode, keeping only names present
// in columns. Results follow the order of columns.
func (s Settings) Restore(mode axes.Mode, columns []string) Restored {
	if mode == axes.DualAxis {
		return Restored{
			LeftColumns:  filter(columns, s.Dual.LeftColumns),
			LeftLabel:    s.Dual.LeftLabel,
			RightColumns: filter(columns, s.Dual.RightColumns),
			RightLabel:   s.Dual.RightLabel,
		}
	}
	return Restored{
		LeftColumns: filter(columns, s.Single.Columns),
		LeftLabel:   s.Single.LeftLabel,
	}
}

// Remember stores a selection for mode, leaving the other mode untouched.
func (s *Settings) Remember(mode axes.Mode, r Restored) {
	s.Mode = mode
	if mode == axes.DualAxis {
		s.Dual = Dual{
			LeftColumns:  clone(r.LeftColumns),
			LeftLabel:    r.LeftLabel,
			RightColumns: clone(r.RightColumns),
			RightLabel:   r.RightLabel,
		}
		return
	}
	s.Single = Single{
		Columns:   clone(r.LeftColumns),
		LeftLabel: r.LeftLabel,
	}
}

func filter(columns, saved []string) []string {
	want := make(map[string]bool, len(saved))
	for _, name := range saved {
		want[name] = true
	}
	out := make([]string, 0, len(saved))
	for _, name := range columns {
		if want[name] {
			out = append(out, name)
			delete(want, name)
		}
	}
	return out
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}

// MemoryStore keeps settings in memory.
type MemoryStore struct {
	Settings Settings
	Saves    int
}

func (m *MemoryStore) Load() (Settings, error) {
	return m.Settings, nil
}

func (m *MemoryStore) Save(s Settings) error {
	m.Settings = s
	m.Saves++
	return nil
}
