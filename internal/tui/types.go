package tui

import (
	"time"

	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/dataset"
)

// State represents the current state of the TUI.
type State int

const (
	StateNoFile State = iota
	StateLoading
	StateReady
	StatePlotted
	StateError
)

func (s State) String() string {
	switch s {
	case StateNoFile:
		return "no file"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlotted:
		return "plotted"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Focus tracks which input has focus.
type Focus int

const (
	FocusFile Focus = iota
	FocusTitle
	FocusXLabel
	FocusLeftColumns
	FocusLeftLabel
	FocusRightColumns
	FocusRightLabel
)

func (f Focus) String() string {
	switch f {
	case FocusFile:
		return "file"
	case FocusTitle:
		return "title"
	case FocusXLabel:
		return "x label"
	case FocusLeftColumns:
		return "left columns"
	case FocusLeftLabel:
		return "left label"
	case FocusRightColumns:
		return "right columns"
	case FocusRightLabel:
		return "right label"
	default:
		return "unknown"
	}
}

func (f Focus) isColumnList() bool {
	return f == FocusLeftColumns || f == FocusRightColumns
}

var paneFocus = map[axes.Pane]Focus{
	axes.PaneLeftColumns:  FocusLeftColumns,
	axes.PaneLeftLabel:    FocusLeftLabel,
	axes.PaneRightColumns: FocusRightColumns,
	axes.PaneRightLabel:   FocusRightLabel,
}

// focusOrder is the tab order for mode: the shared inputs followed by the
// panes the mode requires.
func focusOrder(mode axes.Mode) []Focus {
	order := []Focus{FocusFile, FocusTitle, FocusXLabel}
	for _, pane := range axes.Panes(mode) {
		order = append(order, paneFocus[pane])
	}
	return order
}

// fileLoadedMsg carries the result of loading a CSV file.
type fileLoadedMsg struct {
	path     string
	table    dataset.Table
	err      error
	duration time.Duration
}
