package tui

import (
	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/dataset"
	"github.com/akasprzok/graphdrawer/internal/figure"
	"github.com/akasprzok/graphdrawer/internal/settings"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Model is the main Bubble Tea model for the interactive TUI.
type Model struct {
	loader  dataset.Loader
	store   settings.Store
	palette charts.Palette
	log     *logrus.Entry

	settings settings.Settings
	state    State
	err      error
	status   string

	// Data
	table dataset.Table
	mode  axes.Mode

	// Inputs
	fileInput       textinput.Model
	titleInput      textinput.Model
	xLabelInput     textinput.Model
	leftLabelInput  textinput.Model
	rightLabelInput textinput.Model
	leftColumns     columnList
	rightColumns    columnList
	focus           Focus

	// Rendered content
	figure         charts.Figure
	chartContent   string
	legend         []charts.LegendEntry
	selectedSeries int // -1 means all series
	showBars       bool

	// UI state
	width   int
	height  int
	spinner spinner.Model
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 60
	return ti
}

// New creates the TUI model. Saved settings are loaded from store; file,
// when not empty, replaces the last opened file.
func New(loader dataset.Loader, store settings.Store, palette charts.Palette, log *logrus.Entry, file string) Model {
	saved, loadErr := store.Load()
	if loadErr != nil {
		log.WithError(loadErr).Warn("ignoring unreadable settings")
		saved = settings.Settings{}
	}

	m := Model{
		loader:          loader,
		store:           store,
		palette:         palette,
		log:             log,
		settings:        saved,
		state:           StateNoFile,
		mode:            saved.Mode,
		fileInput:       newInput("CSV file path..."),
		titleInput:      newInput("Graph Title.."),
		xLabelInput:     newInput("X axis Title..."),
		leftLabelInput:  newInput("Left y axis label.."),
		rightLabelInput: newInput("Right y axis label.."),
		focus:           FocusFile,
		selectedSeries:  -1,
		spinner:         NewLoadingSpinner(),
	}
	if loadErr != nil {
		m.status = "settings not loaded: " + loadErr.Error()
	}
	m.titleInput.SetValue(saved.Title)
	m.xLabelInput.SetValue(saved.XLabel)
	if file == "" {
		file = saved.LastFile
	}
	m.fileInput.SetValue(file)
	m = m.applyMode()
	m = m.applyFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.fileInput.Value() != "" {
		cmds = append(cmds, m.loadFile(m.fileInput.Value()))
	}
	return tea.Batch(cmds...)
}

// applyMode rebuilds the axis dependent widgets for m.mode and restores the
// saved selection for it.
func (m Model) applyMode() Model {
	names := m.table.Names()
	restored := m.settings.Restore(m.mode, names)

	m.leftColumns = newColumnList("Left y axis", names).Select(restored.LeftColumns, m.focus == FocusLeftColumns)
	m.leftLabelInput.SetValue(restored.LeftLabel)
	if axes.Has(m.mode, axes.PaneRightColumns) {
		m.rightColumns = newColumnList("Right y axis", names).Select(restored.RightColumns, m.focus == FocusRightColumns)
		m.rightLabelInput.SetValue(restored.RightLabel)
	} else {
		m.rightColumns = columnList{}
		m.rightLabelInput.SetValue("")
	}

	if !m.focusVisible() {
		m.focus = FocusLeftColumns
	}
	return m
}

func (m Model) focusVisible() bool {
	for _, f := range focusOrder(m.mode) {
		if f == m.focus {
			return true
		}
	}
	return false
}

// applyFocus focuses the input matching m.focus and blurs the rest.
func (m Model) applyFocus() Model {
	inputs := map[Focus]*textinput.Model{
		FocusFile:       &m.fileInput,
		FocusTitle:      &m.titleInput,
		FocusXLabel:     &m.xLabelInput,
		FocusLeftLabel:  &m.leftLabelInput,
		FocusRightLabel: &m.rightLabelInput,
	}
	for f, in := range inputs {
		if f == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	m.leftColumns = m.leftColumns.rebuild(m.focus == FocusLeftColumns)
	if m.rightColumns.names != nil {
		m.rightColumns = m.rightColumns.rebuild(m.focus == FocusRightColumns)
	}
	return m
}

// focusedInput returns the text input with focus, or nil for column lists.
func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case FocusFile:
		return &m.fileInput
	case FocusTitle:
		return &m.titleInput
	case FocusXLabel:
		return &m.xLabelInput
	case FocusLeftLabel:
		return &m.leftLabelInput
	case FocusRightLabel:
		return &m.rightLabelInput
	default:
		return nil
	}
}

// selection collects the current inputs.
func (m Model) selection() figure.Selection {
	sel := figure.Selection{
		Title:       m.titleInput.Value(),
		XLabel:      m.xLabelInput.Value(),
		Mode:        m.mode,
		LeftColumns: m.leftColumns.Selected(),
		LeftLabel:   m.leftLabelInput.Value(),
	}
	if m.mode == axes.DualAxis {
		sel.RightColumns = m.rightColumns.Selected()
		sel.RightLabel = m.rightLabelInput.Value()
	}
	return sel
}

// remember copies the current inputs into m.settings.
func (m Model) remember() Model {
	sel := m.selection()
	m.settings.Title = sel.Title
	m.settings.XLabel = sel.XLabel
	if m.table.Path != "" {
		m.settings.LastFile = m.table.Path
	}
	if len(m.table.Columns) > 0 {
		m.settings.Remember(m.mode, settings.Restored{
			LeftColumns:  sel.LeftColumns,
			LeftLabel:    sel.LeftLabel,
			RightColumns: sel.RightColumns,
			RightLabel:   sel.RightLabel,
		})
	}
	m.settings.Mode = m.mode
	return m
}

func (m Model) saveSettings() Model {
	m = m.remember()
	if err := m.store.Save(m.settings); err != nil {
		m.log.WithError(err).Error("saving settings")
		m.status = "could not save settings: " + err.Error()
	}
	return m
}

func (m Model) chartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		width = charts.TerminalWidth() - ChartWidthPadding
	}
	return width
}
