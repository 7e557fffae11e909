package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/figure"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StatePlotted {
			m = m.renderChart()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.status = ""
		m = m.saveSettings()
		if m.status == "" {
			m.status = "settings saved"
		}
		return m, nil
	}

	if m.state == StateLoading {
		// Only allow quit during loading
		return m, nil
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), nil
	case "shift+tab":
		return m.moveFocus(-1), nil
	case "ctrl+x":
		return m.toggleAxisMode(), nil
	case "ctrl+p":
		return m.plot(), nil
	case "ctrl+b":
		m.showBars = !m.showBars
		if m.state == StatePlotted {
			m = m.renderChart()
		}
		return m, nil
	case "esc":
		return m.handleEscapeKey(), nil
	case "enter":
		return m.handleEnterKey()
	}

	if m.focus.isColumnList() {
		return m.handleColumnKey(msg)
	}
	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m = m.saveSettings()
	return m, tea.Quit
}

func (m Model) moveFocus(delta int) Model {
	order := focusOrder(m.mode)
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.focus = order[idx]
	return m.applyFocus()
}

// toggleAxisMode switches between single and dual axis mode. The selection
// of the mode being left is kept in memory so switching back restores it.
func (m Model) toggleAxisMode() Model {
	m = m.remember()
	m.mode = m.mode.Toggle()
	m.log.WithField("mode", m.mode).Debug("axis mode changed")
	m = m.applyMode()
	m = m.applyFocus()
	m.selectedSeries = -1
	if m.state == StatePlotted {
		m.state = StateReady
		m.chartContent = ""
		m.legend = nil
	}
	return m
}

func (m Model) handleEscapeKey() Model {
	if m.state == StatePlotted || m.state == StateError {
		m.state = m.readyState()
		m.err = nil
		m.chartContent = ""
		m.legend = nil
		m.selectedSeries = -1
	}
	return m
}

func (m Model) readyState() State {
	if len(m.table.Columns) == 0 {
		return StateNoFile
	}
	return StateReady
}

func (m Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focus == FocusFile {
		path := strings.TrimSpace(m.fileInput.Value())
		if path == "" {
			return m, nil
		}
		m.state = StateLoading
		m.err = nil
		return m, tea.Batch(m.loadFile(path), m.spinner.Tick)
	}
	return m.plot(), nil
}

func (m Model) handleColumnKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := &m.leftColumns
	if m.focus == FocusRightColumns {
		list = &m.rightColumns
	}

	switch msg.String() {
	case "up", "k":
		*list = list.Move(-1, true)
	case "down", "j":
		*list = list.Move(1, true)
	case "pgup":
		*list = list.Move(-columnListPageSize, true)
	case "pgdown":
		*list = list.Move(columnListPageSize, true)
	case " ", "x":
		*list = list.Toggle(true)
	case "[", "]":
		if m.state == StatePlotted {
			return m.cycleSeries(msg.String()), nil
		}
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) cycleSeries(key string) Model {
	n := len(m.legend)
	if n == 0 {
		return m
	}
	// -1 (all) sits between the last and the first series.
	switch key {
	case "]":
		m.selectedSeries++
		if m.selectedSeries >= n {
			m.selectedSeries = -1
		}
	case "[":
		m.selectedSeries--
		if m.selectedSeries < -1 {
			m.selectedSeries = n - 1
		}
	}
	return m.renderChart()
}

func (m Model) loadFile(path string) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		start := time.Now()
		table, err := loader.Load(path)
		return fileLoadedMsg{
			path:     path,
			table:    table,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	log := m.log.WithFields(logrus.Fields{"file": msg.path, "duration": msg.duration})
	if msg.err != nil {
		log.WithError(msg.err).Warn("loading file failed")
		m.state = StateError
		m.err = msg.err
		return m, nil
	}
	log.WithFields(logrus.Fields{"rows": msg.table.Rows, "columns": len(msg.table.Columns)}).Info("file loaded")

	m.table = msg.table
	m.settings.LastFile = msg.path
	m.state = StateReady
	m.err = nil
	m.status = fmt.Sprintf("%d rows, %d columns loaded in %s", msg.table.Rows, len(msg.table.Columns), formatDuration(msg.duration))
	m.chartContent = ""
	m.legend = nil
	m.selectedSeries = -1
	m = m.applyMode()
	m = m.applyFocus()
	return m, nil
}

// plot builds the figure from the current inputs and renders it. The inputs
// are saved as settings first.
func (m Model) plot() Model {
	if len(m.table.Columns) == 0 {
		m.status = "choose a file first"
		return m
	}
	m = m.saveSettings()

	fig, err := figure.Build(m.table, m.selection(), m.palette)
	if err != nil {
		m.log.WithError(err).Info("plot rejected")
		m.state = StateError
		m.err = err
		return m
	}
	m.log.WithFields(logrus.Fields{"mode": fig.Mode, "series": len(fig.Series())}).Debug("plotting")

	m.figure = fig
	m.selectedSeries = -1
	m.state = StatePlotted
	m.err = nil
	return m.renderChart()
}

func (m Model) renderChart() Model {
	if m.showBars {
		m.chartContent = charts.Barchart(m.figure, m.chartWidth())
		m.legend = charts.Legend(m.figure)
		return m
	}
	m.chartContent, m.legend = charts.Linechart(m.figure, m.chartWidth(), m.selectedSeries)
	return m
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
