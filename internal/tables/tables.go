// Package tables shows a filterable summary of CSV columns.
package tables

import (
	"strconv"
	"strings"

	"github.com/akasprzok/graphdrawer/internal/dataset"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// Columns builds the summary table for t.
func Columns(t dataset.Table) Model {
	longestName := 0
	rows := make([]teatable.Row, 0, len(t.Columns))
	for _, s := range t.Summarize() {
		longestName = max(longestName, len(s.Name))
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"index":   strconv.Itoa(s.Index),
			"name":    s.Name,
			"kind":    s.Kind,
			"missing": strconv.Itoa(s.Missing),
			"min":     formatFloat(s.Min),
			"max":     formatFloat(s.Max),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("index", "#", 4),
		teatable.NewColumn("name", "Column", max(longestName+1, 8)).WithFiltered(true),
		teatable.NewColumn("kind", "Kind", 12).WithFiltered(true),
		teatable.NewColumn("missing", "Missing", 8),
		teatable.NewColumn("min", "Min", 12),
		teatable.NewColumn("max", "Max", 12),
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, nil
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			return m, tea.Quit
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
