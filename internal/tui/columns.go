package tui

import (
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	columnListPageSize = 8
	columnNameWidth    = 24
)

// columnList is a multi-select list of CSV columns.
type columnList struct {
	title    string
	names    []string
	selected map[int]bool
	cursor   int
	table    teatable.Model
}

func newColumnList(title string, names []string) columnList {
	l := columnList{
		title:    title,
		names:    names,
		selected: make(map[int]bool),
	}
	return l.rebuild(false)
}

// Selected returns the selected names in column order.
func (l columnList) Selected() []string {
	out := make([]string, 0, len(l.selected))
	for i, name := range l.names {
		if l.selected[i] {
			out = append(out, name)
		}
	}
	return out
}

// Select marks every column whose name is in names.
func (l columnList) Select(names []string, focused bool) columnList {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	l.selected = make(map[int]bool)
	for i, name := range l.names {
		if want[name] {
			l.selected[i] = true
		}
	}
	return l.rebuild(focused)
}

func (l columnList) Move(delta int, focused bool) columnList {
	if len(l.names) == 0 {
		return l
	}
	l.cursor = min(max(l.cursor+delta, 0), len(l.names)-1)
	return l.rebuild(focused)
}

func (l columnList) Toggle(focused bool) columnList {
	if len(l.names) == 0 {
		return l
	}
	if l.selected[l.cursor] {
		delete(l.selected, l.cursor)
	} else {
		l.selected[l.cursor] = true
	}
	return l.rebuild(focused)
}

func (l columnList) rebuild(focused bool) columnList {
	rows := make([]teatable.Row, 0, len(l.names))
	longest := columnNameWidth
	for i, name := range l.names {
		longest = max(longest, len(name))
		mark := ""
		if l.selected[i] {
			mark = "x"
		}
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"sel":    mark,
			"column": name,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("sel", "", 3),
		teatable.NewColumn("column", l.title, min(longest, 40)),
	}

	l.table = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(columnListPageSize).
		Focused(focused).
		WithBaseStyle(lipgloss.NewStyle()).
		WithHighlightedRow(l.cursor)
	return l
}

func (l columnList) View() string {
	if len(l.names) == 0 {
		return MutedStyle.Render(l.title + ": no file loaded")
	}
	return l.table.View()
}
