// Package figure turns a table and a column selection into styled series.
package figure

import (
	"errors"
	"fmt"

	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/dataset"
)

// ErrNothingSelected is returned when no column is selected on any axis.
var ErrNothingSelected = errors.New("no columns selected")

// Selection is what the user asked to plot.
type Selection struct {
	Title        string
	XLabel       string
	Mode         axes.Mode
	LeftColumns  []string
	LeftLabel    string
	RightColumns []string
	RightLabel   string
}

// Build resolves the selection against table and colors every series.
// In single axis mode the right side of the selection is ignored.
func Build(table dataset.Table, sel Selection, palette charts.Palette) (charts.Figure, error) {
	right := sel.RightColumns
	if sel.Mode == axes.SingleAxis {
		right = nil
	}
	if len(sel.LeftColumns) == 0 && len(right) == 0 {
		return charts.Figure{}, ErrNothingSelected
	}

	leftColors, rightColors, err := palette.Assign(sel.LeftColumns, right)
	if err != nil {
		return charts.Figure{}, err
	}

	fig := charts.Figure{
		Title:  sel.Title,
		XLabel: sel.XLabel,
		Mode:   sel.Mode,
		Left:   charts.Axis{Label: sel.LeftLabel},
	}
	if sel.Mode == axes.DualAxis {
		fig.Right.Label = sel.RightLabel
	}

	xs := table.XValues()
	fig.Left.Series, err = buildSeries(table, xs, sel.LeftColumns, leftColors, charts.Left)
	if err != nil {
		return charts.Figure{}, err
	}
	fig.Right.Series, err = buildSeries(table, xs, right, rightColors, charts.Right)
	if err != nil {
		return charts.Figure{}, err
	}
	return fig, nil
}

func buildSeries(table dataset.Table, xs []float64, names, colors []string, side charts.Side) ([]charts.Series, error) {
	out := make([]charts.Series, 0, len(names))
	for i, name := range names {
		col, err := table.Column(name)
		if err != nil {
			return nil, fmt.Errorf("%s axis: %w", side, err)
		}
		out = append(out, charts.Series{
			Name:  name,
			Side:  side,
			Color: colors[i],
			X:     xs,
			Y:     col.Values,
		})
	}
	return out, nil
}
