package charts

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// LastValue returns the last finite value of s.
func LastValue(s Series) (float64, bool) {
	for i := len(s.Y) - 1; i >= 0; i-- {
		if !math.IsNaN(s.Y[i]) && !math.IsInf(s.Y[i], 0) {
			return s.Y[i], true
		}
	}
	return 0, false
}

// Barchart draws one horizontal bar per series showing its last value.
func Barchart(fig Figure, width int) string {
	barData := make([]barchart.BarData, 0)
	for _, axis := range fig.Axes() {
		for _, s := range axis.Series {
			v, ok := LastValue(s)
			if !ok {
				continue
			}
			barData = append(barData, barchart.BarData{
				Label: fmt.Sprintf("%s (%s)", s.Name, formatValue(v)),
				Values: []barchart.BarValue{
					{Name: s.Name, Value: v, Style: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))},
				},
			})
		}
	}
	if len(barData) == 0 {
		return ""
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4g", v)
}
