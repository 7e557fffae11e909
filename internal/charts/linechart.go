package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var axisStyle = lipgloss.NewStyle().
	Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().
	Foreground(LabelColor)

var titleStyle = lipgloss.NewStyle().Bold(true)

// LegendEntry describes one drawn series.
type LegendEntry struct {
	Name  string
	Color string
	Side  Side
}

// Linechart draws one braille line chart panel per axis of fig and returns
// the panels and the legend separately. Rows are placed on the x-axis by
// their 1-based index.
//
// selected is an index into the drawn series, left axis first; when it is in
// range only that series is drawn, -1 draws everything. The legend always
// lists every drawn series.
func Linechart(fig Figure, width, selected int) (chart string, legend []LegendEntry) {
	legend = Legend(fig)
	if selected >= len(legend) {
		selected = -1
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	var panels []string
	if fig.Title != "" {
		panels = append(panels, titleStyle.Render(fig.Title))
	}
	offset := 0
	for _, axis := range fig.Axes() {
		visible := axis.Series
		if selected >= 0 {
			visible = nil
			if selected >= offset && selected < offset+len(axis.Series) {
				visible = axis.Series[selected-offset : selected-offset+1]
			}
		}
		offset += len(axis.Series)

		if axis.Label != "" {
			panels = append(panels, labelStyle.Render(axis.Label))
		}
		panels = append(panels, linePanel(visible, width, height))
	}
	if fig.XLabel != "" {
		panels = append(panels, lipgloss.PlaceHorizontal(width, lipgloss.Center, labelStyle.Render(fig.XLabel)))
	}

	return strings.Join(panels, "\n"), legend
}

// Legend lists the series drawn for fig, left axis first.
func Legend(fig Figure) []LegendEntry {
	var legend []LegendEntry
	for _, axis := range fig.Axes() {
		for _, s := range axis.Series {
			legend = append(legend, LegendEntry{Name: s.Name, Color: s.Color, Side: s.Side})
		}
	}
	return legend
}

// RenderLegend formats legend entries as colored lines.
func RenderLegend(legend []LegendEntry) string {
	var b strings.Builder
	for i, entry := range legend {
		if i > 0 {
			b.WriteString("\n")
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Color))
		b.WriteString(style.Render(fmt.Sprintf("%c %s", runes.FullBlock, entry.Name)))
		b.WriteString(fmt.Sprintf(" (%s)", entry.Side))
	}
	return b.String()
}

func linePanel(series []Series, width, height int) string {
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range series {
		xs, ys := finitePoints(s)
		for i, y := range ys {
			minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if minX > maxX {
		minX, maxX, minY, maxY = 0, 1, 0, 1
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	lc.SetTimeRange(rowTime(minX), rowTime(maxX))
	lc.SetViewTimeRange(rowTime(minX), rowTime(maxX))
	lc.SetYRange(minY, maxY)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(minY, maxY) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)

	for _, s := range series {
		lc.SetDataSetStyle(s.Name, lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)))
		xs, ys := finitePoints(s)
		for i, y := range ys {
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{
				Time:  rowTime(xs[i]),
				Value: y,
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View()
}

// rowTime encodes a row index as seconds so the time series chart can lay
// rows out on its x-axis.
func rowTime(x float64) time.Time {
	return time.Unix(int64(x), 0)
}
