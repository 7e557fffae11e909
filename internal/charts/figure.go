package charts

import "github.com/akasprzok/graphdrawer/internal/axes"

// Side is the y-axis a series is drawn against.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Series is one plotted line.
type Series struct {
	Name  string
	Side  Side
	Color string
	X     []float64
	Y     []float64
}

// Axis groups the series drawn against one y-axis.
type Axis struct {
	Label  string
	Series []Series
}

// Figure is a fully resolved chart, ready for rendering.
type Figure struct {
	Title  string
	XLabel string
	Mode   axes.Mode
	Left   Axis
	Right  Axis
}

// Series returns left then right series.
func (f Figure) Series() []Series {
	all := make([]Series, 0, len(f.Left.Series)+len(f.Right.Series))
	all = append(all, f.Left.Series...)
	return append(all, f.Right.Series...)
}

// Axes returns the axes that should be drawn: left always, right only in
// dual axis mode.
func (f Figure) Axes() []Axis {
	if f.Mode == axes.DualAxis {
		return []Axis{f.Left, f.Right}
	}
	return []Axis{f.Left}
}
