package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/akasprzok/graphdrawer/internal/axes"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ImageFormat is a file format for RenderImage.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

// ErrNothingToDraw is returned when a figure has no series.
var ErrNothingToDraw = errors.New("nothing to draw")

// ParseHexColor converts "#RRGGBB", "RRGGBB" or "#RGB" into a drawing color.
func ParseHexColor(token string) (drawing.Color, error) {
	hex := strings.TrimPrefix(token, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("%w: color %q is not a hex color", ErrInvalidConfiguration, token)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return drawing.Color{}, fmt.Errorf("%w: color %q is not a hex color", ErrInvalidConfiguration, token)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

// RenderImage draws fig with go-chart. Left series use the primary y-axis and
// right series the secondary one. A zero width or height uses the defaults.
func RenderImage(w io.Writer, fig Figure, format ImageFormat, width, height int) error {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	var provider chart.RendererProvider
	switch format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}

	left, right := fig.Left, fig.Right
	if fig.Mode != axes.DualAxis || len(right.Series) == 0 {
		right = Axis{}
	}
	// go-chart needs a primary axis; a right-only figure is drawn on it.
	if len(left.Series) == 0 {
		left, right = right, Axis{}
	}
	if len(left.Series) == 0 {
		return ErrNothingToDraw
	}

	series := make([]chart.Series, 0, len(left.Series)+len(right.Series))
	for _, axis := range []struct {
		a         Axis
		secondary bool
	}{{left, false}, {right, true}} {
		for _, s := range axis.a.Series {
			cs, err := continuousSeries(s, axis.secondary)
			if err != nil {
				return err
			}
			series = append(series, cs)
		}
	}

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: fig.XLabel},
		YAxis:      chart.YAxis{Name: left.Label},
		Series:     series,
	}
	if len(right.Series) > 0 {
		ch.YAxisSecondary = chart.YAxis{Name: right.Label}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", format, err)
	}
	return nil
}

func continuousSeries(s Series, secondary bool) (chart.ContinuousSeries, error) {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return chart.ContinuousSeries{}, err
	}
	xs, ys := finitePoints(s)
	if len(xs) == 0 {
		return chart.ContinuousSeries{}, fmt.Errorf("%w: series %q has no numeric values", ErrNothingToDraw, s.Name)
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 && len(ys) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	cs := chart.ContinuousSeries{
		Name:    s.Name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
	}
	if secondary {
		cs.YAxis = chart.YAxisSecondary
	}
	return cs, nil
}

func finitePoints(s Series) (xs, ys []float64) {
	for i, y := range s.Y {
		if i >= len(s.X) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, s.X[i])
		ys = append(ys, y)
	}
	return xs, ys
}
