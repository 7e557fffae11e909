package charts

import (
	"math"
	"strings"
	"testing"

	"github.com/akasprzok/graphdrawer/internal/axes"
)

func testFigure(mode axes.Mode) Figure {
	xs := []float64{1, 2, 3}
	return Figure{
		Title:  "Weather",
		XLabel: "sample",
		Mode:   mode,
		Left: Axis{
			Label: "celsius",
			Series: []Series{
				{Name: "temp", Side: Left, Color: "#4477AA", X: xs, Y: []float64{20, 21, 19}},
				{Name: "dew", Side: Left, Color: "#EE6677", X: xs, Y: []float64{10, math.NaN(), 12}},
			},
		},
		Right: Axis{
			Label: "percent",
			Series: []Series{
				{Name: "humidity", Side: Right, Color: "#228833", X: xs, Y: []float64{40, 50, 45}},
			},
		},
	}
}

func TestLinechart(t *testing.T) {
	t.Run("empty figure returns empty legend", func(t *testing.T) {
		_, legend := Linechart(Figure{}, 80, -1)

		if len(legend) != 0 {
			t.Errorf("len(legend) = %d, want 0", len(legend))
		}
	})

	t.Run("legend lists series in axis order", func(t *testing.T) {
		_, legend := Linechart(testFigure(axes.DualAxis), 80, -1)

		want := []string{"temp", "dew", "humidity"}
		if len(legend) != len(want) {
			t.Fatalf("len(legend) = %d, want %d", len(legend), len(want))
		}
		for i, entry := range legend {
			if entry.Name != want[i] {
				t.Errorf("legend[%d].Name = %q, want %q", i, entry.Name, want[i])
			}
		}
		if legend[2].Side != Right {
			t.Errorf("legend[2].Side = %v, want %v", legend[2].Side, Right)
		}
		if legend[0].Color != "#4477AA" {
			t.Errorf("legend[0].Color = %q, want %q", legend[0].Color, "#4477AA")
		}
	})

	t.Run("single axis mode drops the right panel", func(t *testing.T) {
		chart, legend := Linechart(testFigure(axes.SingleAxis), 80, -1)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
		if strings.Contains(chart, "percent") {
			t.Error("single axis chart contains right axis label")
		}
		if !strings.Contains(chart, "celsius") {
			t.Error("chart does not contain left axis label")
		}
	})

	t.Run("dual axis mode draws both labels", func(t *testing.T) {
		chart, _ := Linechart(testFigure(axes.DualAxis), 80, -1)

		for _, want := range []string{"Weather", "celsius", "percent", "sample"} {
			if !strings.Contains(chart, want) {
				t.Errorf("chart does not contain %q", want)
			}
		}
	})

	t.Run("selected index out of range is handled", func(t *testing.T) {
		chart, legend := Linechart(testFigure(axes.DualAxis), 80, 99)

		if len(legend) != 3 {
			t.Errorf("len(legend) = %d, want 3", len(legend))
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})

	t.Run("selecting a right series still renders", func(t *testing.T) {
		chart, _ := Linechart(testFigure(axes.DualAxis), 80, 2)

		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})
}

func TestLinechartSkipsInfinities(t *testing.T) {
	withInf := testFigure(axes.SingleAxis)
	withInf.Left.Series[1].Y = []float64{10, math.Inf(1), 12}
	withNaN := testFigure(axes.SingleAxis)

	got, _ := Linechart(withInf, 60, -1)
	want, _ := Linechart(withNaN, 60, -1)
	if got != want {
		t.Errorf("Linechart() with +Inf differs from the same figure with a missing value:\n%s\nvs\n%s", got, want)
	}
}

func TestRenderLegend(t *testing.T) {
	legend := []LegendEntry{
		{Name: "temp", Color: "#4477AA", Side: Left},
		{Name: "humidity", Color: "#228833", Side: Right},
	}

	got := RenderLegend(legend)
	for _, want := range []string{"temp", "humidity", "(left)", "(right)"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderLegend() does not contain %q", want)
		}
	}
	if RenderLegend(nil) != "" {
		t.Error("RenderLegend(nil) should be empty")
	}
}
