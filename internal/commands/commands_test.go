package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/config"
	"github.com/akasprzok/graphdrawer/internal/dataset"
	"github.com/akasprzok/graphdrawer/internal/figure"
	"github.com/akasprzok/graphdrawer/internal/logging"
	"github.com/akasprzok/graphdrawer/internal/settings"
	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const weatherCSV = "temp,dew,humidity\n20,10,40\n21,11,50\n19,12,45\n"

func testContext(t *testing.T, store *settings.MemoryStore) (*Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	loader := &dataset.MockLoader{
		LoadFunc: func(path string) (dataset.Table, error) {
			table, err := dataset.Read(strings.NewReader(weatherCSV))
			table.Path = path
			return table, err
		},
		HeaderFunc: func(string) ([]string, error) {
			return []string{"temp", "dew", "humidity"}, nil
		},
	}
	return &Context{
		Config: &config.Config{
			Palette: "tol",
			Chart:   config.ChartConfig{Width: 320, Height: 200},
		},
		Log:    logging.Discard().Logger,
		Loader: loader,
		Store:  store,
		Out:    out,
	}, out
}

type plotOutput struct {
	Mode string `json:"mode"`
	Axes []struct {
		Side   string `json:"side"`
		Label  string `json:"label"`
		Series []struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"series"`
	} `json:"axes"`
}

func TestPlotJSON(t *testing.T) {
	ctx, out := testContext(t, &settings.MemoryStore{})
	cmd := &PlotCmd{
		File:       "weather.csv",
		Left:       []string{"temp", "dew"},
		Right:      []string{"humidity"},
		RightLabel: "%",
		Output:     "json",
	}
	require.NoError(t, cmd.Run(ctx))

	var got plotOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	if got.Mode != "dual" {
		t.Errorf("mode = %q, want dual", got.Mode)
	}
	require.Len(t, got.Axes, 2)
	if got.Axes[1].Side != "right" || got.Axes[1].Label != "%" {
		t.Errorf("right axis = %+v", got.Axes[1])
	}
	colors := []string{
		got.Axes[0].Series[0].Color,
		got.Axes[0].Series[1].Color,
		got.Axes[1].Series[0].Color,
	}
	if diff := cmp.Diff([]string{"#4477AA", "#EE6677", "#228833"}, colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
}

func TestPlotSingleModeIgnoresRight(t *testing.T) {
	ctx, out := testContext(t, &settings.MemoryStore{})
	cmd := &PlotCmd{
		File:   "weather.csv",
		Left:   []string{"temp"},
		Right:  []string{"humidity"},
		Mode:   "single",
		Output: "json",
	}
	require.NoError(t, cmd.Run(ctx))

	var got plotOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Axes, 1)
	if got.Mode != "single" {
		t.Errorf("mode = %q, want single", got.Mode)
	}
}

func TestPlotErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     PlotCmd
		wantErr error
	}{
		{"nothing selected", PlotCmd{File: "weather.csv", Output: "json"}, figure.ErrNothingSelected},
		{"unknown column", PlotCmd{File: "weather.csv", Left: []string{"wind"}, Output: "json"}, dataset.ErrUnknownColumn},
		{"image without out", PlotCmd{File: "weather.csv", Left: []string{"temp"}, Output: "png"}, ErrOutputRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t, &settings.MemoryStore{})
			err := tt.cmd.Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("bad mode", func(t *testing.T) {
		ctx, _ := testContext(t, &settings.MemoryStore{})
		cmd := PlotCmd{File: "weather.csv", Left: []string{"temp"}, Mode: "triple", Output: "json"}
		if err := cmd.Run(ctx); err == nil {
			t.Error("Run() error = nil, want error")
		}
	})
}

func TestPlotRestoresSettings(t *testing.T) {
	store := &settings.MemoryStore{Settings: settings.Settings{
		Title: "Weather",
		Mode:  axes.DualAxis,
		Dual: settings.Dual{
			LeftColumns:  []string{"wind", "temp"},
			RightColumns: []string{"humidity"},
			RightLabel:   "%",
		},
	}}
	ctx, _ := testContext(t, store)
	cmd := &PlotCmd{File: "weather.csv", RightLabel: "percent"}

	sel, err := cmd.selection(ctx.Store, weatherTable(t))
	require.NoError(t, err)

	want := figure.Selection{
		Title:        "Weather",
		Mode:         axes.DualAxis,
		LeftColumns:  []string{"temp"},
		RightColumns: []string{"humidity"},
		RightLabel:   "percent",
	}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Errorf("selection() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlotRemember(t *testing.T) {
	store := &settings.MemoryStore{Settings: settings.Settings{
		Single: settings.Single{Columns: []string{"dew"}},
	}}
	ctx, _ := testContext(t, store)
	cmd := &PlotCmd{
		File:     "weather.csv",
		Left:     []string{"temp"},
		Right:    []string{"humidity"},
		Title:    "Weather",
		Output:   "json",
		Remember: true,
	}
	require.NoError(t, cmd.Run(ctx))

	if store.Saves != 1 {
		t.Fatalf("Saves = %d, want 1", store.Saves)
	}
	got := store.Settings
	if got.LastFile != "weather.csv" || got.Title != "Weather" || got.Mode != axes.DualAxis {
		t.Errorf("saved settings = %+v", got)
	}
	if diff := cmp.Diff([]string{"humidity"}, got.Dual.RightColumns); diff != "" {
		t.Errorf("saved right columns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dew"}, got.Single.Columns); diff != "" {
		t.Errorf("single selection changed (-want +got):\n%s", diff)
	}
}

func TestPlotImage(t *testing.T) {
	for _, format := range []string{"png", "svg"} {
		t.Run(format, func(t *testing.T) {
			ctx, _ := testContext(t, &settings.MemoryStore{})
			out := filepath.Join(t.TempDir(), "plot."+format)
			cmd := &PlotCmd{
				File:   "weather.csv",
				Left:   []string{"temp"},
				Right:  []string{"humidity"},
				Output: format,
				Out:    out,
			}
			require.NoError(t, cmd.Run(ctx))

			info, err := os.Stat(out)
			require.NoError(t, err)
			if info.Size() == 0 {
				t.Error("image file is empty")
			}
		})
	}
}

func TestPlotFailedRenderLeavesNoFile(t *testing.T) {
	ctx, _ := testContext(t, &settings.MemoryStore{})
	ctx.Loader = &dataset.MockLoader{
		LoadFunc: func(string) (dataset.Table, error) {
			return dataset.Read(strings.NewReader("wind\nInf\nInf\n"))
		},
	}
	out := filepath.Join(t.TempDir(), "plot.png")
	cmd := &PlotCmd{File: "wind.csv", Left: []string{"wind"}, Output: "png", Out: out}

	err := cmd.Run(ctx)
	require.ErrorIs(t, err, charts.ErrNothingToDraw)

	_, err = os.Stat(out)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat(%s) error = %v, want the file to be absent", out, err)
	}
}

func TestPlotTerminalOutputs(t *testing.T) {
	for _, output := range []string{"graph", "bars", "yaml"} {
		t.Run(output, func(t *testing.T) {
			ctx, out := testContext(t, &settings.MemoryStore{})
			cmd := &PlotCmd{File: "weather.csv", Left: []string{"temp"}, Output: output}
			require.NoError(t, cmd.Run(ctx))
			if !strings.Contains(out.String(), "temp") {
				t.Errorf("%s output does not mention the series:\n%s", output, out.String())
			}
		})
	}
}

func TestColumns(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		ctx, out := testContext(t, &settings.MemoryStore{})
		require.NoError(t, (&ColumnsCmd{File: "weather.csv", Output: "text"}).Run(ctx))
		want := "1\ttemp\n2\tdew\n3\thumidity\n"
		if out.String() != want {
			t.Errorf("output = %q, want %q", out.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		ctx, out := testContext(t, &settings.MemoryStore{})
		require.NoError(t, (&ColumnsCmd{File: "weather.csv", Output: "json"}).Run(ctx))

		var got []dataset.Summary
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got, 3)
		if got[2].Name != "humidity" || got[2].Max != 50 {
			t.Errorf("humidity summary = %+v", got[2])
		}
	})
}

func TestColors(t *testing.T) {
	t.Run("json follows the assignment rule", func(t *testing.T) {
		ctx, out := testContext(t, &settings.MemoryStore{})
		cmd := &ColorsCmd{Left: []string{"A"}, Right: []string{"B", "C"}, Output: "json"}
		require.NoError(t, cmd.Run(ctx))

		var got []assignment
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		want := []assignment{
			{Axis: "left", Series: "A", Color: "#4477AA"},
			{Axis: "right", Series: "B", Color: "#EE6677"},
			{Axis: "right", Series: "C", Color: "#228833"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("assignments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown palette", func(t *testing.T) {
		ctx, _ := testContext(t, &settings.MemoryStore{})
		cmd := &ColorsCmd{Left: []string{"A"}, Palette: "rainbow", Output: "text"}
		if err := cmd.Run(ctx); err == nil {
			t.Error("Run() error = nil, want error")
		}
	})

	t.Run("list", func(t *testing.T) {
		ctx, out := testContext(t, &settings.MemoryStore{})
		require.NoError(t, (&ColorsCmd{List: true}).Run(ctx))
		for _, name := range []string{"tol", "category10", "tableau10"} {
			if !strings.Contains(out.String(), name) {
				t.Errorf("list does not contain %q", name)
			}
		}
	})
}

func TestNewContext(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "graphdrawer.yaml")
	settingsPath := filepath.Join(dir, "settings.yaml")
	cfg := "palette: category10\nsettings_path: " + settingsPath + "\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	logFile := filepath.Join(dir, "graphdrawer.log")
	ctx, closer, err := NewContext(cfgPath, "debug", logFile)
	require.NoError(t, err)
	defer closer.Close()

	if ctx.Config.Palette != "category10" {
		t.Errorf("palette = %q, want category10", ctx.Config.Palette)
	}
	if ctx.Log.GetLevel().String() != "debug" {
		t.Errorf("log level = %s, want debug", ctx.Log.GetLevel())
	}
	if !ctx.LogToFile {
		t.Error("LogToFile = false, want true")
	}
	store, ok := ctx.Store.(*settings.FileStore)
	require.True(t, ok, "Store is %T", ctx.Store)
	if store.Path() != settingsPath {
		t.Errorf("settings path = %q, want %q", store.Path(), settingsPath)
	}
}

func TestSeriesFlagsKeepCommas(t *testing.T) {
	cli := Cli
	parser, err := kong.New(&cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"plot", "weather.csv", "--left", "temp, max", "--left", "dew", "--right", "a,b"})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"temp, max", "dew"}, cli.Plot.Left); diff != "" {
		t.Errorf("--left mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a,b"}, cli.Plot.Right); diff != "" {
		t.Errorf("--right mismatch (-want +got):\n%s", diff)
	}

	_, err = parser.Parse([]string{"colors", "--left", "x,y"})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"x,y"}, cli.Colors.Left); diff != "" {
		t.Errorf("colors --left mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{nil, ""},
		{[]string{"", ""}, ""},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"a", "b"}, "a"},
	}
	for _, tt := range tests {
		if got := firstNonEmpty(tt.values...); got != tt.want {
			t.Errorf("firstNonEmpty(%q) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

func weatherTable(t *testing.T) dataset.Table {
	t.Helper()
	table, err := dataset.Read(strings.NewReader(weatherCSV))
	require.NoError(t, err)
	return table
}
