package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/dataset"
	"github.com/akasprzok/graphdrawer/internal/figure"
	"github.com/akasprzok/graphdrawer/internal/settings"
	"github.com/akasprzok/graphdrawer/internal/tui"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ErrOutputRequired is returned for image output without --out.
var ErrOutputRequired = errors.New("image output needs --out")

type PlotCmd struct {
	File       string   `arg:"" name:"file" help:"CSV file to plot." type:"path"`
	Left       []string `name:"left" short:"l" sep:"none" help:"Column for the left y axis, repeat for more."`
	Right      []string `name:"right" short:"r" sep:"none" help:"Column for the right y axis, repeat for more. Implies dual mode."`
	Mode       string   `name:"mode" short:"m" help:"Axis mode: single or dual. Defaults to dual when --right is given."`
	Title      string   `name:"title" short:"t" help:"Graph title."`
	XLabel     string   `name:"x-label" help:"X axis label."`
	LeftLabel  string   `name:"left-label" help:"Left y axis label."`
	RightLabel string   `name:"right-label" help:"Right y axis label."`
	Output     string   `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,bars,png,svg,json,yaml"`
	Out        string   `name:"out" help:"Write to this file instead of stdout." type:"path"`
	Palette    string   `name:"palette" help:"Color palette, overrides the config file."`
	Width      int      `name:"width" help:"Image width in pixels, overrides the config file."`
	Height     int      `name:"height" help:"Image height in pixels, overrides the config file."`
	Remember   bool     `name:"remember" help:"Save this selection for the next run."`
}

func (p *PlotCmd) Run(ctx *Context) error {
	log := ctx.Log.WithFields(logrus.Fields{"command": "plot", "file": p.File})

	palette, err := charts.PaletteByName(firstNonEmpty(p.Palette, ctx.Config.Palette))
	if err != nil {
		return err
	}
	if (p.Output == "png" || p.Output == "svg") && p.Out == "" {
		return ErrOutputRequired
	}

	table, err := ctx.Loader.Load(p.File)
	if err != nil {
		return err
	}
	sel, err := p.selection(ctx.Store, table)
	if err != nil {
		return err
	}
	if sel.Mode == axes.SingleAxis && len(p.Right) > 0 {
		log.Warn("ignoring --right in single axis mode")
	}

	fig, err := figure.Build(table, sel, palette)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"mode": fig.Mode, "series": len(fig.Series())}).Debug("figure built")

	if p.Remember {
		if err := remember(ctx.Store, p.File, sel); err != nil {
			return err
		}
	}

	if p.Out == "" {
		return p.write(ctx.Out, fig, ctx)
	}

	// Render fully before touching the output file.
	var buf bytes.Buffer
	if err := p.write(&buf, fig, ctx); err != nil {
		return err
	}
	if err := os.WriteFile(p.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.WithField("out", p.Out).Info("plot written")
	return nil
}

func (p *PlotCmd) write(w io.Writer, fig charts.Figure, ctx *Context) error {
	switch p.Output {
	case "graph":
		chart, legend := charts.Linechart(fig, charts.TerminalWidth()-tui.ChartWidthPadding, -1)
		_, err := fmt.Fprintf(w, "%s\n%s\n", chart, charts.RenderLegend(legend))
		return err
	case "bars":
		bars := charts.Barchart(fig, charts.TerminalWidth()-tui.ChartWidthPadding)
		if bars == "" {
			_, err := fmt.Fprintln(w, "No Data")
			return err
		}
		_, err := fmt.Fprintln(w, bars)
		return err
	case "png", "svg":
		width := p.Width
		if width <= 0 {
			width = ctx.Config.Chart.Width
		}
		height := p.Height
		if height <= 0 {
			height = ctx.Config.Chart.Height
		}
		return charts.RenderImage(w, fig, charts.ImageFormat(p.Output), width, height)
	case "json":
		jsonBytes, err := toJSON(fig)
		if err != nil {
			return fmt.Errorf("marshalling figure to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	case "yaml":
		yamlBytes, err := toYAML(fig)
		if err != nil {
			return fmt.Errorf("marshalling figure to YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(yamlBytes))
		return err
	}
	return fmt.Errorf("unknown output %q", p.Output)
}

// selection turns the flags into a figure selection. Without any column
// flags the saved settings for the mode are used instead.
func (p *PlotCmd) selection(store settings.Store, table dataset.Table) (figure.Selection, error) {
	mode := axes.SingleAxis
	if len(p.Right) > 0 {
		mode = axes.DualAxis
	}
	if p.Mode != "" {
		var err error
		if mode, err = axes.ParseMode(p.Mode); err != nil {
			return figure.Selection{}, err
		}
	}

	sel := figure.Selection{
		Title:        p.Title,
		XLabel:       p.XLabel,
		Mode:         mode,
		LeftColumns:  p.Left,
		LeftLabel:    p.LeftLabel,
		RightColumns: p.Right,
		RightLabel:   p.RightLabel,
	}
	if len(p.Left) > 0 || len(p.Right) > 0 {
		return sel, nil
	}

	saved, err := store.Load()
	if err != nil {
		return figure.Selection{}, fmt.Errorf("loading settings: %w", err)
	}
	if p.Mode == "" {
		sel.Mode = saved.Mode
	}
	restored := saved.Restore(sel.Mode, table.Names())
	sel.LeftColumns = restored.LeftColumns
	sel.RightColumns = restored.RightColumns
	sel.Title = firstNonEmpty(sel.Title, saved.Title)
	sel.XLabel = firstNonEmpty(sel.XLabel, saved.XLabel)
	sel.LeftLabel = firstNonEmpty(sel.LeftLabel, restored.LeftLabel)
	sel.RightLabel = firstNonEmpty(sel.RightLabel, restored.RightLabel)
	return sel, nil
}

func remember(store settings.Store, file string, sel figure.Selection) error {
	saved, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	saved.LastFile = file
	saved.Title = sel.Title
	saved.XLabel = sel.XLabel
	saved.Remember(sel.Mode, settings.Restored{
		LeftColumns:  sel.LeftColumns,
		LeftLabel:    sel.LeftLabel,
		RightColumns: sel.RightColumns,
		RightLabel:   sel.RightLabel,
	})
	if err := store.Save(saved); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func massageFigure(fig charts.Figure) map[string]any {
	axesData := make([]map[string]any, 0, 2)
	for _, axis := range fig.Axes() {
		series := make([]map[string]any, 0, len(axis.Series))
		for _, s := range axis.Series {
			values := make([]map[string]any, 0, len(s.Y))
			for i, y := range s.Y {
				var value any = y
				if math.IsNaN(y) {
					value = nil
				}
				values = append(values, map[string]any{
					"x": s.X[i],
					"y": value,
				})
			}
			series = append(series, map[string]any{
				"name":   s.Name,
				"color":  s.Color,
				"values": values,
			})
		}
		side := charts.Left
		if len(axesData) == 1 {
			side = charts.Right
		}
		axesData = append(axesData, map[string]any{
			"side":   side.String(),
			"label":  axis.Label,
			"series": series,
		})
	}
	return map[string]any{
		"title":   fig.Title,
		"x_label": fig.XLabel,
		"mode":    fig.Mode.String(),
		"axes":    axesData,
	}
}

func toJSON(fig charts.Figure) ([]byte, error) {
	return json.MarshalIndent(massageFigure(fig), "", "  ")
}

func toYAML(fig charts.Figure) ([]byte, error) {
	return yaml.Marshal(massageFigure(fig))
}
