package commands

import (
	"encoding/json"
	"fmt"

	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"
)

type ColorsCmd struct {
	Left    []string `name:"left" short:"l" sep:"none" help:"Left axis series, repeat for more."`
	Right   []string `name:"right" short:"r" sep:"none" help:"Right axis series, repeat for more."`
	Palette string   `name:"palette" help:"Color palette, overrides the config file."`
	List    bool     `name:"list" help:"List the built-in palettes."`
	Output  string   `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

// assignment is one series and its color.
type assignment struct {
	Axis   string `json:"axis" yaml:"axis"`
	Series string `json:"series" yaml:"series"`
	Color  string `json:"color" yaml:"color"`
}

func (c *ColorsCmd) Run(ctx *Context) error {
	if c.List {
		for _, name := range charts.PaletteNames() {
			p, _ := charts.PaletteByName(name)
			fmt.Fprintf(ctx.Out, "%-12s %s\n", name, swatches(p))
		}
		return nil
	}

	palette, err := charts.PaletteByName(firstNonEmpty(c.Palette, ctx.Config.Palette))
	if err != nil {
		return err
	}
	assigned, err := assign(palette, c.Left, c.Right)
	if err != nil {
		return err
	}

	switch c.Output {
	case "json":
		jsonBytes, err := json.MarshalIndent(assigned, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling colors to JSON: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(assigned)
		if err != nil {
			return fmt.Errorf("marshalling colors to YAML: %w", err)
		}
		fmt.Fprint(ctx.Out, string(yamlBytes))
	default:
		for _, a := range assigned {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color)).Render("██")
			fmt.Fprintf(ctx.Out, "%-5s %s %s %s\n", a.Axis, swatch, a.Color, a.Series)
		}
	}
	return nil
}

func assign(palette charts.Palette, left, right []string) ([]assignment, error) {
	leftColors, rightColors, err := palette.Assign(left, right)
	if err != nil {
		return nil, err
	}
	out := make([]assignment, 0, len(left)+len(right))
	for i, name := range left {
		out = append(out, assignment{Axis: charts.Left.String(), Series: name, Color: leftColors[i]})
	}
	for j, name := range right {
		out = append(out, assignment{Axis: charts.Right.String(), Series: name, Color: rightColors[j]})
	}
	return out, nil
}

func swatches(p charts.Palette) string {
	s := ""
	for i := range p {
		s += p.Style(i).Render("██")
	}
	return s
}
