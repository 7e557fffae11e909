package commands

import (
	"encoding/json"
	"fmt"

	"github.com/akasprzok/graphdrawer/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v2"
)

type ColumnsCmd struct {
	File   string `arg:"" name:"file" help:"CSV file to inspect." type:"path"`
	Output string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,table,json,yaml"`
}

func (c *ColumnsCmd) Run(ctx *Context) error {
	if c.Output == "text" {
		names, err := ctx.Loader.Header(c.File)
		if err != nil {
			return err
		}
		for i, name := range names {
			fmt.Fprintf(ctx.Out, "%d\t%s\n", i+1, name)
		}
		return nil
	}

	table, err := ctx.Loader.Load(c.File)
	if err != nil {
		return err
	}

	switch c.Output {
	case "table":
		p := tea.NewProgram(tables.Columns(table))
		_, err := p.Run()
		return err
	case "json":
		jsonBytes, err := json.MarshalIndent(table.Summarize(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling columns to JSON: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(table.Summarize())
		if err != nil {
			return fmt.Errorf("marshalling columns to YAML: %w", err)
		}
		fmt.Fprint(ctx.Out, string(yamlBytes))
	}
	return nil
}
