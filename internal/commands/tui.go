package commands

import (
	"io"

	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/akasprzok/graphdrawer/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// TUICmd is the Kong command for the interactive TUI mode.
type TUICmd struct {
	File    string `arg:"" optional:"" name:"file" help:"CSV file to open, defaults to the last one." type:"path"`
	Palette string `name:"palette" help:"Color palette, overrides the config file."`
}

// Run starts the interactive TUI.
func (t *TUICmd) Run(ctx *Context) error {
	palette, err := charts.PaletteByName(firstNonEmpty(t.Palette, ctx.Config.Palette))
	if err != nil {
		return err
	}

	// The TUI owns the terminal.
	if !ctx.LogToFile {
		ctx.Log.SetOutput(io.Discard)
	}

	model := tui.New(ctx.Loader, ctx.Store, palette, ctx.Log.WithField("component", "tui"), t.File)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
