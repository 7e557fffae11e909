package main

import (
	"github.com/akasprzok/graphdrawer/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("graphdrawer"),
		kong.Description("Plot CSV columns against their row number on one or two y axes."),
		kong.UsageOnError(),
	)

	appCtx, closer, err := commands.NewContext(commands.Cli.Config, commands.Cli.LogLevel, commands.Cli.LogFile)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(appCtx)
	closer.Close()
	ctx.FatalIfErrorf(err)
}
