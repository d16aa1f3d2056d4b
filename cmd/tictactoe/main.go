package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Play      PlayCmd          `cmd:"" default:"1" help:"Play a two-player game in the terminal"`
	Enumerate EnumerateCmd     `cmd:"" help:"Walk every legal game and report outcome totals"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Two-player tic-tac-toe for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
