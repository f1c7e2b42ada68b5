package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a game in the terminal"`
	Evaluate EvaluateCmd      `cmd:"" help:"Score a guess against a solution"`
	Fetch    FetchCmd         `cmd:"" help:"Fetch a solution word and print it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordle"),
		kong.Description("Guess the five-letter word in six tries"),
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
