package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/RendijsSmukulis/codevoid.io/cmd/codevoid/commands"
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("codevoid"),
		kong.Description("Build the static site generator settings for Code Void."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	if err := parser.Run(&commands.Global{Out: os.Stdout}, cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.HandleError(err))
	}
}
