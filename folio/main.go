// Command folio manages a personal portfolio from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/okabe/folio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It exits the process
// when invoked by the shell, before any flag parsing.
func completion() {
	sub := func() *complete.Command { return &complete.Command{} }
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"add":        sub(),
			"holdings":   sub(),
			"rename":     sub(),
			"rm":         sub(),
			"tx":         sub(),
			"txs":        sub(),
			"txrm":       sub(),
			"value":      sub(),
			"history":    sub(),
			"indicators": sub(),
			"corr":       sub(),
			"news":       sub(),
			"assist":     sub(),
			"topic":      sub(),
			"help":       sub(),
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
	}
	c.Complete("folio")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
