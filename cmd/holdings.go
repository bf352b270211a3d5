package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okabe/folio/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list all holdings" }
func (*holdingsCmd) Usage() string {
	return `folio holdings

  Lists every holding in the register, sorted by name.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	holdings, err := app.Registry.List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error listing holdings:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(holdings))
	return subcommands.ExitSuccess
}
