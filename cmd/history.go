package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
	"github.com/okabe/folio/renderer"
)

type historyCmd struct {
	since string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the history of portfolio totals" }
func (*historyCmd) Usage() string {
	return `folio history [-since <date>]

  Shows the daily snapshots of total portfolio value recorded by past
  valuation passes.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "Earliest date to include, default all history.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var since folio.Date
	if c.since != "" {
		var err error
		since, err = folio.ParseDate(c.since)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing -since:", err)
			return subcommands.ExitUsageError
		}
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	history, err := app.Snapshots.Range(ctx, since)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading snapshots:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TotalHistory(history, app.Config.ReportingCurrency))
	return subcommands.ExitSuccess
}
