package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okabe/folio/renderer"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the portfolio and snapshot the total" }
func (*valueCmd) Usage() string {
	return `folio value

  Prices every holding in the reporting currency, prints the valuation report
  and records today's total in the snapshot history. Running it again on the
  same day overwrites today's snapshot.
`
}

func (*valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	result, err := app.Valuer.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running valuation:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Valuation(&result, app.Config.ReportingCurrency))
	return subcommands.ExitSuccess
}
