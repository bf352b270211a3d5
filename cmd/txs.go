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

type txsCmd struct {
	limit int
	from  string
	to    string
}

func (*txsCmd) Name() string     { return "txs" }
func (*txsCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txsCmd) Usage() string {
	return `folio txs [-limit <n>] [-from <date> [-to <date>]]

  Lists transactions, most recent first. Without flags the whole ledger is
  shown. -from/-to select an inclusive date range instead.
`
}

func (c *txsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "Show only the most recent N transactions.")
	f.StringVar(&c.from, "from", "", "Start of the date range.")
	f.StringVar(&c.to, "to", "", "End of the date range, default today.")
}

func (c *txsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" && c.to != "" {
		fmt.Fprintln(os.Stderr, "Error: -to requires -from.")
		return subcommands.ExitUsageError
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	var txs []folio.Transaction
	if c.from != "" {
		from, err := folio.ParseDate(c.from)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing -from:", err)
			return subcommands.ExitUsageError
		}
		to := folio.Today()
		if c.to != "" {
			to, err = folio.ParseDate(c.to)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error parsing -to:", err)
				return subcommands.ExitUsageError
			}
		}
		txs, err = app.Ledger.ListRange(ctx, from, to)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error listing transactions:", err)
			return subcommands.ExitFailure
		}
	} else {
		txs, err = app.Ledger.List(ctx, c.limit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error listing transactions:", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
