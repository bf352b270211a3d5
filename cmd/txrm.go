package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type txrmCmd struct{}

func (*txrmCmd) Name() string     { return "txrm" }
func (*txrmCmd) Synopsis() string { return "delete a transaction from the ledger" }
func (*txrmCmd) Usage() string {
	return `folio txrm <id>

  Deletes the transaction with the given id. The holding adjustment the
  transaction made is not reversed; record a compensating transaction if the
  balance must be restored.
`
}

func (*txrmCmd) SetFlags(f *flag.FlagSet) {}

func (c *txrmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if err := app.Ledger.Delete(ctx, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction %q: %v\n", id, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted transaction %s\n", id)
	return subcommands.ExitSuccess
}
