package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
)

type txCmd struct {
	date     string
	typ      string
	category string
	amount   float64
	memo     string
	holding  string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction in the ledger" }
func (*txCmd) Usage() string {
	return `folio tx -type <expense|income|transfer> -amount <n> [-category <c>] [-memo <m>] [-holding <name>] [-d <date>]

  Records a transaction. When a holding is named, its balance is adjusted by
  the signed amount: expenses subtract, income adds.

Usage Examples:
$ folio tx -type expense -category groceries -amount 5000 -memo "weekly shop" -holding Wallet
$ folio tx -type income -category salary -amount 300000 -holding Wallet
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction, default today.")
	f.StringVar(&c.typ, "type", "", "Transaction type: expense, income or transfer.")
	f.StringVar(&c.category, "category", "", "Free-form category.")
	f.Float64Var(&c.amount, "amount", 0, "Amount in the reporting currency, non-negative.")
	f.StringVar(&c.memo, "memo", "", "Free-form note.")
	f.StringVar(&c.holding, "holding", "", "Holding whose balance this transaction moves.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := folio.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	on := folio.Today()
	if c.date != "" {
		on, err = folio.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	amount := folio.M(c.amount, app.Config.ReportingCurrency)
	tx, err := app.Ledger.Record(ctx, on, typ, c.category, amount, c.memo, c.holding)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error recording transaction:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s on %s\n", tx.Type, tx.Amount, tx.Date)
	return subcommands.ExitSuccess
}
