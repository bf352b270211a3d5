package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
)

type addCmd struct {
	name     string
	category string
	quantity float64
	currency string
	ticker   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add to a holding, creating it if needed" }
func (*addCmd) Usage() string {
	return `folio add -name <name> -quantity <n> [-category <c>] [-currency <cur>] [-ticker <t>]

  Adds the quantity to the named holding. If the holding does not exist it is
  created with the given category, currency and ticker. A negative quantity
  decreases the balance.

Usage Examples:
$ folio add -name "Wallet" -category cash -quantity 10000 -currency JPY
$ folio add -name "AAPL shares" -category stock -quantity 3 -currency USD -ticker AAPL
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the holding.")
	f.StringVar(&c.category, "category", "", "Free-form category (cash, stock, crypto, ...).")
	f.Float64Var(&c.quantity, "quantity", 0, "Quantity to add, negative to subtract.")
	f.StringVar(&c.currency, "currency", "", "Currency the holding is denominated in.")
	f.StringVar(&c.ticker, "ticker", "", "Market ticker for priced assets.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	currency := c.currency
	if currency == "" {
		currency = app.Config.ReportingCurrency
	}

	h, err := app.Registry.UpsertByName(ctx, c.name, c.category, folio.Q(c.quantity), currency, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding to holding %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s %s\n", h.Name, h.Quantity, h.Currency)
	return subcommands.ExitSuccess
}
