package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
)

type corrCmd struct {
	tickers string
	days    int
}

func (*corrCmd) Name() string     { return "corr" }
func (*corrCmd) Synopsis() string { return "correlation between tickers' daily closes" }
func (*corrCmd) Usage() string {
	return `folio corr -tickers <a,b,...> [-days <n>]

  Computes the Pearson correlation of daily closes between each pair of
  tickers, aligned on the trading days the series share.
`
}

func (c *corrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "tickers", "", "Comma separated list of tickers.")
	f.IntVar(&c.days, "days", 90, "Number of calendar days of history to fetch.")
}

func (c *corrCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := strings.Split(c.tickers, ",")
	for i := range tickers {
		tickers[i] = strings.TrimSpace(tickers[i])
	}
	if len(tickers) < 2 || tickers[0] == "" {
		fmt.Fprintln(os.Stderr, "Error: -tickers needs at least two comma separated tickers.")
		return subcommands.ExitUsageError
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	histories := make(map[string]*folio.History[float64], len(tickers))
	for _, t := range tickers {
		h, err := app.Quotes.DailyCloses(ctx, t, c.days)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching closes for %q: %v\n", t, err)
			return subcommands.ExitFailure
		}
		histories[t] = h
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Correlation over %d days\n\n", c.days)
	fmt.Fprintf(&b, "| | %s |\n", strings.Join(tickers, " | "))
	fmt.Fprintf(&b, "|---|%s\n", strings.Repeat("---:|", len(tickers)))
	for _, a := range tickers {
		fmt.Fprintf(&b, "| %s |", a)
		for _, o := range tickers {
			r, ok := folio.Correlation(histories[a], histories[o])
			if !ok {
				fmt.Fprint(&b, " - |")
				continue
			}
			fmt.Fprintf(&b, " %.3f |", r)
		}
		fmt.Fprintln(&b)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
