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

const (
	smaWindow = 20
	emaSpan   = 20
	rsiWindow = 14
)

type indicatorsCmd struct {
	ticker string
	days   int
}

func (*indicatorsCmd) Name() string     { return "indicators" }
func (*indicatorsCmd) Synopsis() string { return "compute technical indicators for a ticker" }
func (*indicatorsCmd) Usage() string {
	return `folio indicators -ticker <t> [-days <n>]

  Fetches daily closes for the ticker and computes SMA(20), EMA(20), RSI(14)
  and MACD with its signal line. Points before an indicator's window has
  filled are shown as "-".
`
}

func (c *indicatorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Market ticker, e.g. AAPL.")
	f.IntVar(&c.days, "days", 90, "Number of calendar days of history to fetch.")
}

func (c *indicatorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	history, err := app.Quotes.DailyCloses(ctx, c.ticker, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching closes for %q: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}
	if history.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No price history for %q.\n", c.ticker)
		return subcommands.ExitFailure
	}

	closes := history.Slice()
	days := history.Days()
	sma := folio.SMA(closes, smaWindow)
	ema := folio.EMA(closes, emaSpan)
	rsi := folio.RSI(closes, rsiWindow)
	macd, signal := folio.MACD(closes)

	rows := make([]renderer.IndicatorRow, len(closes))
	for i := range closes {
		rows[i] = renderer.IndicatorRow{
			Date:   days[i].String(),
			Close:  closes[i],
			SMA:    sma[i],
			EMA:    ema[i],
			RSI:    rsi[i],
			MACD:   macd[i],
			Signal: signal[i],
		}
	}

	printMarkdown(renderer.Indicators(c.ticker, rows))
	return subcommands.ExitSuccess
}
