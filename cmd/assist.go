package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/okabe/folio/assist"
	"github.com/okabe/folio/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI analyst about the portfolio" }
func (*assistCmd) Usage() string {
	return `folio assist [question...]

  Starts an interactive session with an AI analyst primed with the current
  valuation report. An initial question can be passed as arguments.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report := renderer.Valuation(&result, app.Config.ReportingCurrency)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing the AI client:", err)
		return subcommands.ExitFailure
	}

	analyst, err := assist.NewAnalyst(ctx, client, report)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting analyst:", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := analyst.Run(ctx, os.Stdout, os.Stdin, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
