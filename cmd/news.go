package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
	"github.com/okabe/folio/newsapi"
	"github.com/okabe/folio/renderer"
)

type newsCmd struct {
	keywords string
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show headlines for the portfolio's assets" }
func (*newsCmd) Usage() string {
	return `folio news [-keywords <a,b,...>]

  Fetches recent headlines. Without -keywords the query is derived from the
  portfolio: tickers of priced holdings and crypto codes. Requires a NewsAPI
  key in the configuration.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.keywords, "keywords", "", "Comma separated search terms, overrides the derived query.")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if app.Config.NewsAPIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no NewsAPI key configured, set FOLIO_NEWSAPI_KEY or newsapi_key in the config.")
		return subcommands.ExitFailure
	}

	keywords := splitKeywords(c.keywords)
	if len(keywords) == 0 {
		holdings, err := app.Registry.List(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error listing holdings:", err)
			return subcommands.ExitFailure
		}
		keywords = portfolioKeywords(holdings)
	}
	if len(keywords) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to search for: no keywords and no priced holdings.")
		return subcommands.ExitSuccess
	}

	client := newsapi.New(app.Config.NewsAPIKey)
	articles, err := client.Articles(ctx, keywords)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error fetching headlines:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.News(articles))
	return subcommands.ExitSuccess
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// portfolioKeywords derives search terms from the priced holdings: tickers
// for market assets, currency codes for crypto.
func portfolioKeywords(holdings []folio.Holding) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, h := range holdings {
		switch h.Asset().(type) {
		case folio.TickeredAsset:
			add(h.Ticker)
		case folio.CryptoAsset:
			add(h.Currency)
		}
	}
	return out
}
