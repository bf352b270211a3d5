// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	folio "github.com/okabe/folio"
	"github.com/okabe/folio/coingecko"
	"github.com/okabe/folio/frankfurter"
	"github.com/okabe/folio/store"
	"github.com/okabe/folio/yahoo"
)

// Register registers all subcommands on the commander.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "holdings")
	c.Register(&holdingsCmd{}, "holdings")
	c.Register(&renameCmd{}, "holdings")
	c.Register(&rmCmd{}, "holdings")

	c.Register(&txCmd{}, "ledger")
	c.Register(&txsCmd{}, "ledger")
	c.Register(&txrmCmd{}, "ledger")

	c.Register(&valueCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&indicatorsCmd{}, "reports")
	c.Register(&corrCmd{}, "reports")
	c.Register(&newsCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application it is short lived, so global flags are fine.

var configPath = flag.String("config", "folio.toml", "Path to the TOML configuration file")

// App bundles the engine pieces a subcommand needs. Open it at the start of
// Execute and Close it when done.
type App struct {
	Config    folio.Config
	Store     *store.Store
	Registry  *folio.Registry
	Ledger    *folio.Ledger
	Snapshots *folio.SnapshotHistory
	Resolver  *folio.Resolver
	Valuer    *folio.Valuer
	Quotes    *yahoo.Client
}

// openApp loads the configuration and wires the engine on top of the store.
func openApp() (*App, error) {
	cfg, err := folio.LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	cfg.ConfigureLogging()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", cfg.DBPath, err)
	}

	registry := folio.NewRegistry(st)
	ledger := folio.NewLedger(st, registry, cfg.ReportingCurrency)
	snapshots := folio.NewSnapshotHistory(st, cfg.ReportingCurrency)

	quotes := yahoo.New()
	resolver := folio.NewResolver(folio.NewQuoteCache(), frankfurter.New(), coingecko.New(), quotes, cfg.ReportingCurrency, cfg.FxFallback)
	valuer := folio.NewValuer(resolver, registry, snapshots, cfg.ReportingCurrency)

	return &App{
		Config:    cfg,
		Store:     st,
		Registry:  registry,
		Ledger:    ledger,
		Snapshots: snapshots,
		Resolver:  resolver,
		Valuer:    valuer,
		Quotes:    quotes,
	}, nil
}

// Close releases the store.
func (a *App) Close() {
	a.Store.Close()
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
