package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a holding" }
func (*rmCmd) Usage() string {
	return `folio rm <name>

  Removes the named holding from the register. Ledger entries that referenced
  it are kept.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one holding name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	h, err := app.Registry.Find(ctx, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: holding %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	if err := app.Registry.Delete(ctx, h.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing holding %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %s\n", name)
	return subcommands.ExitSuccess
}
