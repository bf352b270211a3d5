package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a holding" }
func (*renameCmd) Usage() string {
	return `folio rename <old> <new>

  Renames a holding. Ledger entries keep pointing at it, history is preserved.
`
}

func (*renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <old> and <new> names.")
		return subcommands.ExitUsageError
	}
	oldName, newName := f.Arg(0), f.Arg(1)

	app, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	h, err := app.Registry.Find(ctx, oldName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: holding %q: %v\n", oldName, err)
		return subcommands.ExitFailure
	}
	if err := app.Registry.Rename(ctx, h.ID, newName); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming %q: %v\n", oldName, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Renamed %s to %s\n", oldName, newName)
	return subcommands.ExitSuccess
}
