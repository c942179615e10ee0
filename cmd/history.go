package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
)

// historyCmd holds the flags for the 'hi' subcommand.
type historyCmd struct{}

func (*historyCmd) Name() string     { return "hi" }
func (*historyCmd) Synopsis() string { return "display the operation history of one instrument" }
func (*historyCmd) Usage() string {
	return `tin hi <ticker>

  Displays the executed operations of the instrument in chronological order,
  with a running payment total.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one ticker is required")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	instrument, err := client.FindInstrument(ctx, ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", ticker, err)
		return subcommands.ExitFailure
	}

	ops, err := client.Operations(ctx, instrument.FIGI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching operations: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := invest.BuildNonEmptyLedger(ops)
	if errors.Is(err, invest.ErrEmptyHistory) {
		fmt.Fprintf(os.Stderr, "No operations found for %s\n", instrument.Ticker)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgerMarkdown(instrument, ledger))
	return subcommands.ExitSuccess
}
