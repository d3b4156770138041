package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clearing"
	"github.com/etnz/clearing/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an aggregate report of all accounts" }
func (*summaryCmd) Usage() string {
	return `ccl summary [-currency <code>] <events.csv>

  Processes the ledger events and displays an aggregate markdown report:
  totals of available, held and total funds, locked accounts, open
  disputes, and the per-account table.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "ISO currency code used to format amounts (raw 4-digit values by default).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer in.Close()

	logger := newLogger()
	defer logger.Sync()

	registry, err := clearing.Process(in, rejectLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing events: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.SummaryMarkdown(clearing.NewSummary(registry), registry.Snapshot(), c.currency)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
