package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	output string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply a ledger event stream and print the final account snapshots"
}
func (*processCmd) Usage() string {
	return `ccl process [-o <file>] <events.csv>

  Reads the CSV ledger events in arrival order, applies each one to the
  matching client account, and writes the final account snapshots as CSV.
  Rejected events are logged and skipped; a malformed record aborts the run.
  Use "-" to read events from stdin.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the snapshots CSV to this file instead of stdout.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := clearing.EncodeSnapshots(out, registry.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshots: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
