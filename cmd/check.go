package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a ledger event file without applying it" }
func (*checkCmd) Usage() string {
	return `ccl check <events.csv>

  Decodes every record of the file and reports the first malformed one,
  without applying any event. On success, prints a count per event kind.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer in.Close()

	counts := make(map[clearing.EventType]int)
	total := 0
	events := clearing.NewEventReader(in)
	for {
		ev, err := events.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		counts[ev.What()]++
		total++
	}

	fmt.Printf("%d events\n", total)
	for _, kind := range []clearing.EventType{
		clearing.EvtDeposit,
		clearing.EvtWithdrawal,
		clearing.EvtDispute,
		clearing.EvtResolve,
		clearing.EvtChargeback,
	} {
		if counts[kind] > 0 {
			fmt.Printf("  %s: %d\n", kind, counts[kind])
		}
	}
	return subcommands.ExitSuccess
}
