package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	clients uint
	seed    int64
	output  string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a synthetic ledger event dataset" }
func (*generateCmd) Usage() string {
	return `ccl generate [-clients <n>] [-seed <n>] [-o <file>]

  Writes a synthetic CSV dataset: one deposit per client, then for each
  client either a dispute followed by a chargeback, or a withdrawal,
  picked at random. Useful to exercise the processing pipeline at scale.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.clients, "clients", 65535, "Number of client accounts to generate.")
	f.Int64Var(&c.seed, "seed", 1, "Seed of the random event mix, for reproducible datasets.")
	f.StringVar(&c.output, "o", "", "Write the dataset to this file instead of stdout.")
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clients == 0 || c.clients > 65535 {
		fmt.Fprintf(os.Stderr, "Error: -clients must be in 1..65535, got %d\n", c.clients)
		return subcommands.ExitUsageError
	}

	out := io.Writer(os.Stdout)
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := generate(out, c.clients, c.seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// generate writes the synthetic dataset: a deposit of 10.0 per client, then
// a random dispute/chargeback pair or a withdrawal per client.
func generate(out io.Writer, clients uint, seed int64) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"type", "client", "tx", "amount"}); err != nil {
		return err
	}

	row := func(kind string, client, tx uint, amount string) error {
		return w.Write([]string{kind, strconv.FormatUint(uint64(client), 10), strconv.FormatUint(uint64(tx), 10), amount})
	}

	for i := uint(1); i <= clients; i++ {
		if err := row("deposit", i, i, "10.0"); err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(seed))
	for i := uint(1); i <= clients; i++ {
		if rng.Intn(2) == 0 {
			if err := row("dispute", i, i, ""); err != nil {
				return err
			}
			if err := row("chargeback", i, i, ""); err != nil {
				return err
			}
		} else if err := row("withdrawal", i, i, "10.0"); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
