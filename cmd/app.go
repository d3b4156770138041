// Package cmd implements the CLI application to process clearing ledgers.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the subcommands of the ccl tool.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&processCmd{},
	&summaryCmd{},
	&checkCmd{},
	&generateCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var quiet = flag.Bool("q", false, "Suppress per-event rejection logging")

// openInput opens the single positional input file argument, "-" meaning stdin.
func openInput(f *flag.FlagSet) (io.ReadCloser, error) {
	if f.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one input file argument, got %d", f.NArg())
	}
	name := f.Arg(0)
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// newLogger builds the structured logger that reports rejected events on stderr.
func newLogger() *zap.Logger {
	if *quiet {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// rejectLogger adapts a logger to the core's reject handler: a rejected
// event is reported and the run carries on.
func rejectLogger(l *zap.Logger) clearing.RejectHandler {
	return func(ev clearing.LedgerEvent, err error) {
		l.Warn("event rejected",
			zap.String("kind", string(ev.What())),
			zap.Uint16("client", uint16(ev.Client())),
			zap.Uint32("tx", uint32(ev.Tx())),
			zap.Error(err),
		)
	}
}
