package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/clearing/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. This is a no-op unless the shell is asking for
	// completions, in which case it prints them and exits.
	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"process":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}, Args: predict.Files("*.csv")},
			"summary":  {Args: predict.Files("*.csv")},
			"check":    {Args: predict.Files("*.csv")},
			"generate": {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"topic":    {},
		},
	}
	cmp.Complete("ccl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
