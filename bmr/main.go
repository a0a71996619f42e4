// Command bmr reconciles a farm's grain sales per crop year: what is
// sold, contracted, or still open for each commodity.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, answered before any flag parsing when the shell
	// asks for it (install with COMP_INSTALL=1 bmr).
	completion().Complete("bmr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"y": predict.Something,
				"c": predict.Something,
				"p": predict.Something,
			}},
			"deliveries": {Flags: map[string]complete.Predictor{
				"y": predict.Something,
			}},
			"commodities": {},
			"cropyear": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
			}},
			"price": {Flags: map[string]complete.Predictor{
				"c":    predict.Something,
				"url":  predict.Something,
				"path": predict.Something,
			}},
			"fmt":    {},
			"topic":  {Args: predict.Set{"readme", "cropyear", "dataset", "report"}},
			"assist": {},
		},
	}
}
