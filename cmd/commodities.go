package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel/renderer"
)

// commoditiesCmd holds the flags for the 'commodities' subcommand.
type commoditiesCmd struct{}

func (*commoditiesCmd) Name() string     { return "commodities" }
func (*commoditiesCmd) Synopsis() string { return "list the dataset's commodities and their aliases" }
func (*commoditiesCmd) Usage() string {
	return `bmr commodities

  Lists every standard commodity found in the dataset with the raw
  spellings that map to it.
`
}

func (*commoditiesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *commoditiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dataset, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CommoditiesMarkdown(dataset))
	return subcommands.ExitSuccess
}
