package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel/date"
	"github.com/harrowfield/bushel/renderer"
)

// deliveriesCmd holds the flags for the 'deliveries' subcommand.
type deliveriesCmd struct {
	year string
}

func (*deliveriesCmd) Name() string     { return "deliveries" }
func (*deliveriesCmd) Synopsis() string { return "display settled deliveries per month" }
func (*deliveriesCmd) Usage() string {
	return `bmr deliveries [-y <year>]

  Breaks one crop year's settled grain down by commodity and delivery
  month, October through September.
`
}

func (c *deliveriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", date.CurrentCropYear().String(), "Crop year to report.")
}

func (c *deliveriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, err := date.ParseCropYear(c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing crop year: %v\n", err)
		return subcommands.ExitUsageError
	}

	dataset, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := dataset.MonthlyDeliveries(year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DeliveriesMarkdown(report))
	return subcommands.ExitSuccess
}
