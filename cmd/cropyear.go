package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel/date"
)

// cropyearCmd holds the flags for the 'cropyear' subcommand.
type cropyearCmd struct {
	date string
}

func (*cropyearCmd) Name() string     { return "cropyear" }
func (*cropyearCmd) Synopsis() string { return "show the crop year a date belongs to" }
func (*cropyearCmd) Usage() string {
	return `bmr cropyear [-d <date>]

  Shows the crop year of a date and its bounds. A crop year runs October 1
  through September 30 and is labeled by the year of its October 1.
`
}

func (c *cropyearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date to resolve.")
}

func (c *cropyearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	year := date.CropYearOf(on)
	fmt.Printf("%s is in crop year %s (%s)\n", on, year, year.Range())
	return subcommands.ExitSuccess
}
