// Package cmd implements the CLI application to report on crop sales.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/harrowfield/bushel"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&deliveriesCmd{}, "reports")
	c.Register(&commoditiesCmd{}, "reports")
	c.Register(&cropyearCmd{}, "reports")

	c.Register(&priceCmd{}, "dataset")
	c.Register(&fmtCmd{}, "dataset")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Path to the data directory holding the record files (JSONL format)")

// LoadDataset loads the record snapshot from the app data directory.
func LoadDataset() (*bushel.Dataset, error) {
	return bushel.LoadDataset(*dataDir)
}

// printMarkdown renders markdown for the terminal. When rendering fails
// (e.g. output is not a terminal) the raw markdown is printed instead.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
