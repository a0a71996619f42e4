package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the record files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bmr fmt

  Validates and formats every record file in the data directory. Each line
  is decoded, checked, and written back in a canonical JSONL form: stable
  field order, normalized dates, defaulted statuses made explicit.

Usage Examples:
# Rewrites every .jsonl file under the data directory in-place.
$ bmr fmt

`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths, err := bushel.FormatDataDir(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting record files: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no record files found to format.")
		return subcommands.ExitSuccess
	}

	for _, path := range paths {
		fmt.Fprintf(os.Stderr, "Formatted %q\n", path)
	}
	return subcommands.ExitSuccess
}
