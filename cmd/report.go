package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel"
	"github.com/harrowfield/bushel/date"
	"github.com/harrowfield/bushel/renderer"
)

// priceFlags collects repeated -p flags into open price entries.
type priceFlags []bushel.OpenPrice

func (p *priceFlags) String() string {
	parts := make([]string, 0, len(*p))
	for _, e := range *p {
		parts = append(parts, e.Commodity)
	}
	return strings.Join(parts, ",")
}

// Set parses "commodity=price" or "commodity:year=price".
func (p *priceFlags) Set(s string) error {
	target, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid open price %q, want commodity=price", s)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("invalid open price %q: %w", s, err)
	}

	entry := bushel.OpenPrice{Price: bushel.Dollars(price)}
	commodity, year, pinned := strings.Cut(target, ":")
	entry.Commodity = strings.TrimSpace(commodity)
	if pinned {
		y, err := date.ParseCropYear(strings.TrimSpace(year))
		if err != nil {
			return err
		}
		entry.Year = y
	}
	*p = append(*p, entry)
	return nil
}

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	years     string
	commodity string
	prices    priceFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the crop year sales reconciliation" }
func (*reportCmd) Usage() string {
	return `bmr report [-y <years>] [-c <commodity>] [-p commodity=price]...

  Reconciles each crop year and commodity: starting bushels split into
  sold, contracted and open, with realized and expected revenue.

Usage Examples:
# Current crop year, corn only, open bushels valued at $4.25.
$ bmr report -y 2025 -c Corn -p "Corn=4.25"

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.years, "y", "", "Crop years to report, comma separated. Defaults to every year with activity.")
	f.StringVar(&c.commodity, "c", "", "Restrict the report to one commodity, raw or standard spelling.")
	f.Var(&c.prices, "p", "Default open price as commodity=price, or commodity:year=price. Repeatable.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts := bushel.ReportOptions{OpenPrices: c.prices}

	if c.years != "" {
		for _, part := range strings.Split(c.years, ",") {
			y, err := date.ParseCropYear(strings.TrimSpace(part))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing crop year: %v\n", err)
				return subcommands.ExitUsageError
			}
			opts.Years = append(opts.Years, y)
		}
	}
	if c.commodity != "" {
		opts.Commodities = []string{c.commodity}
	}

	dataset, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := dataset.Reconcile(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SalesMarkdown(report))
	return subcommands.ExitSuccess
}
