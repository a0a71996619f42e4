package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harrowfield/bushel"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	commodity string
	url       string
	path      string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "fetch an indicative cash bid from a JSON feed" }
func (*priceCmd) Usage() string {
	return `bmr price -c <commodity> -url <feed_url> -path <jsonpath>

  Fetches a cash bid from a remote JSON feed and prints it as a suggested
  default open price for 'bmr report -p'. Responses are cached on disk for
  the day.

Usage Examples:
$ bmr price -c Corn -url "https://elevator.example/bids.json" -path "$.bids[0].price"

`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.commodity, "c", "", "Standard commodity name the quote is for.")
	f.StringVar(&c.url, "url", "", "URL of the JSON cash bid feed.")
	f.StringVar(&c.path, "path", "", "jsonpath expression selecting the price in the feed.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.commodity == "" || c.url == "" || c.path == "" {
		fmt.Fprintln(os.Stderr, "Error: -c, -url and -path are all required")
		return subcommands.ExitUsageError
	}

	feed := bushel.PriceFeed{Commodity: c.commodity, URL: c.url, Path: c.path}
	price, err := feed.Fetch(bushel.Daily())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", c.commodity, price)
	fmt.Printf("suggestion: bmr report -p %q\n", fmt.Sprintf("%s=%g", c.commodity, price.AsFloat()))
	return subcommands.ExitSuccess
}
