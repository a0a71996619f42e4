package bushel

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// Elevators and co-ops publish cash bids as small JSON feeds with no
// common schema, so a feed is configured as a URL plus a jsonpath
// expression selecting the price. The fetched quote is only a suggestion
// for the default open price; it never enters the reconciliation on its
// own.

// PriceFeed locates one commodity's cash bid in a remote JSON feed.
type PriceFeed struct {
	Commodity string // standard commodity name the quote is for
	URL       string
	Path      string // jsonpath expression to the price, e.g. "$.bids[0].price"
}

// Fetch retrieves the current quote from the feed.
func (f PriceFeed) Fetch(client *http.Client) (Money, error) {
	var jobj any
	if err := jwget(client, f.URL, &jobj); err != nil {
		return Money{}, fmt.Errorf("error fetching bid for %q: %w", f.Commodity, err)
	}

	jval, err := jsonpath.Get(f.Path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error selecting bid for %q: %q %w", f.Commodity, f.Path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("bid for %q at %q is not a number: %v", f.Commodity, f.Path, jval)
	}
	if val < 0 {
		return Money{}, fmt.Errorf("bid for %q is negative: %v", f.Commodity, val)
	}
	return Dollars(val), nil
}
