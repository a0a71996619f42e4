package bushel

import (
	"strings"

	"github.com/harrowfield/bushel/date"
)

// harvestCounts reports whether a harvest row's status makes it count
// toward production totals. Rows still being keyed in carry other statuses.
func harvestCounts(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "partial", "partials", "complete":
		return true
	}
	return false
}

// StartingBushels resolves total expected production for a crop year and
// standard commodity. A CropTotal of kind actual wins outright; otherwise
// field-level harvest records falling inside the crop year are summed.
// found is false when neither source has data, in which case the quantity
// is zero.
func (d *Dataset) StartingBushels(year date.CropYear, commodity string) (total Quantity, found bool) {
	for _, t := range d.totals {
		if t.Year == year && t.Kind == TotalActual && d.norm.Normalize(t.Commodity) == commodity {
			return t.Bushels, true
		}
	}

	for _, h := range d.harvests {
		if !harvestCounts(h.Status) {
			continue
		}
		if !year.Contains(h.Harvested) {
			continue
		}
		if d.norm.Normalize(h.Commodity) != commodity {
			continue
		}
		total = total.Add(h.Bushels)
		found = true
	}
	return total, found
}
