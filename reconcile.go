package bushel

import (
	"fmt"
	"sort"

	"github.com/harrowfield/bushel/date"
)

// OpenPrice is a caller-supplied price estimate for unpriced grain, per
// standard commodity and optionally pinned to one crop year. A zero Year
// applies to every crop year. This is configuration, not derived data.
type OpenPrice struct {
	Commodity string
	Year      date.CropYear // zero matches any crop year
	Price     Money
}

// ReportOptions selects what a sales reconciliation covers.
type ReportOptions struct {
	// Years lists the crop years to report. Empty means every crop year
	// with contract or settlement activity. A listed year with no data
	// still produces zero-filled rows.
	Years []date.CropYear
	// Commodities restricts the report to the given commodities, raw or
	// standard spelling. Empty means all.
	Commodities []string
	// OpenPrices values the open bushels of each bucket. A commodity
	// without an entry gets a zero open revenue.
	OpenPrices []OpenPrice
}

// Validate rejects caller input the aggregation cannot run on. Record-level
// problems are not errors; they degrade to notices during aggregation.
func (o ReportOptions) Validate() error {
	for _, y := range o.Years {
		if !y.Valid() {
			return fmt.Errorf("requested crop year %d is not a valid calendar year", int(y))
		}
	}
	for _, p := range o.OpenPrices {
		if p.Price.IsNegative() {
			return fmt.Errorf("open price for %q is negative: %s", p.Commodity, p.Price)
		}
		if p.Year != 0 && !p.Year.Valid() {
			return fmt.Errorf("open price for %q names invalid crop year %d", p.Commodity, int(p.Year))
		}
	}
	return nil
}

// openPrice resolves the default open price for a bucket. A year-specific
// entry wins over an any-year entry.
func (o ReportOptions) openPrice(norm *Normalizer, year date.CropYear, commodity string) Money {
	anyYear := Dollars(0)
	for _, p := range o.OpenPrices {
		if norm.Normalize(p.Commodity) != commodity {
			continue
		}
		if p.Year == year {
			return p.Price
		}
		if p.Year == 0 {
			anyYear = p.Price
		}
	}
	return anyYear
}

// CropYearBucket is the reconciliation of one crop year and commodity:
// starting bushels partitioned into sold, contracted and open, with the
// revenue realized or expected for each part.
//
// Unless Oversold is set, SoldBushels + ContractedBushels + OpenBushels
// equals Starting. When Oversold is set, committed bushels exceed starting
// bushels and OpenBushels is zero; sold and contracted are never rescaled.
type CropYearBucket struct {
	Year      date.CropYear
	Commodity string

	Starting Quantity

	SoldBushels Quantity
	SoldRevenue Money

	ContractedBushels Quantity
	ContractedRevenue Money

	OpenBushels Quantity
	OpenRevenue Money

	Oversold       bool
	NoStartingData bool
}

// SalesReport is the full crop-year sales reconciliation: one bucket per
// crop year and commodity, plus the non-fatal findings collected while
// computing them.
type SalesReport struct {
	Buckets []CropYearBucket
	Notices []Notice
}

// Reconcile computes the crop-year sales reconciliation for the dataset.
// It aborts only on invalid caller input; every record-level problem
// degrades to a notice so one bad row never blocks the report.
func (d *Dataset) Reconcile(opts ReportOptions) (*SalesReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var ns notices
	d.recordNotices(&ns)

	years := opts.Years
	requested := make(map[date.CropYear]bool, len(years))
	for _, y := range years {
		requested[y] = true
	}
	if len(years) == 0 {
		years = d.Years()
	} else {
		years = append([]date.CropYear(nil), years...)
		sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	}

	var filter map[string]bool
	if len(opts.Commodities) > 0 {
		filter = make(map[string]bool, len(opts.Commodities))
		for _, c := range opts.Commodities {
			filter[d.norm.Normalize(c)] = true
		}
	}

	report := &SalesReport{}
	for _, year := range years {
		commodities := d.activeCommodities(year)
		if len(commodities) == 0 && requested[year] {
			// An explicitly requested year with no activity still gets
			// zero-filled rows for the dataset's known commodities.
			commodities = d.Commodities()
		}
		for _, commodity := range commodities {
			if filter != nil && !filter[commodity] {
				continue
			}
			report.Buckets = append(report.Buckets, d.bucket(year, commodity, opts, &ns))
		}
	}

	report.Notices = ns.list
	return report, nil
}

// bucket aggregates one crop year and commodity.
func (d *Dataset) bucket(year date.CropYear, commodity string, opts ReportOptions, ns *notices) CropYearBucket {
	b := CropYearBucket{
		Year:              year,
		Commodity:         commodity,
		SoldRevenue:       Dollars(0),
		ContractedRevenue: Dollars(0),
	}

	// Sold: header settlement rows delivered inside the crop year.
	for _, s := range d.settlements {
		if s.Status != SettlementHeader || !year.Contains(s.Delivered) {
			continue
		}
		if d.norm.Normalize(s.Commodity) != commodity {
			continue
		}
		b.SoldBushels = b.SoldBushels.Add(s.Bushels)
		b.SoldRevenue = b.SoldRevenue.Add(s.Revenue())
	}

	// Contracted: the unsettled remainder of each live contract whose
	// delivery window starts inside the crop year. Two passes keep the
	// clamping auditable: first sum what settled against the contract,
	// then subtract.
	for _, c := range d.contracts {
		if c.Status == ContractCancelled || !year.Contains(c.DeliveryStart) {
			continue
		}
		if d.norm.Normalize(c.Commodity) != commodity {
			continue
		}
		var settledQty Quantity
		for _, s := range d.settledFor(c.Number) {
			settledQty = settledQty.Add(s.Bushels)
		}
		remainder := c.Bushels.Sub(settledQty).ClampZero()
		b.ContractedBushels = b.ContractedBushels.Add(remainder)
		b.ContractedRevenue = b.ContractedRevenue.Add(c.Price.Mul(remainder))
	}

	starting, found := d.StartingBushels(year, commodity)
	b.Starting = starting
	if !found {
		b.NoStartingData = true
		ns.add(NoStartingData, "no starting-bushels data for %s in crop year %s", commodity, year)
	}

	open := b.Starting.Sub(b.SoldBushels).Sub(b.ContractedBushels)
	if open.IsNegative() {
		open = Quantity{}
		b.Oversold = true
		committed := b.SoldBushels.Add(b.ContractedBushels)
		ns.add(Oversold, "%s in crop year %s is oversold: %s bu committed against %s bu starting", commodity, year, committed, b.Starting)
	}
	b.OpenBushels = open
	b.OpenRevenue = opts.openPrice(d.norm, year, commodity).Mul(open)

	return b
}

// activeCommodities returns the sorted standard commodities with contract
// or settlement activity in the crop year.
func (d *Dataset) activeCommodities(year date.CropYear) []string {
	seen := make(map[string]bool)
	for _, s := range d.settlements {
		if s.Status == SettlementHeader && year.Contains(s.Delivered) {
			if std := d.norm.Normalize(s.Commodity); std != Unknown {
				seen[std] = true
			}
		}
	}
	for _, c := range d.contracts {
		if c.Status != ContractCancelled && year.Contains(c.DeliveryStart) {
			if std := d.norm.Normalize(c.Commodity); std != Unknown {
				seen[std] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for std := range seen {
		out = append(out, std)
	}
	sort.Strings(out)
	return out
}

// recordNotices reports the record-level findings that do not depend on
// which crop years are being reported: unmapped labels, missing dates and
// blank commodities.
func (d *Dataset) recordNotices(ns *notices) {
	unmapped := func(raw string) {
		if std, mapped := d.norm.Lookup(raw); !mapped {
			ns.add(UnmappedCommodity, "no mapping found for commodity label %q, grouped as %q", raw, std)
		}
	}
	for _, c := range d.contracts {
		if c.Status == ContractCancelled {
			continue
		}
		unmapped(c.Commodity)
		if c.DeliveryStart.IsZero() {
			ns.add(ExcludedRecord, "contract %s has no delivery start date", c.Number)
		}
		if d.norm.Normalize(c.Commodity) == Unknown {
			ns.add(ExcludedRecord, "contract %s has no commodity", c.Number)
		}
	}
	for _, s := range d.settlements {
		if s.Status != SettlementHeader {
			continue
		}
		unmapped(s.Commodity)
		if s.Delivered.IsZero() {
			ns.add(ExcludedRecord, "settlement %s has no delivery date", s.ID)
		}
		if d.norm.Normalize(s.Commodity) == Unknown {
			ns.add(ExcludedRecord, "settlement %s has no commodity", s.ID)
		}
	}
	for _, h := range d.harvests {
		if harvestCounts(h.Status) {
			unmapped(h.Commodity)
		}
	}
}
