package bushel

import (
	"sort"

	"github.com/harrowfield/bushel/date"
)

// Dataset is the read-only snapshot of records a report is computed from.
// The query layer materializes all records up front; no method here blocks
// on I/O or mutates the snapshot, so a Dataset is safe for concurrent
// report requests.
type Dataset struct {
	contracts   []Contract
	settlements []SettlementDetail
	harvests    []HarvestActual
	totals      []CropTotal
	aliases     []CommodityAlias

	norm    *Normalizer
	settled map[string][]SettlementDetail // header rows indexed by contract number
}

// NewDataset builds a Dataset from a flat record snapshot, indexing
// settlements by contract number and loading the alias table.
func NewDataset(records ...Record) *Dataset {
	d := &Dataset{}
	for _, r := range records {
		switch v := r.(type) {
		case Contract:
			d.contracts = append(d.contracts, v)
		case SettlementDetail:
			d.settlements = append(d.settlements, v)
		case HarvestActual:
			d.harvests = append(d.harvests, v)
		case CropTotal:
			d.totals = append(d.totals, v)
		case CommodityAlias:
			d.aliases = append(d.aliases, v)
		}
	}
	d.norm = NewNormalizer(d.aliases)
	d.settled = make(map[string][]SettlementDetail)
	for _, s := range d.settlements {
		if s.Status != SettlementHeader || s.Contract == "" {
			continue
		}
		d.settled[s.Contract] = append(d.settled[s.Contract], s)
	}
	return d
}

// Normalizer returns the session's commodity normalizer.
func (d *Dataset) Normalizer() *Normalizer { return d.norm }

// Records returns all records of the dataset in a stable order, suitable
// for canonical re-encoding.
func (d *Dataset) Records() []Record {
	out := make([]Record, 0, len(d.aliases)+len(d.contracts)+len(d.settlements)+len(d.harvests)+len(d.totals))
	for _, a := range d.aliases {
		out = append(out, a)
	}
	for _, t := range d.totals {
		out = append(out, t)
	}
	for _, h := range d.harvests {
		out = append(out, h)
	}
	for _, c := range d.contracts {
		out = append(out, c)
	}
	for _, s := range d.settlements {
		out = append(out, s)
	}
	return out
}

// settledFor returns the header settlement rows recorded against a
// contract, across all crop years. Partial fills from a past crop year
// still reduce the contracted remainder.
func (d *Dataset) settledFor(contractNumber string) []SettlementDetail {
	return d.settled[contractNumber]
}

// Years returns the crop years that have contract or settlement activity,
// in ascending order.
func (d *Dataset) Years() []date.CropYear {
	seen := make(map[date.CropYear]bool)
	for _, c := range d.contracts {
		if !c.DeliveryStart.IsZero() {
			seen[date.CropYearOf(c.DeliveryStart)] = true
		}
	}
	for _, s := range d.settlements {
		if !s.Delivered.IsZero() {
			seen[date.CropYearOf(s.Delivered)] = true
		}
	}
	years := make([]date.CropYear, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years
}

// Commodities returns the standard commodity names present anywhere in the
// dataset, sorted. Unknown is excluded.
func (d *Dataset) Commodities() []string {
	seen := make(map[string]bool)
	add := func(raw string) {
		std := d.norm.Normalize(raw)
		if std != Unknown {
			seen[std] = true
		}
	}
	for _, c := range d.contracts {
		add(c.Commodity)
	}
	for _, s := range d.settlements {
		add(s.Commodity)
	}
	for _, h := range d.harvests {
		add(h.Commodity)
	}
	for _, t := range d.totals {
		add(t.Commodity)
	}
	out := make([]string, 0, len(seen))
	for std := range seen {
		out = append(out, std)
	}
	sort.Strings(out)
	return out
}
