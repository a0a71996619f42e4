package bushel

import (
	"fmt"
	"sort"
	"time"

	"github.com/harrowfield/bushel/date"
)

// DeliveryCell is the settled grain of one commodity in one month.
type DeliveryCell struct {
	Bushels Quantity
	Revenue Money
}

// CommodityDeliveries is one commodity's deliveries across a crop year,
// month by month from October through September.
type CommodityDeliveries struct {
	Commodity string
	Months    [12]DeliveryCell // index 0 is October
	Total     DeliveryCell
}

// MonthlyDeliveries breaks a crop year's settled grain down by commodity
// and delivery month.
type MonthlyDeliveries struct {
	Year        date.CropYear
	Commodities []CommodityDeliveries
	Notices     []Notice
}

// cropYearMonth maps a calendar month to its offset in the crop year:
// October is 0, September is 11.
func cropYearMonth(m time.Month) int { return (int(m) + 2) % 12 }

// MonthLabel names the i-th month of a crop year, starting at October.
func MonthLabel(i int) string { return time.Month((i+9)%12 + 1).String() }

// MonthlyDeliveries reports settled bushels and revenue per commodity and
// month for one crop year, from header settlement rows.
func (d *Dataset) MonthlyDeliveries(year date.CropYear) (*MonthlyDeliveries, error) {
	if !year.Valid() {
		return nil, fmt.Errorf("crop year %d is not a valid calendar year", int(year))
	}

	var ns notices
	cells := make(map[string]*CommodityDeliveries)
	for _, s := range d.settlements {
		if s.Status != SettlementHeader {
			continue
		}
		if s.Delivered.IsZero() {
			ns.add(ExcludedRecord, "settlement %s has no delivery date", s.ID)
			continue
		}
		if !year.Contains(s.Delivered) {
			continue
		}
		std := d.norm.Normalize(s.Commodity)
		if std == Unknown {
			ns.add(ExcludedRecord, "settlement %s has no commodity", s.ID)
			continue
		}
		cd, ok := cells[std]
		if !ok {
			cd = &CommodityDeliveries{Commodity: std, Total: DeliveryCell{Revenue: Dollars(0)}}
			cells[std] = cd
		}
		m := cropYearMonth(s.Delivered.Month())
		cd.Months[m].Bushels = cd.Months[m].Bushels.Add(s.Bushels)
		cd.Months[m].Revenue = cd.Months[m].Revenue.Add(s.Revenue())
		cd.Total.Bushels = cd.Total.Bushels.Add(s.Bushels)
		cd.Total.Revenue = cd.Total.Revenue.Add(s.Revenue())
	}

	report := &MonthlyDeliveries{Year: year, Notices: ns.list}
	for _, cd := range cells {
		report.Commodities = append(report.Commodities, *cd)
	}
	sort.Slice(report.Commodities, func(i, j int) bool {
		return report.Commodities[i].Commodity < report.Commodities[j].Commodity
	})
	return report, nil
}
