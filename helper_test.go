package bushel

import (
	"testing"
	"time"

	"github.com/harrowfield/bushel/date"
)

// sampleRecords is a small but complete farm dataset for crop year 2024
// (Oct 2024 through Sep 2025):
//
//   - Corn: 10,000 bu production, 3,000 settled at $5.00, a 4,000 bu
//     contract at $4.50 still open.
//   - Soybeans: 5,000 bu production but 6,000 bu committed (oversold).
//   - Wheat: 500 bu settled with no production data and no alias mapping.
func sampleRecords() []Record {
	return []Record{
		CommodityAlias{Alias: "Yellow Corn", Standard: "Corn"},
		CommodityAlias{Alias: "White Corn", Standard: "Corn"},
		CommodityAlias{Alias: "Beans", Standard: "Soybeans"},

		CropTotal{Year: 2024, Commodity: "Corn", Bushels: Q(10000), Kind: TotalActual},
		CropTotal{Year: 2024, Commodity: "Beans", Bushels: Q(5000), Kind: TotalActual},

		Contract{
			Number: "C-1", Commodity: "Yellow Corn", Bushels: Q(3000), Price: Dollars(5.00),
			DateSold:      date.New(2024, time.September, 15),
			DeliveryStart: date.New(2024, time.November, 1),
			DeliveryEnd:   date.New(2024, time.November, 30),
			Status:        ContractActive, Fill: FillFilled,
		},
		Contract{
			Number: "C-2", Commodity: "Corn", Bushels: Q(4000), Price: Dollars(4.50),
			DateSold:      date.New(2025, time.January, 10),
			DeliveryStart: date.New(2025, time.March, 1),
			DeliveryEnd:   date.New(2025, time.March, 31),
			Status:        ContractActive, Fill: FillNone,
		},
		Contract{
			Number: "C-3", Commodity: "Beans", Bushels: Q(3000), Price: Dollars(10.00),
			DeliveryStart: date.New(2025, time.January, 10),
			Status:        ContractActive, Fill: FillNone,
		},
		// Cancelled contracts never count, whatever their size.
		Contract{
			Number: "C-4", Commodity: "Corn", Bushels: Q(99999), Price: Dollars(9.99),
			DeliveryStart: date.New(2024, time.December, 1),
			Status:        ContractCancelled,
		},

		SettlementDetail{
			ID: "S-1", Contract: "C-1", Commodity: "Yellow Corn",
			Bushels: Q(3000), Price: Dollars(5.00), Net: Dollars(15000),
			Delivered: date.New(2024, time.November, 15), Status: SettlementHeader,
		},
		// Component detail row of S-1; must never double-count.
		SettlementDetail{
			ID: "S-1", Contract: "C-1", Commodity: "Yellow Corn",
			Bushels: Q(3000), Price: Dollars(5.00),
			Delivered: date.New(2024, time.November, 15), Status: SettlementDetailRow,
		},
		SettlementDetail{
			ID: "S-2", Commodity: "Beans",
			Bushels: Q(3000), Price: Dollars(11.00), Net: Dollars(33000),
			Delivered: date.New(2024, time.October, 20), Status: SettlementHeader,
		},
		SettlementDetail{
			ID: "S-3", Commodity: "Wheat",
			Bushels: Q(500), Price: Dollars(6.00), Gross: Dollars(3100),
			Delivered: date.New(2025, time.June, 1), Status: SettlementHeader,
		},
	}
}

func sampleDataset() *Dataset { return NewDataset(sampleRecords()...) }

func findBucket(t *testing.T, report *SalesReport, year date.CropYear, commodity string) CropYearBucket {
	t.Helper()
	for _, b := range report.Buckets {
		if b.Year == year && b.Commodity == commodity {
			return b
		}
	}
	t.Fatalf("no bucket for %s in crop year %s; got %d buckets", commodity, year, len(report.Buckets))
	return CropYearBucket{}
}

func hasNotice(notices []Notice, kind NoticeKind) bool {
	for _, n := range notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}
