package bushel

import (
	"testing"
	"time"

	"github.com/harrowfield/bushel/date"
)

func TestReconcile_Partition(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{
		Years:      []date.CropYear{2024},
		OpenPrices: []OpenPrice{{Commodity: "Corn", Price: Dollars(4.00)}},
	})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	b := findBucket(t, report, 2024, "Corn")

	if !b.Starting.Equal(Q(10000)) {
		t.Errorf("Starting = %s, want 10000", b.Starting)
	}
	if !b.SoldBushels.Equal(Q(3000)) {
		t.Errorf("SoldBushels = %s, want 3000", b.SoldBushels)
	}
	if !b.SoldRevenue.Equal(Dollars(15000)) {
		t.Errorf("SoldRevenue = %s, want $15,000.00", b.SoldRevenue)
	}
	if !b.ContractedBushels.Equal(Q(4000)) {
		t.Errorf("ContractedBushels = %s, want 4000", b.ContractedBushels)
	}
	if !b.ContractedRevenue.Equal(Dollars(18000)) {
		t.Errorf("ContractedRevenue = %s, want $18,000.00", b.ContractedRevenue)
	}
	if !b.OpenBushels.Equal(Q(3000)) {
		t.Errorf("OpenBushels = %s, want 3000", b.OpenBushels)
	}
	if !b.OpenRevenue.Equal(Dollars(12000)) {
		t.Errorf("OpenRevenue = %s, want $12,000.00", b.OpenRevenue)
	}
	if b.Oversold || b.NoStartingData {
		t.Errorf("flags = oversold:%v noStartingData:%v, want neither", b.Oversold, b.NoStartingData)
	}

	// The partition invariant: sold + contracted + open == starting.
	sum := b.SoldBushels.Add(b.ContractedBushels).Add(b.OpenBushels)
	if !sum.Equal(b.Starting) {
		t.Errorf("sold+contracted+open = %s, want %s", sum, b.Starting)
	}
}

func TestReconcile_Oversold(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{Years: []date.CropYear{2024}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	b := findBucket(t, report, 2024, "Soybeans")

	if !b.Oversold {
		t.Fatal("Oversold = false, want true: 6000 bu committed against 5000 bu starting")
	}
	if !b.OpenBushels.IsZero() {
		t.Errorf("OpenBushels = %s, want 0 when oversold", b.OpenBushels)
	}
	// Sold and contracted report what actually happened; they are never
	// rescaled to fit the starting figure.
	if !b.SoldBushels.Equal(Q(3000)) {
		t.Errorf("SoldBushels = %s, want 3000", b.SoldBushels)
	}
	if !b.ContractedBushels.Equal(Q(3000)) {
		t.Errorf("ContractedBushels = %s, want 3000", b.ContractedBushels)
	}
	if !hasNotice(report.Notices, Oversold) {
		t.Error("want an oversold notice in the report")
	}
}

func TestReconcile_NoStartingData(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{Years: []date.CropYear{2024}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	b := findBucket(t, report, 2024, "Wheat")

	if !b.NoStartingData {
		t.Error("NoStartingData = false, want true")
	}
	if !b.Starting.IsZero() {
		t.Errorf("Starting = %s, want 0", b.Starting)
	}
	if !b.SoldBushels.Equal(Q(500)) {
		t.Errorf("SoldBushels = %s, want 500", b.SoldBushels)
	}
	// Gross fallback: S-3 has no net amount.
	if !b.SoldRevenue.Equal(Dollars(3100)) {
		t.Errorf("SoldRevenue = %s, want $3,100.00", b.SoldRevenue)
	}
	// 500 sold against zero starting also means oversold with open zero.
	if !b.Oversold || !b.OpenBushels.IsZero() {
		t.Errorf("oversold:%v open:%s, want oversold with open 0", b.Oversold, b.OpenBushels)
	}
	if !hasNotice(report.Notices, NoStartingData) {
		t.Error("want a no-starting-data notice in the report")
	}
	if !hasNotice(report.Notices, UnmappedCommodity) {
		t.Error("want an unmapped-commodity notice for the Wheat label")
	}
}

func TestReconcile_CancelledContractExcluded(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{Years: []date.CropYear{2024}, Commodities: []string{"Corn"}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	b := findBucket(t, report, 2024, "Corn")
	// Only C-2's 4000 bu remain contracted; cancelled C-4 is invisible.
	if !b.ContractedBushels.Equal(Q(4000)) {
		t.Errorf("ContractedBushels = %s, want 4000 with cancelled contract excluded", b.ContractedBushels)
	}
}

func TestReconcile_CommodityFilter(t *testing.T) {
	d := sampleDataset()
	// The filter accepts raw spellings too.
	report, err := d.Reconcile(ReportOptions{Commodities: []string{"yellow corn"}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(report.Buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(report.Buckets))
	}
	if got := report.Buckets[0].Commodity; got != "Corn" {
		t.Errorf("Commodity = %q, want %q", got, "Corn")
	}
}

func TestReconcile_RequestedYearZeroFilled(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{Years: []date.CropYear{2030}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	// No activity in 2030, but the year was asked for: zero-filled rows
	// for the dataset's known commodities.
	if len(report.Buckets) == 0 {
		t.Fatal("got no buckets for an explicitly requested year")
	}
	for _, b := range report.Buckets {
		if b.Year != 2030 {
			t.Errorf("bucket year = %s, want 2030", b.Year)
		}
		if !b.SoldBushels.IsZero() || !b.ContractedBushels.IsZero() {
			t.Errorf("%s: sold %s contracted %s, want all zero", b.Commodity, b.SoldBushels, b.ContractedBushels)
		}
	}
}

func TestReconcile_YearsDiscovered(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	// Every activity in the sample falls in crop year 2024.
	for _, b := range report.Buckets {
		if b.Year != 2024 {
			t.Errorf("bucket year = %s, want 2024", b.Year)
		}
	}
	if len(report.Buckets) != 3 {
		t.Errorf("got %d buckets, want 3 (Corn, Soybeans, Wheat)", len(report.Buckets))
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	d := sampleDataset()
	opts := ReportOptions{Years: []date.CropYear{2024}}

	first, err := d.Reconcile(opts)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	second, err := d.Reconcile(opts)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(first.Buckets) != len(second.Buckets) {
		t.Fatalf("bucket count changed between runs: %d then %d", len(first.Buckets), len(second.Buckets))
	}
	for i := range first.Buckets {
		a, b := first.Buckets[i], second.Buckets[i]
		if a.Year != b.Year || a.Commodity != b.Commodity || !a.SoldBushels.Equal(b.SoldBushels) ||
			!a.ContractedBushels.Equal(b.ContractedBushels) || !a.OpenBushels.Equal(b.OpenBushels) {
			t.Errorf("bucket %d differs between identical runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestReportOptions_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    ReportOptions
		wantErr bool
	}{
		{name: "empty options", opts: ReportOptions{}},
		{name: "valid year", opts: ReportOptions{Years: []date.CropYear{2024}}},
		{name: "implausible year", opts: ReportOptions{Years: []date.CropYear{12}}, wantErr: true},
		{
			name:    "negative open price",
			opts:    ReportOptions{OpenPrices: []OpenPrice{{Commodity: "Corn", Price: Dollars(-1)}}},
			wantErr: true,
		},
		{
			name:    "open price with implausible year",
			opts:    ReportOptions{OpenPrices: []OpenPrice{{Commodity: "Corn", Year: 3, Price: Dollars(4)}}},
			wantErr: true,
		},
		{
			name: "open price pinned to a valid year",
			opts: ReportOptions{OpenPrices: []OpenPrice{{Commodity: "Corn", Year: 2024, Price: Dollars(4)}}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestReconcile_OpenPricePrecedence(t *testing.T) {
	d := sampleDataset()
	report, err := d.Reconcile(ReportOptions{
		Years: []date.CropYear{2024},
		OpenPrices: []OpenPrice{
			{Commodity: "Corn", Price: Dollars(4.00)},             // any year
			{Commodity: "Corn", Year: 2024, Price: Dollars(4.25)}, // pinned, wins
		},
	})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	b := findBucket(t, report, 2024, "Corn")
	// 3000 open bushels at the year-specific $4.25.
	if !b.OpenRevenue.Equal(Dollars(12750)) {
		t.Errorf("OpenRevenue = %s, want $12,750.00", b.OpenRevenue)
	}
}

func TestSettlementRevenue(t *testing.T) {
	testCases := []struct {
		name string
		s    SettlementDetail
		want Money
	}{
		{
			name: "net wins",
			s:    SettlementDetail{Bushels: Q(100), Price: Dollars(5), Gross: Dollars(520), Net: Dollars(495)},
			want: Dollars(495),
		},
		{
			name: "gross when net absent",
			s:    SettlementDetail{Bushels: Q(100), Price: Dollars(5), Gross: Dollars(520)},
			want: Dollars(520),
		},
		{
			name: "bushels times price when both absent",
			s:    SettlementDetail{Bushels: Q(100), Price: Dollars(5)},
			want: Dollars(500),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Revenue(); !got.Equal(tc.want) {
				t.Errorf("Revenue() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestReconcile_ExcludedRecordNotices(t *testing.T) {
	records := append(sampleRecords(),
		Contract{Number: "C-9", Commodity: "Corn", Bushels: Q(1000), Price: Dollars(4)}, // no delivery start
		SettlementDetail{ID: "S-9", Bushels: Q(100), Price: Dollars(5),
			Delivered: date.New(2025, time.February, 1), Status: SettlementHeader}, // no commodity
	)
	d := NewDataset(records...)

	report, err := d.Reconcile(ReportOptions{Years: []date.CropYear{2024}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if !hasNotice(report.Notices, ExcludedRecord) {
		t.Error("want excluded-record notices for the dateless contract and blank-commodity settlement")
	}
}
