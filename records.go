package bushel

import "github.com/harrowfield/bushel/date"

// RecordType is a typed string identifying dataset record kinds in their
// persisted form.
type RecordType string

// Record types used for identifying dataset records.
const (
	RecContract   RecordType = "contract"
	RecSettlement RecordType = "settlement"
	RecHarvest    RecordType = "harvest"
	RecCropTotal  RecordType = "crop-total"
	RecAlias      RecordType = "alias"
)

// Record is the common interface for all records a query layer can hand to
// the engine. Records are read-only snapshots; the engine never mutates them.
type Record interface {
	What() RecordType // What returns the record type (e.g., "contract").
}

// ContractStatus is the lifecycle status of a contract in the upstream
// contracting system.
type ContractStatus string

const (
	ContractActive    ContractStatus = "Active"
	ContractCompleted ContractStatus = "Completed"
	ContractCancelled ContractStatus = "Cancelled"
)

// FillStatus describes how much of a contract has been delivered against.
type FillStatus string

const (
	FillNone    FillStatus = "None"
	FillPartial FillStatus = "Partial"
	FillFilled  FillStatus = "Filled"
	FillOver    FillStatus = "Over"
)

// Contract is a crop sale contract owned by the upstream contracting
// system. It is read-only here.
type Contract struct {
	Number        string    // unique contract number
	Commodity     string    // raw commodity label as the buyer printed it
	Bushels       Quantity  // contracted quantity
	Price         Money     // price per bushel
	Basis         Money     // basis component of the price, can be negative
	Buyer         string    // buyer name
	DateSold      date.Date // date the contract was signed
	DeliveryStart date.Date // first day of the delivery window
	DeliveryEnd   date.Date // last day of the delivery window
	Status        ContractStatus
	Fill          FillStatus
}

func (Contract) What() RecordType { return RecContract }

// SettlementStatus distinguishes header rows, which carry the sellable
// totals for a settlement sheet, from their component detail rows.
type SettlementStatus string

const (
	SettlementHeader    SettlementStatus = "Header"
	SettlementDetailRow SettlementStatus = "Detail"
)

// SettlementDetail is one row of a settlement sheet: bushels delivered
// against a contract and the price realized for them. A contract may have
// zero, one, or many settlement rows; partial fills accumulate.
//
// Gross and Net are the sheet's printed amounts; either may be absent, in
// which case it is the zero value and revenue falls back to bushels times
// price.
type SettlementDetail struct {
	ID        string    // settlement sheet identifier
	Contract  string    // contract number this settlement fills
	Commodity string    // raw commodity label
	Bushels   Quantity  // settled quantity
	Price     Money     // settled price per bushel
	Gross     Money     // gross amount printed on the sheet, zero if absent
	Net       Money     // net amount after deductions, zero if absent
	Delivered date.Date // delivery date of the settled grain
	Status    SettlementStatus
}

func (SettlementDetail) What() RecordType { return RecSettlement }

// Revenue returns the realized revenue of the settlement row, preferring
// the printed net amount, then the gross amount, then bushels times price.
func (s SettlementDetail) Revenue() Money {
	if !s.Net.IsZero() {
		return s.Net
	}
	if !s.Gross.IsZero() {
		return s.Gross
	}
	return s.Price.Mul(s.Bushels)
}

// HarvestActual is a field-level harvest record: bushels taken off one
// field, dated so it can be bucketed into a crop year.
type HarvestActual struct {
	Field     string    // field or bin identifier
	Commodity string    // raw commodity label
	Bushels   Quantity  // harvested quantity
	Harvested date.Date // harvest date
	Status    string    // Partial, Partials or Complete rows count; anything else is in-progress bookkeeping
}

func (HarvestActual) What() RecordType { return RecHarvest }

// CropTotalKind tags a CropTotal as a measured figure or an estimate.
type CropTotalKind string

const (
	TotalActual   CropTotalKind = "actual"
	TotalEstimate CropTotalKind = "estimate"
)

// CropTotal is a pre-recorded total production figure for a crop year and
// commodity, used when field-level harvest detail is unavailable.
type CropTotal struct {
	Year      date.CropYear
	Commodity string
	Bushels   Quantity
	Kind      CropTotalKind
}

func (CropTotal) What() RecordType { return RecCropTotal }

// CommodityAlias maps one raw commodity spelling to its standard name.
// Several aliases may map to the same standard name.
type CommodityAlias struct {
	Alias    string
	Standard string
}

func (CommodityAlias) What() RecordType { return RecAlias }
