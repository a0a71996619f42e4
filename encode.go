package bushel

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrowfield/bushel/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Wire structs. Quantities and amounts decode into decimals; dates stay
// strings so a malformed date degrades to a zero Date (and later a notice)
// instead of rejecting the whole record.

type contractRec struct {
	Record        RecordType      `json:"record"`
	Number        string          `json:"number"`
	Commodity     string          `json:"commodity,omitempty"`
	Bushels       decimal.Decimal `json:"bushels"`
	Price         decimal.Decimal `json:"price"`
	Basis         decimal.Decimal `json:"basis,omitempty"`
	Buyer         string          `json:"buyer,omitempty"`
	DateSold      string          `json:"dateSold,omitempty"`
	DeliveryStart string          `json:"deliveryStart,omitempty"`
	DeliveryEnd   string          `json:"deliveryEnd,omitempty"`
	Status        ContractStatus  `json:"status,omitempty"`
	Fill          FillStatus      `json:"fill,omitempty"`
}

type settlementRec struct {
	Record    RecordType       `json:"record"`
	ID        string           `json:"id"`
	Contract  string           `json:"contract,omitempty"`
	Commodity string           `json:"commodity,omitempty"`
	Bushels   decimal.Decimal  `json:"bushels"`
	Price     decimal.Decimal  `json:"price"`
	Gross     decimal.Decimal  `json:"gross,omitempty"`
	Net       decimal.Decimal  `json:"net,omitempty"`
	Delivered string           `json:"delivered,omitempty"`
	Status    SettlementStatus `json:"status,omitempty"`
}

type harvestRec struct {
	Record    RecordType      `json:"record"`
	Field     string          `json:"field,omitempty"`
	Commodity string          `json:"commodity,omitempty"`
	Bushels   decimal.Decimal `json:"bushels"`
	Harvested string          `json:"harvested,omitempty"`
	Status    string          `json:"status,omitempty"`
}

type cropTotalRec struct {
	Record    RecordType      `json:"record"`
	Year      date.CropYear   `json:"year"`
	Commodity string          `json:"commodity"`
	Bushels   decimal.Decimal `json:"bushels"`
	Kind      CropTotalKind   `json:"kind,omitempty"`
}

type aliasRec struct {
	Record   RecordType `json:"record"`
	Alias    string     `json:"alias"`
	Standard string     `json:"standard"`
}

// lenientDate parses a record date, yielding the zero Date when the field
// is empty or unparseable. The aggregation reports such records as
// excluded rather than failing the decode.
func lenientDate(s string) date.Date {
	if s == "" {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}

func dateString(d date.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// DecodeRecords decodes dataset records from a stream of JSONL data. Each
// line holds one record identified by its "record" field. A line that is
// not valid JSON or names an unknown record type fails the whole decode;
// that is a query-layer fault, not a data-quality notice.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		var rec Record
		var err error
		switch identifier.Record {
		case RecContract:
			var w contractRec
			if err = json.Unmarshal(lineBytes, &w); err == nil {
				rec = w.contract()
			}
		case RecSettlement:
			var w settlementRec
			if err = json.Unmarshal(lineBytes, &w); err == nil {
				rec = w.settlement()
			}
		case RecHarvest:
			var w harvestRec
			if err = json.Unmarshal(lineBytes, &w); err == nil {
				rec = w.harvest()
			}
		case RecCropTotal:
			var w cropTotalRec
			if err = json.Unmarshal(lineBytes, &w); err == nil {
				rec = w.cropTotal()
			}
		case RecAlias:
			var w aliasRec
			if err = json.Unmarshal(lineBytes, &w); err == nil {
				rec = CommodityAlias{Alias: w.Alias, Standard: w.Standard}
			}
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode %s record %q: %w", identifier.Record, string(lineBytes), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read records: %w", err)
	}
	return records, nil
}

// DecodeDataset decodes a full dataset from a stream of JSONL records.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	records, err := DecodeRecords(r)
	if err != nil {
		return nil, err
	}
	return NewDataset(records...), nil
}

func (w contractRec) contract() Contract {
	status := w.Status
	if status == "" {
		status = ContractActive
	}
	fill := w.Fill
	if fill == "" {
		fill = FillNone
	}
	return Contract{
		Number:        w.Number,
		Commodity:     w.Commodity,
		Bushels:       Q(w.Bushels),
		Price:         M(w.Price, USD),
		Basis:         M(w.Basis, USD),
		Buyer:         w.Buyer,
		DateSold:      lenientDate(w.DateSold),
		DeliveryStart: lenientDate(w.DeliveryStart),
		DeliveryEnd:   lenientDate(w.DeliveryEnd),
		Status:        status,
		Fill:          fill,
	}
}

func (w settlementRec) settlement() SettlementDetail {
	status := w.Status
	if status == "" {
		status = SettlementHeader
	}
	return SettlementDetail{
		ID:        w.ID,
		Contract:  w.Contract,
		Commodity: w.Commodity,
		Bushels:   Q(w.Bushels),
		Price:     M(w.Price, USD),
		Gross:     M(w.Gross, USD),
		Net:       M(w.Net, USD),
		Delivered: lenientDate(w.Delivered),
		Status:    status,
	}
}

func (w harvestRec) harvest() HarvestActual {
	return HarvestActual{
		Field:     w.Field,
		Commodity: w.Commodity,
		Bushels:   Q(w.Bushels),
		Harvested: lenientDate(w.Harvested),
		Status:    w.Status,
	}
}

func (w cropTotalRec) cropTotal() CropTotal {
	kind := w.Kind
	if kind == "" {
		kind = TotalActual
	}
	return CropTotal{
		Year:      w.Year,
		Commodity: w.Commodity,
		Bushels:   Q(w.Bushels),
		Kind:      kind,
	}
}

// EncodeRecords writes records in canonical JSONL form, one record per
// line, fields in a stable order.
func EncodeRecords(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		var wire any
		switch v := r.(type) {
		case Contract:
			wire = contractRec{
				Record: RecContract, Number: v.Number, Commodity: v.Commodity,
				Bushels: v.Bushels.value, Price: v.Price.value, Basis: v.Basis.value,
				Buyer: v.Buyer, DateSold: dateString(v.DateSold),
				DeliveryStart: dateString(v.DeliveryStart), DeliveryEnd: dateString(v.DeliveryEnd),
				Status: v.Status, Fill: v.Fill,
			}
		case SettlementDetail:
			wire = settlementRec{
				Record: RecSettlement, ID: v.ID, Contract: v.Contract, Commodity: v.Commodity,
				Bushels: v.Bushels.value, Price: v.Price.value,
				Gross: v.Gross.value, Net: v.Net.value,
				Delivered: dateString(v.Delivered), Status: v.Status,
			}
		case HarvestActual:
			wire = harvestRec{
				Record: RecHarvest, Field: v.Field, Commodity: v.Commodity,
				Bushels: v.Bushels.value, Harvested: dateString(v.Harvested), Status: v.Status,
			}
		case CropTotal:
			wire = cropTotalRec{
				Record: RecCropTotal, Year: v.Year, Commodity: v.Commodity,
				Bushels: v.Bushels.value, Kind: v.Kind,
			}
		case CommodityAlias:
			wire = aliasRec{Record: RecAlias, Alias: v.Alias, Standard: v.Standard}
		default:
			return fmt.Errorf("unknown record type %T", r)
		}
		if err := enc.Encode(wire); err != nil {
			return fmt.Errorf("could not encode record: %w", err)
		}
	}
	return nil
}

// EncodeDataset writes the whole dataset in canonical JSONL form.
func EncodeDataset(w io.Writer, d *Dataset) error {
	return EncodeRecords(w, d.Records())
}
