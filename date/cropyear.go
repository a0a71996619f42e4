package date

import (
	"fmt"
	"strconv"
	"time"
)

// CropYear identifies a 12-month production and marketing period running
// October 1 through September 30, labeled by the year its October 1 falls in.
// Crop year 2025 is Oct 1, 2025 through Sep 30, 2026.
type CropYear int

// CropYearOf returns the crop year a date belongs to. Dates on October 1
// belong to the crop year starting that day; dates on September 30 belong
// to the crop year ending that day.
func CropYearOf(d Date) CropYear {
	if d.Month() >= time.October {
		return CropYear(d.Year())
	}
	return CropYear(d.Year() - 1)
}

// CurrentCropYear returns the crop year of today's date.
func CurrentCropYear() CropYear { return CropYearOf(Today()) }

// Start returns October 1 of the crop year.
func (y CropYear) Start() Date { return New(int(y), time.October, 1) }

// End returns September 30 of the following calendar year, the last day of
// the crop year.
func (y CropYear) End() Date { return New(int(y)+1, time.September, 30) }

// Range returns the inclusive date range of the crop year.
func (y CropYear) Range() Range { return Range{From: y.Start(), To: y.End()} }

// Contains reports whether the date falls inside the crop year. A zero date
// belongs to no crop year.
func (y CropYear) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return y.Range().Contains(d)
}

// Valid reports whether the label is a plausible calendar year.
func (y CropYear) Valid() bool { return y >= 1900 && y <= 2200 }

// String formats the crop year by its label year.
func (y CropYear) String() string { return strconv.Itoa(int(y)) }

// ParseCropYear parses a crop year label like "2025".
func ParseCropYear(s string) (CropYear, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid crop year %q: %w", s, err)
	}
	y := CropYear(n)
	if !y.Valid() {
		return 0, fmt.Errorf("crop year %d is not a plausible calendar year", n)
	}
	return y, nil
}
