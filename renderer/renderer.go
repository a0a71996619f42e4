// Package renderer turns engine reports into markdown for terminals,
// files, and the assistant.
package renderer

import (
	"github.com/harrowfield/bushel"
)

// qty formats a bushel quantity for a table cell.
func qty(q bushel.Quantity) string { return q.String() }

// amount formats a monetary value for a table cell.
func amount(m bushel.Money) string { return m.String() }

// flags renders the bucket's diagnostic flags for the last table column.
func flags(b bushel.CropYearBucket) string {
	switch {
	case b.Oversold && b.NoStartingData:
		return "oversold, no starting data"
	case b.Oversold:
		return "oversold"
	case b.NoStartingData:
		return "no starting data"
	default:
		return ""
	}
}
