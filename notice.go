package bushel

import "fmt"

// NoticeKind classifies the non-fatal data-quality findings an aggregation
// reports alongside its results.
type NoticeKind int

const (
	// UnmappedCommodity: a raw label had no alias mapping and was grouped
	// under its literal spelling.
	UnmappedCommodity NoticeKind = iota
	// NoStartingData: a bucket had neither a CropTotal nor harvest records
	// to derive starting bushels from.
	NoStartingData
	// Oversold: committed bushels exceed recorded starting bushels for a
	// bucket; open was clamped to zero.
	Oversold
	// ExcludedRecord: a record was left out of the aggregation, e.g. for a
	// missing date or a blank commodity.
	ExcludedRecord
)

func (k NoticeKind) String() string {
	switch k {
	case UnmappedCommodity:
		return "unmapped-commodity"
	case NoStartingData:
		return "no-starting-data"
	case Oversold:
		return "oversold"
	case ExcludedRecord:
		return "excluded-record"
	default:
		return "unknown"
	}
}

// Notice is a single non-fatal data-quality finding. Notices never abort a
// report; the caller may surface them to the user inline.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n Notice) String() string { return fmt.Sprintf("%s: %s", n.Kind, n.Message) }

// notices collects findings during an aggregation, de-duplicating exact
// repeats so one unmapped label noticed on a thousand rows reports once.
type notices struct {
	list []Notice
	seen map[Notice]bool
}

func (ns *notices) add(kind NoticeKind, format string, args ...any) {
	n := Notice{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if ns.seen == nil {
		ns.seen = make(map[Notice]bool)
	}
	if ns.seen[n] {
		return
	}
	ns.seen[n] = true
	ns.list = append(ns.list, n)
}
