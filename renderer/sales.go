package renderer

import (
	"bytes"
	"fmt"

	"github.com/harrowfield/bushel"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the crop-year sales reconciliation as markdown.
func SalesMarkdown(r *bushel.SalesReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Crop Year Sales")

	if len(r.Buckets) == 0 {
		doc.PlainText("No contract or settlement activity to report.")
	} else {
		table := md.TableSet{
			Header: []string{"Crop Year", "Commodity", "Starting bu", "Sold bu", "Sold $", "Contracted bu", "Contracted $", "Open bu", "Open $", "Flags"},
		}
		for _, b := range r.Buckets {
			table.Rows = append(table.Rows, []string{
				b.Year.String(),
				b.Commodity,
				qty(b.Starting),
				qty(b.SoldBushels),
				amount(b.SoldRevenue),
				qty(b.ContractedBushels),
				amount(b.ContractedRevenue),
				qty(b.OpenBushels),
				amount(b.OpenRevenue),
				flags(b),
			})
		}
		doc.Table(table)
	}

	appendNotices(doc, r.Notices)
	return doc.String()
}

// appendNotices renders the non-fatal findings below a report.
func appendNotices(doc *md.Markdown, notices []bushel.Notice) {
	if len(notices) == 0 {
		return
	}
	doc.H2(fmt.Sprintf("Notices (%d)", len(notices)))
	items := make([]string, 0, len(notices))
	for _, n := range notices {
		items = append(items, n.String())
	}
	doc.BulletList(items...)
}
