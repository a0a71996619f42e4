package renderer

import (
	"bytes"
	"fmt"

	"github.com/harrowfield/bushel"
	md "github.com/nao1215/markdown"
)

// DeliveriesMarkdown renders the monthly deliveries breakdown of one crop
// year as markdown, one table per commodity, months running October
// through September.
func DeliveriesMarkdown(r *bushel.MonthlyDeliveries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Deliveries, Crop Year %s", r.Year))
	doc.PlainText(fmt.Sprintf("From %s.", r.Year.Range()))

	if len(r.Commodities) == 0 {
		doc.PlainText("No settled deliveries in this crop year.")
	}

	for _, cd := range r.Commodities {
		doc.H2(cd.Commodity)
		table := md.TableSet{
			Header: []string{"Month", "Bushels", "Revenue"},
		}
		for i, cell := range cd.Months {
			if cell.Bushels.IsZero() {
				continue
			}
			table.Rows = append(table.Rows, []string{
				bushel.MonthLabel(i), qty(cell.Bushels), amount(cell.Revenue),
			})
		}
		table.Rows = append(table.Rows, []string{"Total", qty(cd.Total.Bushels), amount(cd.Total.Revenue)})
		doc.Table(table)
	}

	appendNotices(doc, r.Notices)
	return doc.String()
}
