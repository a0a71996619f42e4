package renderer

import (
	"bytes"
	"sort"
	"strings"

	"github.com/harrowfield/bushel"
	md "github.com/nao1215/markdown"
)

// CommoditiesMarkdown renders the dataset's commodities with their alias
// coverage: every standard name found in the data and the raw spellings
// that map to it.
func CommoditiesMarkdown(d *bushel.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Commodities")

	commodities := d.Commodities()
	if len(commodities) == 0 {
		doc.PlainText("The dataset holds no commodities.")
		return doc.String()
	}

	norm := d.Normalizer()
	table := md.TableSet{Header: []string{"Commodity", "Aliases"}}
	for _, std := range commodities {
		aliases := norm.AliasesOf(std)
		sort.Strings(aliases)
		table.Rows = append(table.Rows, []string{std, strings.Join(aliases, ", ")})
	}
	doc.Table(table)

	return doc.String()
}
