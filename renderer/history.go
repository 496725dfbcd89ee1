package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/venn/folio"
)

// HistoryMarkdown renders a combined value series to a markdown table.
func HistoryMarkdown(points []folio.Point, r folio.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio value over %s", r))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Label,
			fmt.Sprintf("%.2f", p.Price),
		})
	}
	doc.Table(table)

	return doc.String()
}
