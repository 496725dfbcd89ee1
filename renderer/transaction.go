package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/venn/folio"
)

// Transactions renders a transaction list to a markdown table.
func Transactions(txs []folio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Account", "Symbol", "Quantity", "Amount"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Time.Format("2006-01-02"),
			string(tx.Type),
			tx.Account,
			tx.Symbol,
			tx.Quantity.String(),
			tx.Amount().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
