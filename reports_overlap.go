package folio

import "sort"

// AccountHoldings groups the enriched holdings of one account for overlap
// analysis.
type AccountHoldings struct {
	Account  string
	Holdings []Holding
}

// OverlapRow reports one symbol held in two or more accounts, with the
// combined quantity and market value across them.
type OverlapRow struct {
	Symbol   string
	Accounts []string
	Quantity float64
	Value    float64
}

// Overlaps finds the symbols held in at least two accounts. Rows are
// sorted by descending combined value; equal values keep the order in
// which the symbol was first encountered.
func Overlaps(accounts []AccountHoldings) []OverlapRow {
	type agg struct {
		accounts []string
		quantity float64
		value    float64
	}
	bySymbol := make(map[string]*agg)
	var order []string

	for _, acct := range accounts {
		for _, h := range acct.Holdings {
			a, ok := bySymbol[h.Symbol]
			if !ok {
				a = &agg{}
				bySymbol[h.Symbol] = a
				order = append(order, h.Symbol)
			}
			a.accounts = append(a.accounts, acct.Account)
			a.quantity += h.Quantity.AsFloat()
			a.value += h.Value()
		}
	}

	var rows []OverlapRow
	for _, symbol := range order {
		a := bySymbol[symbol]
		if len(a.accounts) < 2 {
			continue
		}
		rows = append(rows, OverlapRow{
			Symbol:   symbol,
			Accounts: a.accounts,
			Quantity: a.quantity,
			Value:    a.value,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}
