package folio

import (
	"fmt"
	"maps"
	"slices"
)

// Key identifies one position: an asset held within one account.
type Key struct {
	Account string
	Symbol  string
}

// Position is the net holding of one asset within one account, derived
// from its transaction history. It is ephemeral: recomputed on every read
// and never stored.
//
// AvgCost is only meaningful while Quantity is positive.
type Position struct {
	Account   string
	Symbol    string
	Quantity  Quantity
	AvgCost   Money
	TotalCost Money
}

// CashBalance is the derived cash amount of one account. The balance is
// signed: margin debt shows up as a negative balance.
type CashBalance struct {
	Account string
	Balance Money
}

// Flag reports a data-quality condition found while aggregating. Flags are
// informational: the aggregation still succeeds with clamped values.
type Flag struct {
	Account string
	Symbol  string
	Reason  string
}

// AggregatePositions folds a chronological transaction list into current
// positions and per-account cash balances, in a single forward pass.
//
// The function is pure and idempotent: the same input list always produces
// the same output. Oversells and negative quantities are clamped and
// flagged rather than rejected (see Ledger.Validate for the write-time
// policy). Positions whose quantity ends at or near zero are excluded from
// the result. Splits rescale the running quantity; the total cost basis is
// unchanged. Option exercise, assignment and expiration close out the
// synthetic option symbol only, they are not unwound into the underlying.
func AggregatePositions(transactions []Transaction) (map[Key]Position, map[string]CashBalance, []Flag) {
	type running struct {
		quantity  Quantity
		totalCost Money
	}
	book := make(map[Key]*running)
	cash := make(map[string]CashBalance)
	var flags []Flag

	at := func(key Key) *running {
		r, ok := book[key]
		if !ok {
			r = &running{}
			book[key] = r
		}
		return r
	}

	for _, tx := range transactions {
		if tx.IsCash() {
			cb := cash[tx.Account]
			cb.Account = tx.Account
			switch tx.Type {
			case TxDeposit:
				cb.Balance = cb.Balance.Add(tx.Amount()).Sub(tx.Fees)
			case TxWithdrawal, TxMarginInterest:
				cb.Balance = cb.Balance.Sub(tx.Amount()).Sub(tx.Fees)
			}
			cash[tx.Account] = cb
			continue
		}

		key := Key{Account: tx.Account, Symbol: tx.Symbol}
		qty := tx.Quantity
		if qty.IsNegative() {
			// Should never happen: quantities are validated at write time.
			flags = append(flags, Flag{
				Account: tx.Account, Symbol: tx.Symbol,
				Reason: fmt.Sprintf("negative quantity %s clamped to 0", qty),
			})
			qty = Q(0)
		}

		switch {
		case tx.isAcquisition():
			r := at(key)
			r.totalCost = r.totalCost.Add(tx.Price.Mul(qty)).Add(tx.Fees)
			r.quantity = r.quantity.Add(qty)

		case tx.isDisposal():
			r := at(key)
			if qty.GreaterThan(r.quantity) {
				flags = append(flags, Flag{
					Account: tx.Account, Symbol: tx.Symbol,
					Reason: fmt.Sprintf("oversell: disposed %s but held %s, clamped", qty, r.quantity),
				})
				qty = r.quantity
			}
			if !r.quantity.IsZero() {
				// Reduce the cost proportionally, preserving the average.
				costOfSale := r.totalCost.Mul(qty).Div(r.quantity)
				r.totalCost = r.totalCost.Sub(costOfSale)
			}
			r.quantity = r.quantity.Sub(qty)

		case tx.Type == TxSplit:
			if tx.Num <= 0 || tx.Den <= 0 {
				flags = append(flags, Flag{
					Account: tx.Account, Symbol: tx.Symbol,
					Reason: fmt.Sprintf("split ratio %d/%d ignored", tx.Num, tx.Den),
				})
				continue
			}
			r := at(key)
			r.quantity = r.quantity.Mul(Q(tx.Num)).Div(Q(tx.Den))

		case tx.Type == TxDividend:
			// Recorded in the ledger but the aggregator holds no income
			// state; dividends are reported from the ledger directly.
		}
	}

	positions := make(map[Key]Position, len(book))
	for key, r := range book {
		if r.quantity.IsEmpty() {
			continue
		}
		totalCost := r.totalCost
		if totalCost.IsNegative() {
			totalCost = M(0, totalCost.Currency())
		}
		positions[key] = Position{
			Account:   key.Account,
			Symbol:    key.Symbol,
			Quantity:  r.quantity,
			AvgCost:   totalCost.Div(r.quantity),
			TotalCost: totalCost,
		}
	}
	return positions, cash, flags
}

// AggregatePositions folds the whole ledger into positions and cash
// balances. See the package-level AggregatePositions.
func (l *Ledger) AggregatePositions() (map[Key]Position, map[string]CashBalance, []Flag) {
	return AggregatePositions(l.transactions)
}

// SortedPositions returns the positions in deterministic account-then-symbol
// order, for rendering and tests.
func SortedPositions(positions map[Key]Position) []Position {
	keys := slices.SortedFunc(maps.Keys(positions), func(a, b Key) int {
		if a.Account != b.Account {
			if a.Account < b.Account {
				return -1
			}
			return 1
		}
		if a.Symbol < b.Symbol {
			return -1
		}
		if a.Symbol > b.Symbol {
			return 1
		}
		return 0
	})
	out := make([]Position, 0, len(keys))
	for _, k := range keys {
		out = append(out, positions[k])
	}
	return out
}
