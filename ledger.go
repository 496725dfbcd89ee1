package folio

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the
// chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// stableSort sorts the ledger by transaction time. The sort is stable, meaning
// transactions at the same instant maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
}

// Transactions returns an iterator that yields each transaction in
// chronological order. With filters, a transaction is yielded when any
// filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters transactions by asset symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Symbol == symbol }
}

// ByAccount returns a predicate that filters transactions by account.
func ByAccount(account string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Account == account }
}

// ByType returns a predicate that filters transactions by type.
func ByType(typ TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// All composes predicates so that a transaction is accepted only when
// every one of them accepts it. With no predicates it accepts everything.
func All(filters ...func(Transaction) bool) func(Transaction) bool {
	return func(tx Transaction) bool {
		for _, filter := range filters {
			if !filter(tx) {
				return false
			}
		}
		return true
	}
}

// OldestTransactionTime returns the time of the earliest transaction,
// or the zero time if the ledger is empty.
func (l *Ledger) OldestTransactionTime() time.Time {
	if len(l.transactions) == 0 {
		return time.Time{}
	}
	return l.transactions[0].Time
}

// NewestTransactionTime returns the time of the latest transaction,
// or the zero time if the ledger is empty.
func (l *Ledger) NewestTransactionTime() time.Time {
	if len(l.transactions) == 0 {
		return time.Time{}
	}
	return l.transactions[len(l.transactions)-1].Time
}

// Accounts returns an iterator over all distinct account ids, sorted.
func (l *Ledger) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			seen[tx.Account] = struct{}{}
		}
		accounts := slices.Collect(maps.Keys(seen))
		slices.Sort(accounts)
		for _, a := range accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Symbols returns an iterator over all distinct asset symbols, sorted.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			if tx.Symbol != "" {
				seen[tx.Symbol] = struct{}{}
			}
		}
		symbols := slices.Collect(maps.Keys(seen))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// PositionSize computes the quantity of symbol held in account on or
// before a given time, applying splits as they occur.
func (l *Ledger) PositionSize(account, symbol string, at time.Time) Quantity {
	var position Quantity
	for _, tx := range l.transactions {
		if tx.Time.After(at) {
			// The ledger is sorted, so it's safe to break.
			break
		}
		if tx.Account != account || tx.Symbol != symbol {
			continue
		}
		switch {
		case tx.isAcquisition():
			position = position.Add(tx.Quantity)
		case tx.isDisposal():
			position = position.Sub(tx.Quantity)
		case tx.Type == TxSplit && tx.Num > 0 && tx.Den > 0:
			position = position.Mul(Q(tx.Num)).Div(Q(tx.Den))
		}
	}
	return position
}

// CashAt computes the cash balance of an account on or before a given time.
func (l *Ledger) CashAt(account string, at time.Time) Money {
	var balance Money
	for _, tx := range l.transactions {
		if tx.Time.After(at) {
			break
		}
		if tx.Account != account || !tx.IsCash() {
			continue
		}
		switch tx.Type {
		case TxDeposit:
			balance = balance.Add(tx.Amount()).Sub(tx.Fees)
		case TxWithdrawal, TxMarginInterest:
			balance = balance.Sub(tx.Amount()).Sub(tx.Fees)
		}
	}
	return balance
}

// Validate checks a transaction for correctness before it enters the
// ledger, and applies quick fixes where applicable (missing id, missing
// time). It returns the validated (and potentially modified) transaction
// or an error detailing the failure.
//
// Validation is the reject-at-write policy; callers that skip it still get
// the clamp-and-flag behavior of AggregatePositions at read time.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	if tx.Account == "" {
		return tx, errors.New("transaction account is missing")
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Time.IsZero() {
		tx.Time = time.Now()
	}
	if tx.Fees.IsNegative() {
		return tx, fmt.Errorf("fees must not be negative, got %s", tx.Fees)
	}

	switch tx.Type {
	case TxBuy, TxTransferIn:
		if !tx.Quantity.IsPositive() {
			return tx, fmt.Errorf("%s quantity must be positive, got %s", tx.Type, tx.Quantity)
		}
		if tx.Price.IsNegative() {
			return tx, fmt.Errorf("%s price must not be negative, got %s", tx.Type, tx.Price)
		}
		if tx.Symbol == "" {
			return tx, fmt.Errorf("%s requires a symbol", tx.Type)
		}
	case TxSell, TxTransferOut:
		if tx.Symbol == "" {
			return tx, fmt.Errorf("%s requires a symbol", tx.Type)
		}
		pos := l.PositionSize(tx.Account, tx.Symbol, tx.Time)
		if tx.Quantity.IsZero() {
			// quick fix, sell the whole position.
			tx.Quantity = pos
		}
		if !tx.Quantity.IsPositive() {
			return tx, fmt.Errorf("%s quantity must be positive, got %s", tx.Type, tx.Quantity)
		}
		if pos.LessThan(tx.Quantity) {
			return tx, fmt.Errorf("on %s, cannot dispose %s of %s, position is only %s",
				tx.Time.Format(time.RFC3339), tx.Quantity, tx.Symbol, pos)
		}
	case TxDividend:
		if tx.Symbol == "" {
			return tx, errors.New("dividend requires a symbol")
		}
		if !tx.Amount().IsPositive() {
			return tx, fmt.Errorf("dividend amount must be positive, got %s", tx.Amount())
		}
	case TxSplit:
		if tx.Symbol == "" {
			return tx, errors.New("split requires a symbol")
		}
		if tx.Num <= 0 || tx.Den <= 0 {
			return tx, fmt.Errorf("split ratio must be positive, got %d/%d", tx.Num, tx.Den)
		}
	case TxDeposit:
		if !tx.Amount().IsPositive() {
			return tx, fmt.Errorf("deposit amount must be positive, got %s", tx.Amount())
		}
	case TxWithdrawal:
		if !tx.Amount().IsPositive() {
			return tx, fmt.Errorf("withdrawal amount must be positive, got %s", tx.Amount())
		}
		cash := l.CashAt(tx.Account, tx.Time)
		if cash.LessThan(tx.Amount()) {
			return tx, fmt.Errorf("on %s, cannot withdraw %s, cash balance is %s",
				tx.Time.Format(time.RFC3339), tx.Amount(), cash)
		}
	case TxMarginInterest:
		if !tx.Amount().IsPositive() {
			return tx, fmt.Errorf("margin interest amount must be positive, got %s", tx.Amount())
		}
	case TxOptionExercise, TxOptionAssignment, TxOptionExpiration:
		if tx.Symbol == "" {
			return tx, fmt.Errorf("%s requires an option symbol", tx.Type)
		}
		if !tx.Quantity.IsPositive() {
			return tx, fmt.Errorf("%s quantity must be positive, got %s", tx.Type, tx.Quantity)
		}
	default:
		return tx, fmt.Errorf("unsupported transaction type %q", tx.Type)
	}
	return tx, nil
}
