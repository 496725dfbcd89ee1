package folio

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of a ledger entry.
type TxType string

const (
	TxBuy              TxType = "buy"
	TxSell             TxType = "sell"
	TxDividend         TxType = "dividend"
	TxSplit            TxType = "split"
	TxTransferIn       TxType = "transfer_in"
	TxTransferOut      TxType = "transfer_out"
	TxDeposit          TxType = "deposit"
	TxWithdrawal       TxType = "withdrawal"
	TxMarginInterest   TxType = "margin_interest"
	TxOptionExercise   TxType = "option_exercise"
	TxOptionAssignment TxType = "option_assignment"
	TxOptionExpiration TxType = "option_expiration"
)

// Transaction is a single immutable ledger entry. The ledger is the sole
// source of truth: positions and cash balances are always derived from it,
// never stored.
type Transaction struct {
	ID       string
	Account  string
	Symbol   string // empty for pure cash entries
	Type     TxType
	Quantity Quantity
	Price    Money // per unit for trades, full amount for cash entries
	Fees     Money
	Time     time.Time
	Note     string

	// Split ratio, used only by TxSplit. A 2-for-1 split is Num=2, Den=1.
	Num int64
	Den int64
}

// Amount returns the gross value of the entry, excluding fees.
// For trades it is quantity times unit price, for cash entries the price
// field carries the full amount.
func (t Transaction) Amount() Money {
	if t.Quantity.IsZero() {
		return t.Price
	}
	return t.Price.Mul(t.Quantity)
}

// IsCash reports whether the entry touches a cash balance instead of a position.
func (t Transaction) IsCash() bool {
	switch t.Type {
	case TxDeposit, TxWithdrawal, TxMarginInterest:
		return true
	}
	return false
}

// isAcquisition reports whether the entry increases a position.
func (t Transaction) isAcquisition() bool {
	return t.Type == TxBuy || t.Type == TxTransferIn
}

// isDisposal reports whether the entry decreases a position. Option
// lifecycle events close out the synthetic option symbol; they are never
// unwound into the underlying security.
func (t Transaction) isDisposal() bool {
	switch t.Type {
	case TxSell, TxTransferOut, TxOptionExercise, TxOptionAssignment, TxOptionExpiration:
		return true
	}
	return false
}

func newTx(typ TxType, account, symbol string, at time.Time, note string) Transaction {
	return Transaction{
		ID:      uuid.NewString(),
		Account: account,
		Symbol:  symbol,
		Type:    typ,
		Time:    at,
		Note:    note,
	}
}

// NewBuy creates a buy of quantity units at a unit price, plus fees.
func NewBuy(account, symbol string, quantity Quantity, price, fees Money, at time.Time, note string) Transaction {
	t := newTx(TxBuy, account, symbol, at, note)
	t.Quantity, t.Price, t.Fees = quantity, price, fees
	return t
}

// NewSell creates a sale of quantity units at a unit price, minus fees.
func NewSell(account, symbol string, quantity Quantity, price, fees Money, at time.Time, note string) Transaction {
	t := newTx(TxSell, account, symbol, at, note)
	t.Quantity, t.Price, t.Fees = quantity, price, fees
	return t
}

// NewDividend records a cash dividend received for a held symbol.
func NewDividend(account, symbol string, amount Money, at time.Time, note string) Transaction {
	t := newTx(TxDividend, account, symbol, at, note)
	t.Price = amount
	return t
}

// NewSplit records a num-for-den share split of a symbol.
func NewSplit(account, symbol string, num, den int64, at time.Time) Transaction {
	t := newTx(TxSplit, account, symbol, at, "")
	t.Num, t.Den = num, den
	return t
}

// NewTransferIn records shares moved into the account from elsewhere. The
// price is the carried-over unit cost basis.
func NewTransferIn(account, symbol string, quantity Quantity, price Money, at time.Time, note string) Transaction {
	t := newTx(TxTransferIn, account, symbol, at, note)
	t.Quantity, t.Price = quantity, price
	return t
}

// NewTransferOut records shares moved out of the account.
func NewTransferOut(account, symbol string, quantity Quantity, at time.Time, note string) Transaction {
	t := newTx(TxTransferOut, account, symbol, at, note)
	t.Quantity = quantity
	return t
}

// NewDeposit records external cash entering the account.
func NewDeposit(account string, amount Money, at time.Time, note string) Transaction {
	t := newTx(TxDeposit, account, "", at, note)
	t.Price = amount
	return t
}

// NewWithdrawal records external cash leaving the account.
func NewWithdrawal(account string, amount Money, at time.Time, note string) Transaction {
	t := newTx(TxWithdrawal, account, "", at, note)
	t.Price = amount
	return t
}

// NewMarginInterest records interest charged on borrowed funds.
func NewMarginInterest(account string, amount Money, at time.Time) Transaction {
	t := newTx(TxMarginInterest, account, "", at, "")
	t.Price = amount
	return t
}

// NewOptionEvent records an exercise, assignment or expiration against a
// synthetic option symbol. typ must be one of the three option TxTypes.
func NewOptionEvent(typ TxType, account, optionSymbol string, quantity Quantity, at time.Time, note string) Transaction {
	t := newTx(typ, account, optionSymbol, at, note)
	t.Quantity = quantity
	return t
}

// txWire is the JSONL shape of a transaction. Amounts and currency are
// separate fields so the file stays diffable and hand-editable.
type txWire struct {
	ID       string          `json:"id,omitempty"`
	Account  string          `json:"account"`
	Symbol   string          `json:"symbol,omitempty"`
	Type     TxType          `json:"type"`
	Quantity Quantity        `json:"quantity,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
	Fees     decimal.Decimal `json:"fees,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Time     time.Time       `json:"time"`
	Note     string          `json:"note,omitempty"`
	Num      int64           `json:"num,omitempty"`
	Den      int64           `json:"den,omitempty"`
}

// MarshalJSON implements json.Marshaler for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(txWire{
		ID:       t.ID,
		Account:  t.Account,
		Symbol:   t.Symbol,
		Type:     t.Type,
		Quantity: t.Quantity,
		Price:    t.Price.value,
		Fees:     t.Fees.value,
		Currency: t.Price.Currency(),
		Time:     t.Time,
		Note:     t.Note,
		Num:      t.Num,
		Den:      t.Den,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w txWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Transaction{
		ID:       w.ID,
		Account:  w.Account,
		Symbol:   w.Symbol,
		Type:     w.Type,
		Quantity: w.Quantity,
		Price:    M(w.Price, w.Currency),
		Fees:     M(w.Fees, w.Currency),
		Time:     w.Time,
		Note:     w.Note,
		Num:      w.Num,
		Den:      w.Den,
	}
	return nil
}
