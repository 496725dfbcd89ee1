package folio

import "testing"

func TestTransactionAmount(t *testing.T) {
	trade := NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(0, "USD"), day(1), "")
	if !trade.Amount().Equal(M(1000, "USD")) {
		t.Errorf("trade amount = %s, want $1,000.00", trade.Amount())
	}

	cash := NewDeposit("ira", M(500, "USD"), day(1), "")
	if !cash.Amount().Equal(M(500, "USD")) {
		t.Errorf("cash amount = %s, want $500.00", cash.Amount())
	}
}

func TestTransactionIsCash(t *testing.T) {
	cases := []struct {
		tx   Transaction
		want bool
	}{
		{NewDeposit("ira", M(1, "USD"), day(1), ""), true},
		{NewWithdrawal("ira", M(1, "USD"), day(1), ""), true},
		{NewMarginInterest("ira", M(1, "USD"), day(1)), true},
		{NewBuy("ira", "AAPL", Q(1), M(1, "USD"), M(0, "USD"), day(1), ""), false},
		{NewDividend("ira", "AAPL", M(1, "USD"), day(1), ""), false},
	}
	for _, tc := range cases {
		if got := tc.tx.IsCash(); got != tc.want {
			t.Errorf("%s IsCash = %v, want %v", tc.tx.Type, got, tc.want)
		}
	}
}

func TestNewTransactionsGetIDs(t *testing.T) {
	a := NewBuy("ira", "AAPL", Q(1), M(1, "USD"), M(0, "USD"), day(1), "")
	b := NewBuy("ira", "AAPL", Q(1), M(1, "USD"), M(0, "USD"), day(1), "")
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("constructors must assign distinct ids, got %q and %q", a.ID, b.ID)
	}
}

func TestHoldingDerivedValues(t *testing.T) {
	h := Holding{
		Position:      Position{Symbol: "AAPL", Quantity: Q(10), AvgCost: M(100, "USD")},
		Price:         110,
		PreviousClose: 108,
	}
	if h.Value() != 1100 {
		t.Errorf("value = %f, want 1100", h.Value())
	}
	if h.DayChange() != 20 {
		t.Errorf("day change = %f, want 20", h.DayChange())
	}
	if !h.GainPercent().Equal(10) {
		t.Errorf("gain = %s, want 10.00%%", h.GainPercent())
	}

	unquoted := Holding{Position: Position{Quantity: Q(10)}}
	if unquoted.Value() != 0 || unquoted.DayChange() != 0 || unquoted.GainPercent() != 0 {
		t.Error("a holding without market data must derive zeroes")
	}
}
