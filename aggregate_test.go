package folio

import (
	"strings"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 10, 0, 0, 0, time.UTC)
}

func TestAggregateAverageCostBasis(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(1, "USD"), day(1), ""),
		NewBuy("ira", "AAPL", Q(5), M(110, "USD"), M(0, "USD"), day(2), ""),
		NewSell("ira", "AAPL", Q(5), M(120, "USD"), M(0, "USD"), day(3), ""),
	}

	positions, _, flags := AggregatePositions(txs)
	if len(flags) != 0 {
		t.Fatalf("unexpected flags: %v", flags)
	}

	pos, ok := positions[Key{Account: "ira", Symbol: "AAPL"}]
	if !ok {
		t.Fatal("position ira/AAPL not found")
	}
	if !pos.Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", pos.Quantity)
	}
	// Cost after buys is 10*100+1 + 5*110 = 1551; selling 5 of 15 removes
	// a third of it, leaving 1034 over 10 units.
	if !pos.TotalCost.Equal(M(1034, "USD")) {
		t.Errorf("total cost = %s, want $1,034.00", pos.TotalCost)
	}
	if !pos.AvgCost.Equal(M(103.4, "USD")) {
		t.Errorf("avg cost = %s, want $103.40", pos.AvgCost)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(1, "USD"), day(1), ""),
		NewBuy("broker", "MSFT", Q(3), M(300, "USD"), M(0, "USD"), day(2), ""),
		NewSell("ira", "AAPL", Q(4), M(120, "USD"), M(0, "USD"), day(3), ""),
		NewDeposit("broker", M(500, "USD"), day(1), ""),
		NewSplit("broker", "MSFT", 3, 1, day(4)),
	}

	first, firstCash, _ := AggregatePositions(txs)
	second, secondCash, _ := AggregatePositions(txs)

	if len(first) != len(second) {
		t.Fatalf("position count differs between runs: %d vs %d", len(first), len(second))
	}
	for key, a := range first {
		b := second[key]
		if !a.Quantity.Equal(b.Quantity) || !a.TotalCost.Equal(b.TotalCost) || !a.AvgCost.Equal(b.AvgCost) {
			t.Errorf("position %v differs between runs: %+v vs %+v", key, a, b)
		}
	}
	for account, a := range firstCash {
		if !a.Balance.Equal(secondCash[account].Balance) {
			t.Errorf("cash %q differs between runs", account)
		}
	}
}

func TestAggregateFullSellRemovesPosition(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewSell("ira", "AAPL", Q(10), M(120, "USD"), M(0, "USD"), day(2), ""),
	}

	positions, _, flags := AggregatePositions(txs)
	if len(positions) != 0 {
		t.Errorf("expected no positions, got %v", positions)
	}
	if len(flags) != 0 {
		t.Errorf("unexpected flags: %v", flags)
	}
}

func TestAggregateOversellClampsAndFlags(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(5), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewSell("ira", "AAPL", Q(10), M(120, "USD"), M(0, "USD"), day(2), ""),
	}

	positions, _, flags := AggregatePositions(txs)
	if len(positions) != 0 {
		t.Errorf("expected clamp to empty the position, got %v", positions)
	}
	if len(flags) != 1 {
		t.Fatalf("expected 1 flag, got %v", flags)
	}
	if !strings.Contains(flags[0].Reason, "oversell") {
		t.Errorf("flag reason = %q, want an oversell mention", flags[0].Reason)
	}
}

func TestAggregateNegativeQuantityClampsAndFlags(t *testing.T) {
	tx := NewBuy("ira", "AAPL", Q(-5), M(100, "USD"), M(0, "USD"), day(1), "")

	positions, _, flags := AggregatePositions([]Transaction{tx})
	if len(positions) != 0 {
		t.Errorf("expected no positions, got %v", positions)
	}
	if len(flags) != 1 || !strings.Contains(flags[0].Reason, "negative quantity") {
		t.Errorf("expected a negative quantity flag, got %v", flags)
	}
}

func TestAggregateSplitRescalesQuantity(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewSplit("ira", "AAPL", 2, 1, day(2)),
	}

	positions, _, flags := AggregatePositions(txs)
	if len(flags) != 0 {
		t.Fatalf("unexpected flags: %v", flags)
	}
	pos := positions[Key{Account: "ira", Symbol: "AAPL"}]
	if !pos.Quantity.Equal(Q(20)) {
		t.Errorf("quantity after 2-for-1 split = %s, want 20", pos.Quantity)
	}
	if !pos.TotalCost.Equal(M(1000, "USD")) {
		t.Errorf("split must not change cost, got %s", pos.TotalCost)
	}
	if !pos.AvgCost.Equal(M(50, "USD")) {
		t.Errorf("avg cost after split = %s, want $50.00", pos.AvgCost)
	}
}

func TestAggregateInvalidSplitIgnoredAndFlagged(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewSplit("ira", "AAPL", 0, 1, day(2)),
	}

	positions, _, flags := AggregatePositions(txs)
	pos := positions[Key{Account: "ira", Symbol: "AAPL"}]
	if !pos.Quantity.Equal(Q(10)) {
		t.Errorf("invalid split must not change quantity, got %s", pos.Quantity)
	}
	if len(flags) != 1 || !strings.Contains(flags[0].Reason, "split ratio") {
		t.Errorf("expected a split ratio flag, got %v", flags)
	}
}

func TestAggregateCashBalances(t *testing.T) {
	txs := []Transaction{
		NewDeposit("broker", M(1000, "USD"), day(1), ""),
		NewWithdrawal("broker", M(200, "USD"), day(2), ""),
		NewMarginInterest("broker", M(10, "USD"), day(3)),
	}

	_, cash, flags := AggregatePositions(txs)
	if len(flags) != 0 {
		t.Fatalf("unexpected flags: %v", flags)
	}
	balance := cash["broker"].Balance
	if !balance.Equal(M(790, "USD")) {
		t.Errorf("cash balance = %s, want $790.00", balance)
	}
}

func TestAggregateOptionExpirationClosesPosition(t *testing.T) {
	txs := []Transaction{
		NewTransferIn("ira", "AAPL250117C00200000", Q(2), M(5, "USD"), day(1), ""),
		NewOptionEvent(TxOptionExpiration, "ira", "AAPL250117C00200000", Q(2), day(10), ""),
	}

	positions, _, flags := AggregatePositions(txs)
	if len(positions) != 0 {
		t.Errorf("expected the option position to be closed, got %v", positions)
	}
	if len(flags) != 0 {
		t.Errorf("unexpected flags: %v", flags)
	}
}

func TestAggregateDividendKeepsPosition(t *testing.T) {
	txs := []Transaction{
		NewBuy("ira", "AAPL", Q(10), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewDividend("ira", "AAPL", M(24, "USD"), day(2), ""),
	}

	positions, _, _ := AggregatePositions(txs)
	pos := positions[Key{Account: "ira", Symbol: "AAPL"}]
	if !pos.Quantity.Equal(Q(10)) || !pos.TotalCost.Equal(M(1000, "USD")) {
		t.Errorf("dividend must not change the position, got %+v", pos)
	}
}

func TestSortedPositionsOrder(t *testing.T) {
	txs := []Transaction{
		NewBuy("broker", "MSFT", Q(1), M(300, "USD"), M(0, "USD"), day(1), ""),
		NewBuy("ira", "AAPL", Q(1), M(100, "USD"), M(0, "USD"), day(1), ""),
		NewBuy("broker", "AAPL", Q(1), M(100, "USD"), M(0, "USD"), day(1), ""),
	}
	positions, _, _ := AggregatePositions(txs)

	sorted := SortedPositions(positions)
	want := []Key{
		{Account: "broker", Symbol: "AAPL"},
		{Account: "broker", Symbol: "MSFT"},
		{Account: "ira", Symbol: "AAPL"},
	}
	if len(sorted) != len(want) {
		t.Fatalf("got %d positions, want %d", len(sorted), len(want))
	}
	for i, w := range want {
		if sorted[i].Account != w.Account || sorted[i].Symbol != w.Symbol {
			t.Errorf("position %d = %s/%s, want %s/%s", i, sorted[i].Account, sorted[i].Symbol, w.Account, w.Symbol)
		}
	}
}
