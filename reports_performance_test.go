package folio

import (
	"math"
	"testing"
)

func perfHolding(symbol string, qty, price, prevClose, avgCost float64) Holding {
	return Holding{
		Position: Position{
			Account:   "ira",
			Symbol:    symbol,
			Quantity:  Q(qty),
			AvgCost:   M(avgCost, "USD"),
			TotalCost: M(avgCost*qty, "USD"),
		},
		Price:         price,
		PreviousClose: prevClose,
	}
}

func TestPerformanceDayChange(t *testing.T) {
	holdings := []Holding{
		perfHolding("AAPL", 10, 105, 100, 100), // +50 on the day
		perfHolding("MSFT", 2, 190, 200, 150),  // -20 on the day
	}

	s := Performance(holdings, nil)
	if math.Abs(s.DayChange-30) > 1e-9 {
		t.Errorf("day change = %f, want 30", s.DayChange)
	}
	// Percent is computed against yesterday's value: 30 / (1430-30) * 100.
	if !s.DayChangePercent.Equal(Percent(30.0 / 1400.0 * 100)) {
		t.Errorf("day change percent = %s", s.DayChangePercent)
	}
}

func TestPerformancePreviousCloseFallsBackToQuote(t *testing.T) {
	holdings := []Holding{perfHolding("AAPL", 10, 105, 0, 100)}
	quotes := map[string]Quote{"AAPL": {Symbol: "AAPL", Price: 105, PreviousClose: 100}}

	s := Performance(holdings, quotes)
	if math.Abs(s.DayChange-50) > 1e-9 {
		t.Errorf("day change = %f, want 50 from the quote's previous close", s.DayChange)
	}
}

func TestPerformanceTotals(t *testing.T) {
	holdings := []Holding{
		perfHolding("AAPL", 10, 110, 0, 100), // value 1100, cost 1000
	}

	s := Performance(holdings, nil)
	if math.Abs(s.TotalValue-1100) > 1e-9 {
		t.Errorf("total value = %f, want 1100", s.TotalValue)
	}
	if math.Abs(s.TotalCost-1000) > 1e-9 {
		t.Errorf("total cost = %f, want 1000", s.TotalCost)
	}
	if math.Abs(s.TotalGain-100) > 1e-9 {
		t.Errorf("total gain = %f, want 100", s.TotalGain)
	}
	if !s.TotalGainPercent.Equal(10) {
		t.Errorf("total gain percent = %s, want 10.00%%", s.TotalGainPercent)
	}
}

func TestPerformanceBestAndWorst(t *testing.T) {
	holdings := []Holding{
		perfHolding("FLAT", 1, 100, 0, 100), // 0%
		perfHolding("UP", 1, 150, 0, 100),   // +50%
		perfHolding("DOWN", 1, 80, 0, 100),  // -20%
	}

	s := Performance(holdings, nil)
	if s.BestPerformer == nil || s.BestPerformer.Symbol != "UP" {
		t.Errorf("best performer = %+v, want UP", s.BestPerformer)
	}
	if s.WorstPerformer == nil || s.WorstPerformer.Symbol != "DOWN" {
		t.Errorf("worst performer = %+v, want DOWN", s.WorstPerformer)
	}
}

func TestPerformanceTiesKeepFirstInInputOrder(t *testing.T) {
	holdings := []Holding{
		perfHolding("FIRST", 1, 110, 0, 100),
		perfHolding("SECOND", 1, 110, 0, 100),
	}

	s := Performance(holdings, nil)
	if s.BestPerformer.Symbol != "FIRST" || s.WorstPerformer.Symbol != "FIRST" {
		t.Errorf("tie broke to %s/%s, want FIRST/FIRST",
			s.BestPerformer.Symbol, s.WorstPerformer.Symbol)
	}
}

func TestPerformanceEmptyHoldings(t *testing.T) {
	s := Performance(nil, nil)
	if s.TotalValue != 0 || s.TotalGain != 0 || s.DayChange != 0 {
		t.Errorf("empty holdings must yield a zero summary, got %+v", s)
	}
	if s.BestPerformer != nil || s.WorstPerformer != nil {
		t.Errorf("empty holdings must yield no performers, got %+v", s)
	}
}
