package folio

import (
	"fmt"
	"math"
	"testing"
)

func TestRiskScoreStaysInRange(t *testing.T) {
	cases := []struct {
		name     string
		holdings []Holding
		weights  RiskWeights
	}{
		{name: "empty", holdings: nil, weights: DefaultRiskWeights},
		{name: "single", holdings: []Holding{holding("ira", "AAPL", "Technology", 10, 100)}, weights: DefaultRiskWeights},
		{name: "worthless", holdings: []Holding{holding("ira", "AAPL", "", 10, 0)}, weights: DefaultRiskWeights},
		{name: "oversized weights", holdings: manyHoldings(25), weights: RiskWeights{Breadth: 500, Concentration: 0, Sector: 0}},
		{name: "negative weights", holdings: manyHoldings(5), weights: RiskWeights{Breadth: -100, Concentration: 0, Sector: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := RiskMetrics(tc.holdings, 1, tc.weights)
			if s.DiversificationScore < 0 || s.DiversificationScore > 100 {
				t.Errorf("score = %f, want within [0,100]", s.DiversificationScore)
			}
		})
	}
}

func manyHoldings(n int) []Holding {
	sectors := []string{"Technology", "Energy", "Health", "Finance"}
	holdings := make([]Holding, 0, n)
	for i := 0; i < n; i++ {
		holdings = append(holdings, holding("ira", fmt.Sprintf("SYM%02d", i), sectors[i%len(sectors)], 1, 5))
	}
	return holdings
}

func TestRiskSingleHoldingScoresLow(t *testing.T) {
	holdings := []Holding{holding("ira", "AAPL", "Technology", 10, 100)}

	s := RiskMetrics(holdings, 1, DefaultRiskWeights)
	if !s.TopHoldingPercent.Equal(100) {
		t.Errorf("top holding = %s, want 100.00%%", s.TopHoldingPercent)
	}
	if math.Abs(s.SectorConcentration-1) > 1e-9 {
		t.Errorf("sector concentration = %f, want 1", s.SectorConcentration)
	}
	// Only the breadth component contributes: 30 * 1/20.
	if math.Abs(s.DiversificationScore-1.5) > 1e-9 {
		t.Errorf("score = %f, want 1.5", s.DiversificationScore)
	}
}

func TestRiskBroadPortfolioScoresHigh(t *testing.T) {
	holdings := manyHoldings(20)

	s := RiskMetrics(holdings, 2, DefaultRiskWeights)
	if !s.TopHoldingPercent.Equal(5) {
		t.Errorf("top holding = %s, want 5.00%%", s.TopHoldingPercent)
	}
	if math.Abs(s.SectorConcentration-0.25) > 1e-9 {
		t.Errorf("sector concentration = %f, want 0.25", s.SectorConcentration)
	}
	// 30*1 + 30*0.95 + 40*0.75
	if math.Abs(s.DiversificationScore-88.5) > 1e-9 {
		t.Errorf("score = %f, want 88.5", s.DiversificationScore)
	}
	if s.Accounts != 2 {
		t.Errorf("accounts = %d, want 2", s.Accounts)
	}
}

func TestRiskCustomWeights(t *testing.T) {
	holdings := manyHoldings(20)

	s := RiskMetrics(holdings, 1, RiskWeights{Breadth: 100, Concentration: 0, Sector: 0})
	if math.Abs(s.DiversificationScore-100) > 1e-9 {
		t.Errorf("score = %f, want 100 with breadth-only weights", s.DiversificationScore)
	}
}
