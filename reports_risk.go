package folio

// RiskWeights is the scoring policy for the diversification score. The
// three weights should sum to 100; they are policy, not derived constants,
// and can be overridden from configuration.
type RiskWeights struct {
	Breadth       float64 `toml:"breadth"`       // reward for holding many positions
	Concentration float64 `toml:"concentration"` // penalty for a dominant top holding
	Sector        float64 `toml:"sector"`        // penalty for sector concentration
}

// DefaultRiskWeights is the stock 30/30/40 policy.
var DefaultRiskWeights = RiskWeights{Breadth: 30, Concentration: 30, Sector: 40}

// fullBreadthHoldings is the holding count at which the breadth component
// saturates.
const fullBreadthHoldings = 20

// RiskSummary is the concentration and diversification view of a portfolio.
//
// SectorConcentration is a Herfindahl-Hirschman index expressed as a
// fraction in [0,1]; display layers may rescale it by 10000.
type RiskSummary struct {
	DiversificationScore float64 // 0..100
	TopHoldingPercent    Percent
	SectorConcentration  float64
	Accounts             int
}

// RiskMetrics derives concentration statistics and a composite 0-100
// diversification score from the holdings. The score is clamped to
// [0,100] for any input, including zero holdings; empty input never
// errors.
func RiskMetrics(holdings []Holding, accountCount int, weights RiskWeights) RiskSummary {
	s := RiskSummary{Accounts: accountCount}

	var total float64
	for _, h := range holdings {
		total += h.Value()
	}
	if total > 0 {
		var top float64
		for _, h := range holdings {
			if v := h.Value(); v > top {
				top = v
			}
		}
		s.TopHoldingPercent = Percent(top / total * 100)

		for _, row := range SectorAllocation(holdings) {
			share := float64(row.Weight) / 100
			s.SectorConcentration += share * share
		}
	}

	breadth := float64(len(holdings)) / fullBreadthHoldings
	if breadth > 1 {
		breadth = 1
	}
	score := weights.Breadth*breadth +
		weights.Concentration*(1-float64(s.TopHoldingPercent)/100) +
		weights.Sector*(1-s.SectorConcentration)
	s.DiversificationScore = clamp(score, 0, 100)
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
