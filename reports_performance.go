package folio

// Performer is one ranked holding in a performance summary.
type Performer struct {
	Symbol      string
	GainPercent Percent
}

// PerformanceSummary is the portfolio-wide profit and loss view derived
// from holdings and their quotes.
type PerformanceSummary struct {
	TotalValue       float64
	TotalCost        float64
	TotalGain        float64
	TotalGainPercent Percent
	DayChange        float64
	DayChangePercent Percent
	BestPerformer    *Performer
	WorstPerformer   *Performer
}

// Performance computes the portfolio summary. Empty input yields a zero
// summary, never an error. Day change sums qty*(price-previousClose) per
// holding; best and worst performers are ranked by percent gain over the
// average cost basis, with ties resolving to the first holding in input
// order.
func Performance(holdings []Holding, quotes map[string]Quote) *PerformanceSummary {
	s := &PerformanceSummary{}

	for _, h := range holdings {
		s.TotalValue += h.Value()
		s.TotalCost += h.TotalCost.AsFloat()

		prev := h.PreviousClose
		if prev == 0 {
			if q, ok := quotes[h.Symbol]; ok {
				prev = q.PreviousClose
			}
		}
		if prev != 0 {
			s.DayChange += h.Quantity.AsFloat() * (h.Price - prev)
		}

		if h.AvgCost.AsFloat() == 0 {
			continue // no meaningful gain without a cost basis
		}
		gain := h.GainPercent()
		if s.BestPerformer == nil || gain > s.BestPerformer.GainPercent {
			s.BestPerformer = &Performer{Symbol: h.Symbol, GainPercent: gain}
		}
		if s.WorstPerformer == nil || gain < s.WorstPerformer.GainPercent {
			s.WorstPerformer = &Performer{Symbol: h.Symbol, GainPercent: gain}
		}
	}

	s.TotalGain = s.TotalValue - s.TotalCost
	if s.TotalCost != 0 {
		s.TotalGainPercent = Percent(s.TotalGain / s.TotalCost * 100)
	}
	if base := s.TotalValue - s.DayChange; base != 0 {
		s.DayChangePercent = Percent(s.DayChange / base * 100)
	}
	return s
}
