package folio

// Holding is a Position enriched with live market data and an optional
// sector classification. It is the input of the metrics engine.
type Holding struct {
	Position
	Price         float64 // last traded price, 0 when no quote arrived
	PreviousClose float64
	Sector        string // empty when unclassified
}

// Value returns the current market value of the holding.
func (h Holding) Value() float64 {
	return h.Quantity.AsFloat() * h.Price
}

// DayChange returns the value change since the previous close.
func (h Holding) DayChange() float64 {
	if h.PreviousClose == 0 {
		return 0
	}
	return h.Quantity.AsFloat() * (h.Price - h.PreviousClose)
}

// GainPercent returns the percent gain over the average cost basis,
// or 0 when the cost basis is unknown.
func (h Holding) GainPercent() Percent {
	avg := h.AvgCost.AsFloat()
	if avg == 0 {
		return 0
	}
	return Percent((h.Price - avg) / avg * 100)
}

// EnrichPositions joins positions with quotes and sector tags into the
// holdings consumed by the metrics engine. Symbols without a quote keep a
// zero price so downstream reports can show an explicit "no data" marker.
// The result is ordered by account then symbol so reports are
// deterministic.
func EnrichPositions(positions map[Key]Position, quotes map[string]Quote, sectors map[string]string) []Holding {
	sorted := SortedPositions(positions)
	holdings := make([]Holding, 0, len(sorted))
	for _, pos := range sorted {
		h := Holding{Position: pos}
		if q, ok := quotes[pos.Symbol]; ok {
			h.Price = q.Price
			h.PreviousClose = q.PreviousClose
		}
		if sectors != nil {
			h.Sector = sectors[pos.Symbol]
		}
		holdings = append(holdings, h)
	}
	return holdings
}
