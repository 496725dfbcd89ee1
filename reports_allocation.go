package folio

import "sort"

// OtherSector is the bucket for holdings without a sector classification.
const OtherSector = "Other"

// AllocationRow is one line of an allocation breakdown: a label (symbol or
// sector), its market value, and its share of the total.
type AllocationRow struct {
	Label  string
	Value  float64
	Weight Percent
}

// Allocation breaks the holdings down by symbol. Rows are sorted by
// descending value; equal values keep their input order. Weights sum to
// 100 when the total value is positive; with no value the report is empty.
func Allocation(holdings []Holding) []AllocationRow {
	return allocate(holdings, func(h Holding) string { return h.Symbol })
}

// SectorAllocation breaks the holdings down by sector. Unclassified
// holdings fall into the "Other" bucket.
func SectorAllocation(holdings []Holding) []AllocationRow {
	return allocate(holdings, func(h Holding) string {
		if h.Sector == "" {
			return OtherSector
		}
		return h.Sector
	})
}

func allocate(holdings []Holding, group func(Holding) string) []AllocationRow {
	totals := make(map[string]float64)
	var order []string
	var total float64
	for _, h := range holdings {
		label := group(h)
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += h.Value()
		total += h.Value()
	}
	if total <= 0 {
		return nil
	}

	rows := make([]AllocationRow, 0, len(order))
	for _, label := range order {
		rows = append(rows, AllocationRow{
			Label:  label,
			Value:  totals[label],
			Weight: Percent(totals[label] / total * 100),
		})
	}
	// Stable keeps the first-encountered order on ties.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}
