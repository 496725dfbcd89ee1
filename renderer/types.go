package renderer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/venn/folio"
)

// The view types carry pre-formatted strings so the templates stay free of
// formatting logic. Constructors translate engine results into views.

// Holding is the view of the enriched positions of a portfolio.
type Holding struct {
	Date       string
	Rows       []HoldingRow
	Cash       []CashRow
	Flags      []string
	TotalValue string
}

type HoldingRow struct {
	Account     string
	Symbol      string
	Quantity    string
	AvgCost     string
	Price       string
	Value       string
	GainPercent string
	NoData      bool
}

type CashRow struct {
	Account string
	Balance string
}

// NewHolding builds the holding view from enriched positions.
func NewHolding(holdings []folio.Holding, cash map[string]folio.CashBalance, flags []folio.Flag, at time.Time) *Holding {
	h := &Holding{Date: at.Format("2006-01-02")}
	var total float64
	for _, hd := range holdings {
		row := HoldingRow{
			Account:  hd.Account,
			Symbol:   hd.Symbol,
			Quantity: hd.Position.Quantity.String(),
			AvgCost:  hd.AvgCost.String(),
			NoData:   hd.Price == 0,
		}
		if row.NoData {
			row.Price = "n/a"
			row.Value = "n/a"
			row.GainPercent = "n/a"
		} else {
			row.Price = money(hd.Price)
			row.Value = money(hd.Value())
			row.GainPercent = hd.GainPercent().SignedString()
			total += hd.Value()
		}
		h.Rows = append(h.Rows, row)
	}
	h.TotalValue = money(total)
	for _, account := range sortedKeys(cash) {
		h.Cash = append(h.Cash, CashRow{Account: account, Balance: cash[account].Balance.String()})
	}
	for _, f := range flags {
		h.Flags = append(h.Flags, fmt.Sprintf("%s/%s: %s", f.Account, f.Symbol, f.Reason))
	}
	return h
}

// Allocation is the view of a weight breakdown, by symbol or by sector.
type Allocation struct {
	Title string
	Rows  []AllocationRow
}

type AllocationRow struct {
	Label  string
	Value  string
	Weight string
}

func NewAllocation(title string, rows []folio.AllocationRow) *Allocation {
	a := &Allocation{Title: title}
	for _, r := range rows {
		a.Rows = append(a.Rows, AllocationRow{
			Label:  r.Label,
			Value:  money(r.Value),
			Weight: r.Weight.String(),
		})
	}
	return a
}

// Performance is the view of the gain and day-change summary.
type Performance struct {
	TotalValue       string
	TotalCost        string
	TotalGain        string
	TotalGainPercent string
	DayChange        string
	DayChangePercent string
	Best             string
	Worst            string
}

func NewPerformance(s *folio.PerformanceSummary) *Performance {
	p := &Performance{
		TotalValue:       money(s.TotalValue),
		TotalCost:        money(s.TotalCost),
		TotalGain:        signedMoney(s.TotalGain),
		TotalGainPercent: s.TotalGainPercent.SignedString(),
		DayChange:        signedMoney(s.DayChange),
		DayChangePercent: s.DayChangePercent.SignedString(),
		Best:             "n/a",
		Worst:            "n/a",
	}
	if s.BestPerformer != nil {
		p.Best = fmt.Sprintf("%s (%s)", s.BestPerformer.Symbol, s.BestPerformer.GainPercent.SignedString())
	}
	if s.WorstPerformer != nil {
		p.Worst = fmt.Sprintf("%s (%s)", s.WorstPerformer.Symbol, s.WorstPerformer.GainPercent.SignedString())
	}
	return p
}

// Risk is the view of the diversification metrics.
type Risk struct {
	Score               string
	TopHoldingPercent   string
	SectorConcentration string
	Accounts            string
}

func NewRisk(s *folio.RiskSummary) *Risk {
	return &Risk{
		Score:               fmt.Sprintf("%.0f / 100", s.DiversificationScore),
		TopHoldingPercent:   s.TopHoldingPercent.String(),
		SectorConcentration: fmt.Sprintf("%.3f", s.SectorConcentration),
		Accounts:            fmt.Sprintf("%d", s.Accounts),
	}
}

// Overlap is the view of symbols held in more than one account.
type Overlap struct {
	Rows []OverlapRow
}

type OverlapRow struct {
	Symbol   string
	Accounts string
	Quantity string
	Value    string
}

func NewOverlap(rows []folio.OverlapRow) *Overlap {
	o := &Overlap{}
	for _, r := range rows {
		o.Rows = append(o.Rows, OverlapRow{
			Symbol:   r.Symbol,
			Accounts: joinComma(r.Accounts),
			Quantity: fmt.Sprintf("%g", r.Quantity),
			Value:    money(r.Value),
		})
	}
	return o
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

func signedMoney(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func joinComma(items []string) string { return strings.Join(items, ", ") }

func sortedKeys(m map[string]folio.CashBalance) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
