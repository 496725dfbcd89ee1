package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/venn/folio"
	"github.com/venn/folio/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	rng string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio value over a time range" }
func (*historyCmd) Usage() string {
	return `fol history [-r <range>]

  Combines the price series of every held symbol, weighted by position size,
  into a single portfolio value series.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "r", string(folio.Range1M), "Time range (1D, 1W, 1M, 3M, 6M, 1Y, 5Y).")
}

// combinedWeights sums position sizes per symbol across accounts.
func combinedWeights(positions map[folio.Key]folio.Position) []folio.WeightedSymbol {
	bySymbol := make(map[string]float64)
	var order []string
	for _, p := range folio.SortedPositions(positions) {
		if _, seen := bySymbol[p.Symbol]; !seen {
			order = append(order, p.Symbol)
		}
		bySymbol[p.Symbol] += p.Quantity.AsFloat()
	}
	weights := make([]folio.WeightedSymbol, 0, len(order))
	for _, symbol := range order {
		weights = append(weights, folio.WeightedSymbol{Symbol: symbol, Quantity: bySymbol[symbol]})
	}
	return weights
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := folio.ParseRange(c.rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	positions, _, _ := ledger.AggregatePositions()
	weights := combinedWeights(positions)

	feed := folio.NewChartFeed(cfg.Feed)
	fctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout())
	defer cancel()
	points, err := folio.CombineSeries(fctx, feed, weights, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error combining series: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(points, r))

	return subcommands.ExitSuccess
}
