package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/venn/folio"
	"github.com/wcharczuk/go-chart/v2"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	rng    string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the portfolio value curve to a PNG file" }
func (*chartCmd) Usage() string {
	return `fol chart [-r <range>] [-o <file>]

  Renders the combined portfolio value series as a line chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "r", string(folio.Range1M), "Time range (1D, 1W, 1M, 3M, 6M, 1Y, 5Y).")
	f.StringVar(&c.output, "o", "portfolio.png", "Output PNG file.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(points) < 2 {
		fmt.Fprintln(os.Stderr, "Error: not enough data points to draw a chart.")
		return subcommands.ExitFailure
	}

	series := chart.TimeSeries{Name: "Portfolio"}
	for _, p := range points {
		series.XValues = append(series.XValues, p.Time)
		series.YValues = append(series.YValues, p.Price)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Portfolio value over %s", r),
		Width:  1024,
		Height: 512,
		Series: []chart.Series{series},
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := graph.Render(chart.PNG, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
