package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/venn/folio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current positions and cash balances" }
func (*holdingCmd) Usage() string {
	return `fol holding

  Displays the aggregated positions of the ledger, enriched with the latest
  quotes, along with cash balances and data quality flags.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	h := renderer.NewHolding(view.holdings, view.cash, view.flags, time.Now())
	printMarkdown(renderer.RenderHolding(h))

	return subcommands.ExitSuccess
}
