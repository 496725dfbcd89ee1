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

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio weight of each symbol" }
func (*allocationCmd) Usage() string {
	return `fol allocation

  Displays each symbol's share of the total portfolio value, sorted by
  descending value.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows := folio.Allocation(view.holdings)
	printMarkdown(renderer.RenderAllocation(renderer.NewAllocation("Allocation", rows)))

	return subcommands.ExitSuccess
}
