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

// sectorCmd holds the flags for the 'sector' subcommand.
type sectorCmd struct{}

func (*sectorCmd) Name() string     { return "sector" }
func (*sectorCmd) Synopsis() string { return "display the portfolio weight of each sector" }
func (*sectorCmd) Usage() string {
	return `fol sector

  Displays each sector's share of the total portfolio value. Symbols without
  a configured sector are grouped under "Other".
`
}

func (c *sectorCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows := folio.SectorAllocation(view.holdings)
	printMarkdown(renderer.RenderAllocation(renderer.NewAllocation("Sector Allocation", rows)))

	return subcommands.ExitSuccess
}
