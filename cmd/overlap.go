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

// overlapCmd holds the flags for the 'overlap' subcommand.
type overlapCmd struct{}

func (*overlapCmd) Name() string     { return "overlap" }
func (*overlapCmd) Synopsis() string { return "display symbols held in more than one account" }
func (*overlapCmd) Usage() string {
	return `fol overlap

  Displays symbols held across several accounts, with the combined quantity
  and value of the overlapping positions.
`
}

func (c *overlapCmd) SetFlags(f *flag.FlagSet) {}

func (c *overlapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	byAccount := make(map[string][]folio.Holding)
	var order []string
	for _, h := range view.holdings {
		if _, seen := byAccount[h.Account]; !seen {
			order = append(order, h.Account)
		}
		byAccount[h.Account] = append(byAccount[h.Account], h)
	}
	accounts := make([]folio.AccountHoldings, 0, len(order))
	for _, account := range order {
		accounts = append(accounts, folio.AccountHoldings{Account: account, Holdings: byAccount[account]})
	}

	rows := folio.Overlaps(accounts)
	printMarkdown(renderer.RenderOverlap(renderer.NewOverlap(rows)))

	return subcommands.ExitSuccess
}
