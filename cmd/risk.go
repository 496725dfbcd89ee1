package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/venn/folio"
	"github.com/venn/folio/renderer"
)

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct{}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display concentration metrics and a diversification score" }
func (*riskCmd) Usage() string {
	return `fol risk

  Displays the top holding weight, the sector concentration index and a
  composite diversification score. Score weights can be tuned in the
  configuration file.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {}

func (c *riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accounts := len(slices.Collect(view.ledger.Accounts()))
	summary := folio.RiskMetrics(view.holdings, accounts, view.cfg.Risk)
	printMarkdown(renderer.RenderRisk(renderer.NewRisk(&summary)))

	return subcommands.ExitSuccess
}
