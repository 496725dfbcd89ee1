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

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display gains, day change and ranked performers" }
func (*performanceCmd) Usage() string {
	return `fol performance

  Displays the portfolio profit and loss summary: total gain, day change and
  the best and worst performing symbols.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := buildView(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := folio.Performance(view.holdings, view.quotes)
	printMarkdown(renderer.RenderPerformance(renderer.NewPerformance(summary)))

	return subcommands.ExitSuccess
}
