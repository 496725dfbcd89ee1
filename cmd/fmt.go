package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/venn/folio"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fol fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, applies available quick-fixes (like resolving "sell all"),
  sorts them by date, and writes them back in a canonical JSONL format.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted := folio.NewLedger()
	for i, tx := range ledger.Transactions() {
		fixed, err := formatted.Validate(tx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid transaction #%d: %v\n", i+1, err)
			return subcommands.ExitFailure
		}
		formatted.Append(fixed)
	}

	filename := ledgerPath(cfg)
	f2, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f2.Close()

	if err := folio.EncodeLedger(f2, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q.\n", filename)
	return subcommands.ExitSuccess
}
