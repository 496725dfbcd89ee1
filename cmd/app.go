// Package cmd implements the CLI application to inspect a portfolio ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/venn/folio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&sectorCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&riskCmd{}, "reports")
	c.Register(&overlapCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "folio.toml", "Path to the configuration file (TOML format)")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file, overrides the configured one (JSONL format)")

// LoadConfig loads the app configuration file; a missing file yields defaults.
func LoadConfig() (*folio.Config, error) {
	return folio.LoadConfig(*configFile)
}

func ledgerPath(cfg *folio.Config) string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return cfg.LedgerFile
}

// DecodeLedger loads the app ledger file. A missing file yields an empty
// ledger so read-only reports still work on a fresh setup.
func DecodeLedger(cfg *folio.Config) (*folio.Ledger, error) {
	f, err := os.Open(ledgerPath(cfg))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "warning, ledger file does not exist, starting from an empty ledger")
			return folio.NewLedger(), nil
		}
		return nil, err
	}
	defer f.Close()
	return folio.DecodeLedger(f)
}

// EncodeTransaction appends a single transaction into the app ledger file.
func EncodeTransaction(cfg *folio.Config, tx folio.Transaction) subcommands.ExitStatus {
	filename := ledgerPath(cfg)
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := folio.EncodeLedger(f, folio.NewLedger(tx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// validateAndAppend runs the write-time checks against the current ledger
// before appending the transaction.
func validateAndAppend(tx folio.Transaction) subcommands.ExitStatus {
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
	tx, err = ledger.Validate(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	return EncodeTransaction(cfg, tx)
}

// portfolioView is everything the report verbs need: the aggregated ledger
// enriched with live quotes.
type portfolioView struct {
	cfg      *folio.Config
	ledger   *folio.Ledger
	holdings []folio.Holding
	cash     map[string]folio.CashBalance
	flags    []folio.Flag
	quotes   map[string]folio.Quote
}

// buildView loads the ledger, aggregates it and enriches positions with
// quotes from the configured feed.
func buildView(ctx context.Context) (*portfolioView, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}

	positions, cash, flags := ledger.AggregatePositions()

	symbols := make([]string, 0, len(positions))
	for key := range positions {
		if !slices.Contains(symbols, key.Symbol) {
			symbols = append(symbols, key.Symbol)
		}
	}

	feed := folio.NewChartFeed(cfg.Feed)
	fctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout())
	defer cancel()
	quotes := folio.FetchQuotes(fctx, feed, symbols)

	return &portfolioView{
		cfg:      cfg,
		ledger:   ledger,
		holdings: folio.EnrichPositions(positions, quotes, cfg.Sectors),
		cash:     cash,
		flags:    flags,
		quotes:   quotes,
	}, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is not available.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
