package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/venn/folio"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	account  string
	amount   float64
	currency string
	note     string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into an account" }
func (*depositCmd) Usage() string {
	return `fol deposit -a <account> -m <amount> [-note <note>]

  Records a cash deposit in the ledger.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account receiving the cash.")
	f.Float64Var(&c.amount, "m", 0, "Amount deposited.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the amount.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the transaction.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a and a positive -m are required.")
		return subcommands.ExitUsageError
	}
	tx := folio.NewDeposit(c.account, folio.M(c.amount, c.currency), time.Now(), c.note)
	return validateAndAppend(tx)
}
