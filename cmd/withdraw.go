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

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	account  string
	amount   float64
	currency string
	note     string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from an account" }
func (*withdrawCmd) Usage() string {
	return `fol withdraw -a <account> -m <amount> [-note <note>]

  Records a cash withdrawal in the ledger. The withdrawal is rejected when
  the account cash balance cannot cover it.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account the cash is taken from.")
	f.Float64Var(&c.amount, "m", 0, "Amount withdrawn.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the amount.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the transaction.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a and a positive -m are required.")
		return subcommands.ExitUsageError
	}
	tx := folio.NewWithdrawal(c.account, folio.M(c.amount, c.currency), time.Now(), c.note)
	return validateAndAppend(tx)
}
