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

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	account  string
	symbol   string
	quantity float64
	price    float64
	fees     float64
	currency string
	note     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a security" }
func (*buyCmd) Usage() string {
	return `fol buy -a <account> -s <symbol> -q <quantity> -p <price> [-fees <fees>] [-note <note>]

  Records a buy transaction in the ledger. The price is per unit.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account holding the position.")
	f.StringVar(&c.symbol, "s", "", "Symbol bought.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought.")
	f.Float64Var(&c.price, "p", 0, "Price per unit.")
	f.Float64Var(&c.fees, "fees", 0, "Transaction fees.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the price and fees.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the transaction.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -s are required.")
		return subcommands.ExitUsageError
	}
	tx := folio.NewBuy(c.account, c.symbol, folio.Q(c.quantity),
		folio.M(c.price, c.currency), folio.M(c.fees, c.currency), time.Now(), c.note)
	return validateAndAppend(tx)
}
