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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	account  string
	symbol   string
	quantity float64
	price    float64
	fees     float64
	currency string
	note     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a security" }
func (*sellCmd) Usage() string {
	return `fol sell -a <account> -s <symbol> -q <quantity> -p <price> [-fees <fees>] [-note <note>]

  Records a sell transaction in the ledger. The price is per unit. A zero
  quantity sells the whole position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account holding the position.")
	f.StringVar(&c.symbol, "s", "", "Symbol sold.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity sold. Zero sells the whole position.")
	f.Float64Var(&c.price, "p", 0, "Price per unit.")
	f.Float64Var(&c.fees, "fees", 0, "Transaction fees.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the price and fees.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the transaction.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -s are required.")
		return subcommands.ExitUsageError
	}
	tx := folio.NewSell(c.account, c.symbol, folio.Q(c.quantity),
		folio.M(c.price, c.currency), folio.M(c.fees, c.currency), time.Now(), c.note)
	return validateAndAppend(tx)
}
