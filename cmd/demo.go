package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mlepage/tradesim"
	"github.com/mlepage/tradesim/renderer"
)

// demoCmd runs a scripted trading scenario.
type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a scripted trading scenario" }
func (*demoCmd) Usage() string {
	return `tsim demo

  Runs a short scripted scenario on a fresh account: deposits, a buy, a
  sell, and a rejected withdrawal, then prints the account summary.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oracle, err := Oracle()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building price table:", err)
		return subcommands.ExitFailure
	}

	store := tradesim.NewStore(oracle)
	account, err := store.Create("demo")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating account:", err)
		return subcommands.ExitFailure
	}

	step := func(name string, err error) {
		if err != nil {
			fmt.Printf("%-24s rejected: %v\n", name, err)
			return
		}
		fmt.Printf("%-24s %s\n", name, renderer.Transaction(last(account)))
	}

	step("deposit $1000", account.Deposit(tradesim.M(1000)))
	step("buy 5 AAPL", account.Buy("AAPL", 5))
	step("withdraw $500", account.Withdraw(tradesim.M(500)))
	step("sell 2 AAPL", account.Sell("AAPL", 2))
	step("buy 100 TSLA", account.Buy("TSLA", 100))
	step("buy 1 XYZ", account.Buy("XYZ", 1))

	fmt.Println()
	printMarkdown(renderer.SummaryMarkdown(account))
	return subcommands.ExitSuccess
}
