package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mlepage/tradesim/renderer"
)

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the fixed price table" }
func (*pricesCmd) Usage() string {
	return `tsim prices

  Displays the per-share prices known to the simulator.
`
}

func (*pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oracle, err := Oracle()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building price table:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PricesMarkdown(oracle))
	return subcommands.ExitSuccess
}
