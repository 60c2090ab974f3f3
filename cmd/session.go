package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/mlepage/tradesim"
	"github.com/mlepage/tradesim/renderer"
)

// sessionCmd holds the flags for the 'session' subcommand.
type sessionCmd struct {
	account string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive trading session" }
func (*sessionCmd) Usage() string {
	return `tsim session [-a <account>]

  Starts an interactive session on a trading account. Type 'help' at the
  prompt for the list of session commands, 'bye' to exit.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to trade on. Defaults to the configured account.")
}

const sessionHelp = `Session commands:
  deposit <amount>       add cash to the account
  withdraw <amount>      remove cash from the account
  buy <symbol> <qty>     buy shares at the current price
  sell <symbol> <qty>    sell shares at the current price
  balance                show the cash balance
  holdings               show shares held per symbol
  value                  show cash plus market value of holdings
  pl                     show profit and loss since creation
  tx                     list the transaction journal
  summary                show the full account summary
  prices                 show the price table
  export <file>          write the journal to a JSONL file
  help                   show this help
  bye                    exit the session
`

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return subcommands.ExitFailure
	}
	oracle, err := cfg.Oracle()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building price table:", err)
		return subcommands.ExitFailure
	}

	id := c.account
	if id == "" {
		id = cfg.Account
	}
	store := tradesim.NewStore(oracle)
	account, err := store.Open(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening account:", err)
		return subcommands.ExitFailure
	}
	log.Info().Str("account", id).Msg("session started")

	fmt.Printf("Trading session on account %q. Type 'help' for commands, 'bye' to exit.\n", id)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("tsim> ")
		if !scanner.Scan() {
			break // Clean exit on Ctrl+D.
		}
		out, markdown, quit, err := evalLine(account, oracle, scanner.Text())
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if markdown {
			printMarkdown(out)
		} else if out != "" {
			fmt.Println(out)
		}
		if quit {
			break
		}
	}
	log.Info().Str("account", id).Msg("session ended")
	return subcommands.ExitSuccess
}

// evalLine applies a single session command to the account. It returns the
// text to display, whether that text is markdown, and whether the session
// should end.
func evalLine(a *tradesim.Account, oracle *tradesim.StaticOracle, line string) (out string, markdown, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, false, nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "help":
		return sessionHelp, false, false, nil
	case "bye", "quit", "exit":
		return "Bye.", false, true, nil

	case "deposit", "withdraw":
		if len(args) != 1 {
			return "", false, false, fmt.Errorf("usage: %s <amount>", verb)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", false, false, fmt.Errorf("invalid amount %q", args[0])
		}
		amount := tradesim.M(v)
		if verb == "deposit" {
			err = a.Deposit(amount)
		} else {
			err = a.Withdraw(amount)
		}
		if err != nil {
			return "", false, false, err
		}
		return renderer.Transaction(last(a)), false, false, nil

	case "buy", "sell":
		if len(args) != 2 {
			return "", false, false, fmt.Errorf("usage: %s <symbol> <quantity>", verb)
		}
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return "", false, false, fmt.Errorf("invalid quantity %q", args[1])
		}
		if verb == "buy" {
			err = a.Buy(args[0], qty)
		} else {
			err = a.Sell(args[0], qty)
		}
		if err != nil {
			return "", false, false, err
		}
		return renderer.Transaction(last(a)), false, false, nil

	case "balance":
		return "Balance: " + a.Balance().String(), false, false, nil
	case "value":
		return "Portfolio value: " + a.PortfolioValue().String(), false, false, nil
	case "pl":
		return "Profit/loss: " + a.ProfitLoss().SignedString(), false, false, nil

	case "holdings":
		holdings := a.Holdings()
		if len(holdings) == 0 {
			return "No shares held.", false, false, nil
		}
		var b strings.Builder
		for _, symbol := range a.Symbols() {
			fmt.Fprintf(&b, "%s: %d\n", symbol, holdings[symbol])
		}
		return strings.TrimRight(b.String(), "\n"), false, false, nil

	case "tx":
		var b strings.Builder
		for _, tx := range a.Transactions() {
			b.WriteString(renderer.Transaction(tx))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n"), false, false, nil

	case "summary":
		return renderer.SummaryMarkdown(a), true, false, nil
	case "prices":
		return renderer.PricesMarkdown(oracle), true, false, nil

	case "export":
		if len(args) != 1 {
			return "", false, false, fmt.Errorf("usage: export <file>")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return "", false, false, fmt.Errorf("cannot create %q: %w", args[0], err)
		}
		defer f.Close()
		if err := tradesim.EncodeJournal(f, a.Transactions()); err != nil {
			return "", false, false, fmt.Errorf("cannot write journal: %w", err)
		}
		return fmt.Sprintf("Journal written to %s", args[0]), false, false, nil

	default:
		return "", false, false, fmt.Errorf("unknown command %q, type 'help'", verb)
	}
}

// last returns the most recent journal record.
func last(a *tradesim.Account) tradesim.Transaction {
	journal := a.Transactions()
	return journal[len(journal)-1]
}
