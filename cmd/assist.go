package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mlepage/tradesim"
	"github.com/mlepage/tradesim/agent"
	"github.com/mlepage/tradesim/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	journalFile string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `tsim assist [-j <journal>] [question]

  Starts an interactive session with the AI assistant. With -j the
  assistant is given a previously exported journal as context.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journalFile, "j", "", "Journal file (JSONL) to discuss.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	background := ""
	if c.journalFile != "" {
		jf, err := os.Open(c.journalFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening journal:", err)
			return subcommands.ExitFailure
		}
		journal, err := tradesim.DecodeJournal(jf)
		jf.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading journal:", err)
			return subcommands.ExitFailure
		}
		var b strings.Builder
		for _, tx := range journal {
			b.WriteString("- ")
			b.WriteString(renderer.Transaction(tx))
			b.WriteString("\n")
		}
		background = b.String()
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, background)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
