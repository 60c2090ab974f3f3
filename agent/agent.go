// Package agent implements the AI assistant chat session.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const instructions = `You are a trading coach inside a paper-trading simulator.
The simulator has a single cash account, a fixed price table, and an append-only
transaction journal. Answer questions about the user's trades, holdings and
profit or loss. Be concise. Never present the simulator as financial advice.`

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w          io.Writer
	r          *bufio.Reader
	background string
	chat       *genai.Chat
}

// New creates a new Agent. background is optional context for the assistant,
// typically a rendered transaction journal.
func New(w io.Writer, r io.Reader, background string) *Agent {
	return &Agent{
		w:          w,
		r:          bufio.NewReader(r),
		background: background,
	}
}

// Start creates the Gemini chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	system := instructions
	if a.background != "" {
		system += "\n\nThe user's journal so far:\n" + a.background
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to tsim assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content)
	}
}

// Ask sends one question to the assistant and returns its answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
