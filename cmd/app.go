// Package cmd implements the CLI application to run the trading simulator.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mlepage/tradesim"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands of the application.
// A main package iterates over it and registers each one on its commander.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&demoCmd{},
	&pricesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML configuration file (optional)")
var plain = flag.Bool("plain", false, "Print markdown output without terminal rendering")

// LoadConfig reads the app configuration, falling back to defaults when no
// file is configured.
func LoadConfig() (*Config, error) {
	return ReadConfig(*configFile)
}

// Oracle builds the price oracle from the app configuration.
func Oracle() (*tradesim.StaticOracle, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Oracle()
}

// logger returns the CLI logger configured from the app configuration.
// Logs go to stderr so they never mix with command output.
func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg, err := LoadConfig(); err == nil {
		if l, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			level = l
		}
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// printMarkdown renders markdown content to the terminal. With -plain (or if
// rendering fails) the raw markdown is printed instead.
func printMarkdown(content string) {
	if *plain {
		fmt.Println(content)
		return
	}
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
