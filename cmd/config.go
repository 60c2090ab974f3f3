package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mlepage/tradesim"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the app settings decoded from the TOML configuration file.
type Config struct {
	// Account is the default account identifier for interactive sessions.
	Account string `toml:"account"`
	// LogLevel sets the verbosity of the CLI logger (trace, debug, info, warn, error).
	LogLevel string `toml:"log_level"`
	// Prices maps symbols to fixed per-share prices. When empty the built-in
	// price table is used.
	Prices map[string]float64 `toml:"prices"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Account:  "main",
		LogLevel: "info",
	}
}

// ReadConfig decodes the configuration from path. An empty path or a missing
// file yields the default configuration.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if cfg.Account == "" {
		cfg.Account = "main"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Oracle builds the price oracle from the configured price table, falling
// back to the built-in one when no prices are configured.
func (c *Config) Oracle() (*tradesim.StaticOracle, error) {
	if len(c.Prices) == 0 {
		return tradesim.DefaultOracle(), nil
	}
	return tradesim.NewStaticOracle(c.Prices)
}
