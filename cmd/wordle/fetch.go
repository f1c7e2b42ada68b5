package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/wordle/cmd/wordle/shared"
	"github.com/lox/wordle/internal/solution"
)

// FetchCmd fetches a solution word through the configured provider chain
type FetchCmd struct {
	Config string `kong:"short='c',default='wordle.hcl',help='Path to HCL configuration file'"`
	URL    string `kong:"name='url',help='Word service URL (overrides config)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *FetchCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.URL != "" {
		cfg.Solution.URL = c.URL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := "warn"
	if c.Debug {
		level = "debug"
	}
	provider := solution.NewProvider(cfg.ProviderOptions(), shared.SetupGameLogger(os.Stderr, level))

	ctx := shared.SetupSignalHandler()
	start := time.Now()
	word, err := provider.Fetch(ctx)
	if err != nil {
		logger.Error().Err(err).Str("url", cfg.Solution.URL).Msg("Failed to fetch word")
		return err
	}

	logger.Debug().
		Str("url", cfg.Solution.URL).
		Int("retries", cfg.Solution.Retries).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched word")
	fmt.Println(word)
	return nil
}
