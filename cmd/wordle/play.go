package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lox/wordle/cmd/wordle/shared"
	"github.com/lox/wordle/internal/config"
	"github.com/lox/wordle/internal/feed"
	"github.com/lox/wordle/internal/solution"
	"github.com/lox/wordle/internal/tui"
	"golang.org/x/sync/errgroup"
)

// PlayCmd runs an interactive game
type PlayCmd struct {
	Config   string `kong:"short='c',default='wordle.hcl',help='Path to HCL configuration file'"`
	Solution string `kong:"help='Play against this word instead of fetching one'"`
	URL      string `kong:"name='url',help='Word service URL (overrides config)'"`
	Feed     string `kong:"help='Serve the board to viewers on this address, e.g. :8080 (overrides config)'"`
	Rules    string `kong:"help='Scoring rules: classic or strict (overrides config)'"`
	LogLevel string `kong:"help='Log level (overrides config)'"`
	LogFile  string `kong:"help='Log file path (overrides config)'"`
	NoColor  bool   `kong:"help='Disable colours'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	// Apply command line overrides
	if c.URL != "" {
		cfg.Solution.URL = c.URL
	}
	if c.Feed != "" {
		cfg.Feed.Address = c.Feed
	}
	if c.Rules != "" {
		cfg.Solution.Rules = c.Rules
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = strings.ToLower(c.LogLevel)
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := shared.OpenLogFile(cfg.UI.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupGameLogger(logFile, cfg.UI.LogLevel)
	logger.Info("Starting Wordle",
		"url", cfg.Solution.URL,
		"rules", cfg.Solution.Rules,
		"feed", cfg.Feed.Address,
		"config", c.Config)

	tui.SetupColors(cfg.UI.NoColor)

	opts := cfg.ProviderOptions()
	opts.Word = c.Solution
	provider := solution.NewProvider(opts, logger)

	ctx, cancel := context.WithCancel(shared.SetupSignalHandlerWithLogger(logger))
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	var observer tui.Observer
	if cfg.Feed.Address != "" {
		feedServer := feed.NewServer(cfg.Feed.Address, shared.SetupStructuredLogger(logFile, cfg.UI.LogLevel))
		observer = feedServer

		g.Go(feedServer.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return feedServer.Shutdown(shutdownCtx)
		})
	}

	model := tui.NewModel(tui.Options{
		Provider: provider,
		Logger:   logger,
		Observer: observer,
		Rules:    cfg.Rules(),
		Theme:    tui.ThemeByName(cfg.UI.Theme),
		Context:  gctx,
	})

	g.Go(func() error {
		// Leaving the game stops the feed as well
		defer cancel()
		return tui.Run(gctx, model)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	state := model.State()
	logger.Info("Exiting", "status", state.Status, "turns", state.Turn())
	if state.Status.IsOver() {
		fmt.Printf("%s in %d guesses, the word was %s\n", state.Status, state.Turn(), state.Solution)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}
