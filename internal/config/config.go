package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/lox/wordle/internal/solution"
	"github.com/lox/wordle/internal/wordle"
)

// Environment variable names that override the configuration file
const (
	// EnvAPIURL replaces solution.url
	EnvAPIURL = "WORDLE_API_URL"

	// EnvLogLevel replaces ui.log_level
	EnvLogLevel = "WORDLE_LOG_LEVEL"

	// EnvLogFile replaces ui.log_file
	EnvLogFile = "WORDLE_LOG_FILE"

	// EnvFeedAddr replaces feed.address
	EnvFeedAddr = "WORDLE_FEED_ADDR"

	// EnvRetries replaces solution.retries
	EnvRetries = "WORDLE_RETRIES"
)

// Config represents the complete game configuration
type Config struct {
	Solution SolutionSettings
	UI       UISettings
	Feed     FeedSettings
}

// SolutionSettings controls how the solution word is obtained and scored
type SolutionSettings struct {
	URL           string   `hcl:"url,optional"`
	Timeout       int      `hcl:"timeout,optional"`     // seconds
	Retries       int      `hcl:"retries,optional"`     // extra attempts after the first
	RetryDelay    int      `hcl:"retry_delay,optional"` // milliseconds
	FallbackWords []string `hcl:"fallback_words,optional"`
	Rules         string   `hcl:"rules,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Theme    string `hcl:"theme,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// FeedSettings configures the board feed; an empty address disables it
type FeedSettings struct {
	Address string `hcl:"address,optional"`
}

// fileConfig is the HCL schema; every block is optional
type fileConfig struct {
	Solution *solutionBlock `hcl:"solution,block"`
	UI       *UISettings    `hcl:"ui,block"`
	Feed     *FeedSettings  `hcl:"feed,block"`
}

// solutionBlock tracks whether fallback_words was written at all, so that an
// explicit empty list can disable the fallback
type solutionBlock struct {
	URL           string    `hcl:"url,optional"`
	Timeout       int       `hcl:"timeout,optional"`
	Retries       *int      `hcl:"retries,optional"`
	RetryDelay    int       `hcl:"retry_delay,optional"`
	FallbackWords *[]string `hcl:"fallback_words,optional"`
	Rules         string    `hcl:"rules,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Solution: SolutionSettings{
			URL:           solution.DefaultURL,
			Timeout:       10,
			Retries:       2,
			RetryDelay:    500,
			FallbackWords: append([]string(nil), solution.DefaultWords...),
			Rules:         "classic",
		},
		UI: UISettings{
			LogLevel: "warn",
			LogFile:  "wordle.log",
			Theme:    "dark",
		},
	}
}

// Load loads configuration from an HCL file, then applies environment
// overrides. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from an HCL file without looking at the
// environment
func LoadFile(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	defaults := DefaultConfig()

	if s := fc.Solution; s != nil {
		if s.URL != "" {
			config.Solution.URL = s.URL
		}
		if s.Timeout != 0 {
			config.Solution.Timeout = s.Timeout
		}
		if s.Retries != nil {
			config.Solution.Retries = *s.Retries
		}
		if s.RetryDelay != 0 {
			config.Solution.RetryDelay = s.RetryDelay
		}
		if s.FallbackWords != nil {
			config.Solution.FallbackWords = *s.FallbackWords
		}
		if s.Rules != "" {
			config.Solution.Rules = s.Rules
		}
	}

	if fc.UI != nil {
		config.UI = *fc.UI
		if config.UI.LogLevel == "" {
			config.UI.LogLevel = defaults.UI.LogLevel
		}
		if config.UI.LogFile == "" {
			config.UI.LogFile = defaults.UI.LogFile
		}
		if config.UI.Theme == "" {
			config.UI.Theme = defaults.UI.Theme
		}
	}

	if fc.Feed != nil {
		config.Feed = *fc.Feed
	}

	return config, nil
}

// ApplyEnv loads a .env file if present and applies environment overrides
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load() // .env is optional

	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Solution.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.UI.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.UI.LogFile = v
	}
	if v := os.Getenv(EnvFeedAddr); v != "" {
		c.Feed.Address = v
	}
	if v := os.Getenv(EnvRetries); v != "" {
		retries, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvRetries, err)
		}
		c.Solution.Retries = retries
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Solution.URL == "" {
		return fmt.Errorf("solution url is required")
	}

	if c.Solution.Timeout <= 0 {
		return fmt.Errorf("solution timeout must be positive")
	}

	if c.Solution.Retries < 0 {
		return fmt.Errorf("solution retries cannot be negative")
	}

	if c.Solution.RetryDelay < 0 {
		return fmt.Errorf("solution retry delay cannot be negative")
	}

	if _, ok := wordle.ParseRules(c.Solution.Rules); !ok {
		return fmt.Errorf("invalid rules: %s", c.Solution.Rules)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	// Validate theme
	validThemes := map[string]bool{
		"dark":  true,
		"light": true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}

// Rules returns the configured scoring rules
func (c *Config) Rules() wordle.Rules {
	rules, _ := wordle.ParseRules(c.Solution.Rules)
	return rules
}

// ProviderOptions returns the solution provider options for this configuration
func (c *Config) ProviderOptions() solution.Options {
	return solution.Options{
		URL:           c.Solution.URL,
		Timeout:       time.Duration(c.Solution.Timeout) * time.Second,
		Retries:       c.Solution.Retries,
		RetryDelay:    time.Duration(c.Solution.RetryDelay) * time.Millisecond,
		FallbackWords: c.Solution.FallbackWords,
	}
}
