package solution

import (
	"time"

	"github.com/charmbracelet/log"
)

// Options describes the provider chain used by a game
type Options struct {
	// Word fixes the solution and skips the word service entirely
	Word string

	URL        string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	// FallbackWords is used when the word service fails; empty disables it
	FallbackWords []string
}

// NewProvider builds the provider described by opts
func NewProvider(opts Options, logger *log.Logger) Provider {
	if opts.Word != "" {
		return StaticProvider(opts.Word)
	}

	var p Provider = NewHTTPProvider(opts.URL, opts.Timeout, logger)
	if opts.Retries > 0 {
		p = NewRetryProvider(p, opts.Retries, opts.RetryDelay, logger)
	}

	fallback := NewListProvider(opts.FallbackWords)
	if fallback.Len() > 0 {
		p = NewFallbackProvider(p, fallback, logger)
	}

	return p
}
