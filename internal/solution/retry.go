package solution

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
)

// RetryProvider retries a Provider with exponential back-off
type RetryProvider struct {
	next     Provider
	attempts uint
	delay    time.Duration
	logger   *log.Logger
}

// NewRetryProvider retries next up to retries extra times, starting with delay
// between attempts. With retries == 0 next is tried exactly once.
func NewRetryProvider(next Provider, retries int, delay time.Duration, logger *log.Logger) *RetryProvider {
	if retries < 0 {
		retries = 0
	}
	return &RetryProvider{
		next:     next,
		attempts: uint(retries) + 1,
		delay:    delay,
		logger:   logger.WithPrefix("solution"),
	}
}

// Fetch calls the wrapped provider until it succeeds, the attempts run out
// or ctx is cancelled
func (p *RetryProvider) Fetch(ctx context.Context) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			return p.next.Fetch(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Warn("Word fetch failed, retrying", "attempt", n+1, "error", err)
		}),
	)
}
