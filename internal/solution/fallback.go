package solution

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// DefaultWords is the built-in list used when the word service cannot be reached
var DefaultWords = []string{
	"ABOUT", "BRAVE", "CHAIR", "CRANE", "DANCE", "EAGLE", "FAINT", "GHOST",
	"GRAPE", "HOUSE", "IVORY", "JOLLY", "KNIFE", "LEMON", "MANGO", "NOBLE",
	"OCEAN", "PLANT", "QUIET", "RIVER", "SHINE", "STORM", "TABLE", "TRAIN",
	"UNCLE", "VIVID", "WATER", "YOUTH", "ZEBRA", "FROST",
}

// ListProvider picks a random word from a fixed list
type ListProvider struct {
	words []string
}

// NewListProvider creates a provider choosing from words.
// Blank entries are dropped and duplicates removed.
func NewListProvider(words []string) *ListProvider {
	cleaned := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = normalize(w)
		return w, w != ""
	}))
	return &ListProvider{words: cleaned}
}

// Len returns the number of candidate words
func (p *ListProvider) Len() int {
	return len(p.words)
}

// Fetch returns a random word from the list
func (p *ListProvider) Fetch(ctx context.Context) (string, error) {
	if len(p.words) == 0 {
		return "", ErrNoWords
	}
	return p.words[frand.Intn(len(p.words))], nil
}

// FallbackProvider uses a secondary provider when the primary one fails
type FallbackProvider struct {
	primary  Provider
	fallback Provider
	logger   *log.Logger
}

// NewFallbackProvider creates a provider that tries primary, then fallback
func NewFallbackProvider(primary, fallback Provider, logger *log.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:  primary,
		fallback: fallback,
		logger:   logger.WithPrefix("solution"),
	}
}

// Fetch returns the primary word, or a fallback word if the primary failed
func (p *FallbackProvider) Fetch(ctx context.Context) (string, error) {
	word, err := p.primary.Fetch(ctx)
	if err == nil {
		return word, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	p.logger.Warn("Word service unavailable, using fallback list", "error", err)
	word, fbErr := p.fallback.Fetch(ctx)
	if fbErr != nil {
		return "", fmt.Errorf("%w (fallback: %v)", err, fbErr)
	}
	return word, nil
}
