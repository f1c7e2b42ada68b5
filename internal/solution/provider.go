// Package solution obtains the word a game is played against.
//
// HTTPProvider asks a random-word service for one word. RetryProvider and
// FallbackProvider wrap any Provider to add retries and a local word list.
package solution

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the word service answers without a word
	ErrEmptyResponse = errors.New("word service returned no words")

	// ErrNoWords is returned by a provider with nothing to choose from
	ErrNoWords = errors.New("no words available")
)

// Provider supplies solution words
type Provider interface {
	// Fetch returns one uppercase word
	Fetch(ctx context.Context) (string, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context) (string, error)

// Fetch calls f
func (f ProviderFunc) Fetch(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticProvider always returns the same word
type StaticProvider string

// Fetch returns the word uppercased
func (p StaticProvider) Fetch(ctx context.Context) (string, error) {
	word := normalize(string(p))
	if word == "" {
		return "", ErrNoWords
	}
	return word, nil
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
