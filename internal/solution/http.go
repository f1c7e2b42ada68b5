package solution

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/wordle/internal/wordle"
)

// DefaultURL is the random-word service used when none is configured
const DefaultURL = "https://random-word-api.herokuapp.com/word"

// maxResponseSize bounds the body read from the word service
const maxResponseSize = 64 * 1024

// HTTPProvider fetches a random word from a service that answers
// GET {url}?length=N with a JSON array of lowercase words.
// The word is uppercased but otherwise not validated.
type HTTPProvider struct {
	url    string
	length int
	client *http.Client
	logger *log.Logger
}

// NewHTTPProvider creates a provider for the service at rawURL
func NewHTTPProvider(rawURL string, timeout time.Duration, logger *log.Logger) *HTTPProvider {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	return &HTTPProvider{
		url:    rawURL,
		length: wordle.WordLength,
		client: &http.Client{Timeout: timeout},
		logger: logger.WithPrefix("solution"),
	}
}

// Fetch performs one request against the word service
func (p *HTTPProvider) Fetch(ctx context.Context) (string, error) {
	reqURL, err := p.requestURL()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch word: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("word service returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var words []string
	if err := json.Unmarshal(body, &words); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(words) == 0 || normalize(words[0]) == "" {
		return "", ErrEmptyResponse
	}

	word := normalize(words[0])
	p.logger.Debug("Fetched word", "url", reqURL, "elapsed", time.Since(start))
	return word, nil
}

func (p *HTTPProvider) requestURL() (string, error) {
	u, err := url.Parse(p.url)
	if err != nil {
		return "", fmt.Errorf("invalid word service url %q: %w", p.url, err)
	}
	q := u.Query()
	q.Set("length", strconv.Itoa(p.length))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
