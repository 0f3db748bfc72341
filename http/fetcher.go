// Package http provides HTTP implementations of docindex.Fetcher and
// docindex.ModuleSource.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docindex"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docindex.Fetcher at compile time.
var _ docindex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using plain HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified. Zero disables
// the timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit spaces requests to at most rps per second.
// A non-positive rps leaves requests unpaced.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at the given URL. Any status other than 200
// is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
