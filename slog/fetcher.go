// Package slog provides logging decorators for docindex interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingFetcher implements docindex.Fetcher.
var _ docindex.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   docindex.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docindex.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
