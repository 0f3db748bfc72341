package docindex

import "context"

// Fetcher retrieves raw content from URLs.
type Fetcher interface {
	// Fetch performs a single request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
