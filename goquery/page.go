package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/docindex"
)

// Defaults for the generated documentation site.
const (
	DefaultBaseURL = "https://docs.sourceacademy.org"
	DefaultPage    = "global.html"
)

// DefaultChapters are the language variants documented on the site.
var DefaultChapters = []string{"source_1", "source_2", "source_3", "source_4"}

// Ensure PageSource implements docindex.ContainerSource at compile time.
var _ docindex.ContainerSource = (*PageSource)(nil)

// PageSource reads one generated API page per chapter from a
// documentation site.
type PageSource struct {
	fetcher docindex.Fetcher
	baseURL string
	page    string
}

// NewPageSource creates a PageSource reading baseURL/<chapter>/page.
func NewPageSource(fetcher docindex.Fetcher, baseURL, page string) *PageSource {
	return &PageSource{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		page:    page,
	}
}

// ReadContainer fetches the chapter's page and extracts its records.
func (s *PageSource) ReadContainer(ctx context.Context, chapter string) ([]docindex.Record, error) {
	body, err := s.fetcher.Fetch(ctx, s.PageURL(chapter))
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	return ExtractRecords(body)
}

// PageURL returns the page location for chapter.
func (s *PageSource) PageURL(chapter string) string {
	return s.baseURL + "/" + url.PathEscape(chapter) + "/" + s.page
}
