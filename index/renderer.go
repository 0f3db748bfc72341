// Package index normalizes raw documentation records into canonical
// entries and aggregates them into ordered groups.
package index

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docindex"
)

// Ensure Renderer implements docindex.Renderer at compile time.
var _ docindex.Renderer = (*Renderer)(nil)

// Renderer renders HTML descriptions to markdown through a Converter and
// strips the paragraph wrapping the converter leaves around its output.
type Renderer struct {
	conv docindex.Converter
}

// NewRenderer creates a Renderer backed by conv.
func NewRenderer(conv docindex.Converter) *Renderer {
	return &Renderer{conv: conv}
}

// Render converts html to markdown. Empty input renders to "".
func (r *Renderer) Render(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	md, err := r.conv.Convert(html)
	if err != nil {
		return "", fmt.Errorf("rendering description: %w", err)
	}

	return Unwrap(md), nil
}

// Unwrap removes the newlines a converter emits as paragraph delimiters
// around the whole document. Inner paragraph breaks and other whitespace
// are kept; output without wrapping is returned unchanged.
func Unwrap(md string) string {
	return strings.Trim(md, "\r\n")
}
