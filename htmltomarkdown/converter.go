// Package htmltomarkdown implements docindex.Converter on top of
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docindex"
)

// Ensure Converter implements docindex.Converter at compile time.
var _ docindex.Converter = (*Converter)(nil)

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links in descriptions against domain.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// Converter renders documentation descriptions as Markdown. Code fences
// and list markers are pinned so the index stays byte-stable across
// library upgrades.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithCodeBlockFence("```"),
					commonmark.WithBulletListMarker("-"),
				),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML description into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docindex.Errorf(docindex.EINVALID, "empty HTML input")
	}

	var convOpts []converter.ConvertOptionFunc
	if c.domain != "" {
		convOpts = append(convOpts, converter.WithDomain(c.domain))
	}

	return c.conv.ConvertString(html, convOpts...)
}
