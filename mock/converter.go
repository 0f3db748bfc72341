package mock

import "github.com/fwojciec/docindex"

var _ docindex.Converter = (*Converter)(nil)

// Converter is a mock implementation of docindex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docindex.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docindex.Renderer.
type Renderer struct {
	RenderFn func(html string) (string, error)
}

func (r *Renderer) Render(html string) (string, error) {
	return r.RenderFn(html)
}
