package docindex

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// Renderer turns a rich-text description into the markup stored on an
// Entry. Empty input renders to an empty string.
type Renderer interface {
	Render(html string) (string, error)
}
