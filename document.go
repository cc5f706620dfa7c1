package webscrape

// Anchor is an HTML hyperlink element.
type Anchor struct {
	Text string
	Href string
}

// Parser parses HTML into a queryable document tree.
type Parser interface {
	// Parse parses raw HTML. Parsers are tolerant; an error means the input
	// could not be read at all.
	Parse(html string) (Document, error)
}

// Document is a parsed, mutable HTML document tree.
type Document interface {
	// RemoveElements deletes every element with one of the given tag names,
	// including its descendants.
	RemoveElements(tags ...string)

	// Text returns the concatenated text content of the whole document.
	Text() string

	// Anchors returns all anchor elements carrying a non-empty href
	// attribute, in document order.
	Anchors() []Anchor

	// HTML serializes the current state of the tree.
	HTML() (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
