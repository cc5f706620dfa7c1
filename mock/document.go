package mock

import "github.com/fwojciec/webscrape"

var _ webscrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of webscrape.Parser.
type Parser struct {
	ParseFn func(html string) (webscrape.Document, error)
}

func (p *Parser) Parse(html string) (webscrape.Document, error) {
	return p.ParseFn(html)
}

var _ webscrape.Document = (*Document)(nil)

// Document is a mock implementation of webscrape.Document.
type Document struct {
	RemoveElementsFn func(tags ...string)
	TextFn           func() string
	AnchorsFn        func() []webscrape.Anchor
	HTMLFn           func() (string, error)
}

func (d *Document) RemoveElements(tags ...string) {
	if d.RemoveElementsFn != nil {
		d.RemoveElementsFn(tags...)
	}
}

func (d *Document) Text() string {
	return d.TextFn()
}

func (d *Document) Anchors() []webscrape.Anchor {
	return d.AnchorsFn()
}

func (d *Document) HTML() (string, error) {
	return d.HTMLFn()
}
