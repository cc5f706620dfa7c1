// Package goquery implements webscrape.Parser on top of goquery and the
// golang.org/x/net HTML5 parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webscrape"
	"golang.org/x/net/html"
)

// Ensure Parser implements webscrape.Parser at compile time.
var _ webscrape.Parser = (*Parser)(nil)

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html with the HTML5 tree construction algorithm. Malformed
// markup is repaired the way browsers repair it, so errors are rare.
func (p *Parser) Parse(s string) (webscrape.Document, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, webscrape.WrapError(webscrape.EPARSE, err, "failed to parse HTML")
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Ensure Document implements webscrape.Document at compile time.
var _ webscrape.Document = (*Document)(nil)

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// RemoveElements deletes all elements matching the given tag names.
func (d *Document) RemoveElements(tags ...string) {
	if len(tags) == 0 {
		return
	}
	d.doc.Find(strings.Join(tags, ", ")).Remove()
}

// Text returns the text of every remaining text node, in document order.
func (d *Document) Text() string {
	return d.doc.Text()
}

// Anchors returns every <a> element with a non-empty href, in document order.
func (d *Document) Anchors() []webscrape.Anchor {
	var anchors []webscrape.Anchor
	d.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		anchors = append(anchors, webscrape.Anchor{
			Text: sel.Text(),
			Href: href,
		})
	})
	return anchors
}

// HTML serializes the document.
func (d *Document) HTML() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}
