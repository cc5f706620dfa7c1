// Package htmltomarkdown renders sanitized page markup as Markdown so that
// extracted text keeps headings, lists and tables. Images are dropped and
// links are reduced to their text, so text windows carry no URLs.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webscrape"
	"golang.org/x/net/html"
)

// Ensure Converter implements webscrape.Converter at compile time.
var _ webscrape.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with the CommonMark and table plugins.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	// Registered early so they win over the CommonMark handlers.
	conv.Register.TagType("img", converter.TagTypeRemove, converter.PriorityEarly)
	conv.Register.RendererFor("a", converter.TagTypeInline, renderLinkText, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// renderLinkText renders an anchor as its content only.
func renderLinkText(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	ctx.RenderChildNodes(ctx, w, n)
	return converter.RenderSuccess
}

// Convert transforms a rendered page into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webscrape.Errorf(webscrape.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", webscrape.WrapError(webscrape.EPARSE, err, "converting HTML to markdown")
	}
	return md, nil
}
