package goquery_test

import (
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements webscrape.Parser.
var _ webscrape.Parser = (*goquery.Parser)(nil)

func parse(t *testing.T, html string) webscrape.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

func TestDocument_RemoveElements(t *testing.T) {
	t.Parallel()

	t.Run("removes script and style with their content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><style>.x{color:red}</style></head>
<body><p>visible</p><script>var hidden = 1;</script><noscript>fallback</noscript></body></html>`)

		doc.RemoveElements("script", "style")

		text := doc.Text()
		assert.Contains(t, text, "visible")
		assert.Contains(t, text, "fallback")
		assert.NotContains(t, text, "hidden")
		assert.NotContains(t, text, "color:red")
	})

	t.Run("no tags is a no-op", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p>kept</p><script>kept()</script>`)

		doc.RemoveElements()

		assert.Contains(t, doc.Text(), "kept()")
	})
}

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	t.Run("concatenates text nodes in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<title>T</title><h1>One</h1><p>Two <b>bold</b></p><!-- comment -->`)

		assert.Equal(t, "TOneTwo bold", doc.Text())
	})

	t.Run("repairs malformed markup", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p>unclosed<span>nested</div>tail`)

		assert.Equal(t, "unclosednestedtail", doc.Text())
	})
}

func TestDocument_Anchors(t *testing.T) {
	t.Parallel()

	t.Run("returns anchors with non-empty href in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
<a href="/first">First</a>
<a>no href</a>
<a href="">empty</a>
<div><a href="https://ext.com/second"><span>Sec</span>ond</a></div>
<a href="#top">Top</a>
</body>`)

		anchors := doc.Anchors()

		assert.Equal(t, []webscrape.Anchor{
			{Text: "First", Href: "/first"},
			{Text: "Second", Href: "https://ext.com/second"},
			{Text: "Top", Href: "#top"},
		}, anchors)
	})

	t.Run("keeps raw text content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/x">
  Spaced
</a>`)

		anchors := doc.Anchors()

		require.Len(t, anchors, 1)
		assert.Equal(t, "\n  Spaced\n", anchors[0].Text)
	})

	t.Run("anchors inside removed elements disappear", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/a">A</a><nav><a href="/b">B</a></nav>`)

		doc.RemoveElements("nav")

		assert.Equal(t, []webscrape.Anchor{{Text: "A", Href: "/a"}}, doc.Anchors())
	})

	t.Run("returns nil when there are no anchors", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, parse(t, `<p>plain</p>`).Anchors())
	})
}

func TestDocument_HTML(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<p>para</p><script>x()</script>`)
	doc.RemoveElements("script")

	html, err := doc.HTML()

	require.NoError(t, err)
	assert.Contains(t, html, "<p>para</p>")
	assert.NotContains(t, html, "script")
}
