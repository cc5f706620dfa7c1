//go:build integration

package playwright_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/fwojciec/webscrape/playwright"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_Page_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p id="p">static</p>
<script>document.getElementById('p').textContent = 'rendered';</script></body></html>`))
	}))
	defer srv.Close()

	ctx := context.Background()
	session, err := playwright.NewLauncher().Launch(ctx)
	require.NoError(t, err)
	defer session.Close()

	page, err := session.NewPage(ctx)
	require.NoError(t, err)
	require.NoError(t, page.Navigate(ctx, srv.URL))

	html, err := page.HTML(ctx)

	require.NoError(t, err)
	assert.Contains(t, html, "rendered")
}

func TestLauncher_Navigate_CanceledContext(t *testing.T) {
	t.Parallel()

	session, err := playwright.NewLauncher().Launch(context.Background())
	require.NoError(t, err)
	defer session.Close()

	page, err := session.NewPage(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = page.Navigate(ctx, "http://example.com")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestScraper_WithPlaywright_ExtractLinks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/a">A</a><a href="http://ext.com">B</a></body></html>`))
	}))
	defer srv.Close()

	scraper := webscrape.NewScraper(playwright.NewLauncher(), goquery.NewParser())

	links, err := scraper.ExtractLinks(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{"A (" + srv.URL + "/a)", "B (http://ext.com)"}, links)
}
