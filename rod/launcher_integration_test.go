//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/fwojciec/webscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Launcher implements webscrape.Launcher.
var _ webscrape.Launcher = (*rod.Launcher)(nil)

func TestLauncher_Page_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	ctx := context.Background()
	session, err := rod.NewLauncher().Launch(ctx)
	require.NoError(t, err)
	defer session.Close()

	page, err := session.NewPage(ctx)
	require.NoError(t, err)
	require.NoError(t, page.Navigate(ctx, srv.URL))

	html, err := page.HTML(ctx)

	require.NoError(t, err)
	assert.Contains(t, html, "JavaScript Rendered")
	assert.NotContains(t, html, "Loading...")
}

func TestLauncher_Navigate_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	ctx := context.Background()
	session, err := rod.NewLauncher(rod.WithNavigationTimeout(100 * time.Millisecond)).Launch(ctx)
	require.NoError(t, err)
	defer session.Close()

	page, err := session.NewPage(ctx)
	require.NoError(t, err)

	err = page.Navigate(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLauncher_Session_CloseIdempotent(t *testing.T) {
	t.Parallel()

	session, err := rod.NewLauncher().Launch(context.Background())
	require.NoError(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
}

func TestLauncher_Session_NewPageAfterClose(t *testing.T) {
	t.Parallel()

	session, err := rod.NewLauncher().Launch(context.Background())
	require.NoError(t, err)
	require.NoError(t, session.Close())

	_, err = session.NewPage(context.Background())

	require.Error(t, err)
	assert.Equal(t, webscrape.EINVALID, webscrape.ErrorCode(err))
	assert.Contains(t, webscrape.ErrorMessage(err), "closed")
}

func TestScraper_WithRod_ExtractLinks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
<a href="/a">A</a>
<script>document.body.insertAdjacentHTML('beforeend', '<a href="/b">B</a>');</script>
</body></html>`))
	}))
	defer srv.Close()

	scraper := webscrape.NewScraper(rod.NewLauncher(), goquery.NewParser())

	links, err := scraper.ExtractLinks(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{"A (" + srv.URL + "/a)", "B (" + srv.URL + "/b)"}, links)
}
