// Package http provides a static, HTTP-only implementation of
// webscrape.Launcher for sites that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/webscrape"
)

// DefaultTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultNavigationTimeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies as a desktop browser; some sites serve
// stripped pages to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/50.0.2661.102 Safari/537.36"

// Ensure Launcher implements webscrape.Launcher at compile time.
var _ webscrape.Launcher = (*Launcher)(nil)

// Launcher hands out sessions that fetch raw HTML with plain GET requests.
// Unlike rod.Launcher, no JavaScript is executed.
type Launcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(l *Launcher) {
		l.userAgent = ua
	}
}

// NewLauncher creates a new HTTP-based Launcher.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Launch returns a new session. It never fails; the HTTP client is always
// available.
func (l *Launcher) Launch(ctx context.Context) (webscrape.Session, error) {
	return &Session{launcher: l}, nil
}

// Ensure Session implements webscrape.Session at compile time.
var _ webscrape.Session = (*Session)(nil)

// Session is a stateless HTTP session.
type Session struct {
	launcher *Launcher
	closed   bool
}

// NewPage returns an empty page.
func (s *Session) NewPage(ctx context.Context) (webscrape.Page, error) {
	if s.closed {
		return nil, webscrape.Errorf(webscrape.EINVALID, "session is closed")
	}
	return &Page{launcher: s.launcher}, nil
}

// Close releases resources. This is a no-op apart from marking the session
// closed since http.Client doesn't require explicit cleanup.
func (s *Session) Close() error {
	s.closed = true
	return nil
}

// Ensure Page implements webscrape.Page at compile time.
var _ webscrape.Page = (*Page)(nil)

// Page holds the body of the last successful navigation.
type Page struct {
	launcher *Launcher
	html     string
}

// Navigate retrieves the HTML content from the given URL.
func (p *Page) Navigate(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", p.launcher.userAgent)

	resp, err := p.launcher.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	p.html = string(body)
	return nil
}

// HTML returns the body fetched by the last Navigate.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.html, nil
}
