// Package playwright implements webscrape.Launcher with playwright-go.
//
// The Playwright driver and a Chromium build must be installed beforehand
// (go run github.com/playwright-community/playwright-go/cmd/playwright install chromium).
// A missing driver is reported as EUNAVAILABLE when a session is launched.
package playwright

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/playwright-community/playwright-go"
)

// DefaultNavigationTimeout bounds navigation plus the wait for the load event.
const DefaultNavigationTimeout = 30 * time.Second

// Ensure Launcher implements webscrape.Launcher at compile time.
var _ webscrape.Launcher = (*Launcher)(nil)

// Launcher starts a Playwright driver and a headless Chromium per session.
type Launcher struct {
	timeout time.Duration
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithNavigationTimeout sets the per-page navigation timeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.timeout = d
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{timeout: DefaultNavigationTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts the driver and the browser.
func (l *Launcher) Launch(ctx context.Context) (webscrape.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "starting playwright driver")
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "launching chromium")
	}

	return &Session{pw: pw, browser: browser, timeout: l.timeout}, nil
}

// Ensure Session implements webscrape.Session at compile time.
var _ webscrape.Session = (*Session)(nil)

// Session owns a Playwright driver and one browser.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// NewPage opens a new page in a fresh browser context.
func (s *Session) NewPage(ctx context.Context) (webscrape.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, webscrape.Errorf(webscrape.EINVALID, "session is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := s.browser.NewPage()
	if err != nil {
		return nil, err
	}
	return &Page{page: page, timeout: s.timeout}, nil
}

// Close closes the browser and stops the driver. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return errors.Join(s.browser.Close(), s.pw.Stop())
}

// Ensure Page implements webscrape.Page at compile time.
var _ webscrape.Page = (*Page)(nil)

// Page is a Playwright page.
type Page struct {
	page    playwright.Page
	timeout time.Duration
}

// Navigate loads url and waits for the load event. Playwright calls are not
// context aware, so the navigation timeout is shortened to the context
// deadline when that comes first.
func (p *Page) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout, err := gotoTimeout(ctx, p.timeout)
	if err != nil {
		return err
	}

	_, err = p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(timeout),
	})
	if errors.Is(err, playwright.ErrTimeout) {
		return errors.Join(err, context.DeadlineExceeded)
	}
	return err
}

// HTML returns the serialized page content.
func (p *Page) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.page.Content()
}

// gotoTimeout returns the Goto timeout in milliseconds: limit, shortened to
// the context deadline. Playwright reads 0 as "no timeout", so a deadline
// less than a millisecond away is reported as exceeded instead.
func gotoTimeout(ctx context.Context, limit time.Duration) (float64, error) {
	timeout := limit
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout < time.Millisecond {
		return 0, context.DeadlineExceeded
	}
	return float64(timeout.Milliseconds()), nil
}
