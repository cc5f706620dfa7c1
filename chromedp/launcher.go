// Package chromedp implements webscrape.Launcher with the Chrome DevTools
// Protocol through chromedp.
package chromedp

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/fwojciec/webscrape"
)

// DefaultNavigationTimeout bounds navigation plus the wait for the load event.
const DefaultNavigationTimeout = 30 * time.Second

// Ensure Launcher implements webscrape.Launcher at compile time.
var _ webscrape.Launcher = (*Launcher)(nil)

// Launcher starts a fresh headless Chrome process per session.
type Launcher struct {
	timeout   time.Duration
	execPath  string
	noSandbox bool
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithNavigationTimeout sets the per-page navigation timeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.timeout = d
	}
}

// WithExecPath sets the Chrome executable. By default chromedp searches the
// usual install locations.
func WithExecPath(path string) Option {
	return func(l *Launcher) {
		l.execPath = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required when running
// as root inside most containers.
func WithNoSandbox(v bool) Option {
	return func(l *Launcher) {
		l.noSandbox = v
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

// Launch starts the browser eagerly so that a missing or broken Chrome
// surfaces here as EUNAVAILABLE rather than on first navigation.
func (l *Launcher) Launch(ctx context.Context) (webscrape.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", true),
	)
	if l.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(l.execPath))
	}
	if l.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	// The browser outlives the launch call, so it must not inherit ctx.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "starting browser")
	}

	return &Session{
		timeout:       l.timeout,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}, nil
}

// Ensure Session implements webscrape.Session at compile time.
var _ webscrape.Session = (*Session)(nil)

// Session owns one browser process and the tabs opened in it.
type Session struct {
	timeout       time.Duration
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc

	mu      sync.Mutex
	closed  bool
	cancels []context.CancelFunc
}

// NewPage opens a new tab. The tab stays attached until the session is
// closed.
func (s *Session) NewPage(ctx context.Context) (webscrape.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, webscrape.Errorf(webscrape.EINVALID, "session is closed")
	}

	tabCtx, tabCancel := chromedp.NewContext(s.browserCtx)
	// The first Run attaches the tab and binds its event loop to tabCtx.
	// Running it under a per-call timeout would stop the loop when that
	// call returns.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "opening tab")
	}
	s.cancels = append(s.cancels, tabCancel)
	return &Page{ctx: tabCtx, timeout: s.timeout}, nil
}

// Close closes every tab, shuts the browser down and releases the process.
// Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, cancel := range s.cancels {
		cancel()
	}
	err := chromedp.Cancel(s.browserCtx)
	s.browserCancel()
	s.allocCancel()
	return err
}

// Ensure Page implements webscrape.Page at compile time.
var _ webscrape.Page = (*Page)(nil)

// Page is a chromedp tab.
type Page struct {
	ctx     context.Context
	timeout time.Duration
}

// Navigate loads url and waits for the load event.
func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, chromedp.Navigate(url))
}

// HTML returns the outer HTML of the document element.
func (p *Page) HTML(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// run executes actions on the tab, bounded by both the caller's context and
// the navigation timeout.
func (p *Page) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
