// Package rod implements webscrape.Launcher with go-rod browser automation.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds navigation plus the wait for the load event.
const DefaultNavigationTimeout = 30 * time.Second

// Ensure Launcher implements webscrape.Launcher at compile time.
var _ webscrape.Launcher = (*Launcher)(nil)

// Launcher starts a fresh headless Chrome process per session.
// Launcher is safe for concurrent use; sessions are not.
type Launcher struct {
	timeout time.Duration
	bin     string
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithNavigationTimeout sets the per-page navigation timeout.
// Defaults to DefaultNavigationTimeout if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.timeout = d
	}
}

// WithBrowserBin sets the Chrome/Chromium executable. By default rod looks
// the browser up on the system and downloads one if none is found.
func WithBrowserBin(path string) Option {
	return func(l *Launcher) {
		l.bin = path
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

// Launch starts a headless browser and connects to it.
// Returns EUNAVAILABLE if Chrome cannot be found, downloaded or started.
func (l *Launcher) Launch(ctx context.Context) (webscrape.Session, error) {
	lnchr := launcher.New().
		Context(ctx).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if l.bin != "" {
		lnchr = lnchr.Bin(l.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "launching browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, webscrape.WrapError(webscrape.EUNAVAILABLE, err, "connecting to browser")
	}

	return &Session{browser: browser, launcher: lnchr, timeout: l.timeout}, nil
}

// Ensure Session implements webscrape.Session at compile time.
var _ webscrape.Session = (*Session)(nil)

// Session owns one browser process.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	closed   atomic.Bool
}

// NewPage opens a blank tab.
func (s *Session) NewPage(ctx context.Context) (webscrape.Page, error) {
	if s.closed.Load() {
		return nil, webscrape.Errorf(webscrape.EINVALID, "session is closed")
	}
	page, err := s.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return &Page{page: page, timeout: s.timeout}, nil
}

// Close closes the browser and kills its process. Close is safe to call
// multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// PID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) PID() int {
	return s.launcher.PID()
}

// Ensure Page implements webscrape.Page at compile time.
var _ webscrape.Page = (*Page)(nil)

// Page is a rod tab.
type Page struct {
	page    *rod.Page
	timeout time.Duration
}

// Navigate loads url and waits for the load event.
func (p *Page) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx).Timeout(p.timeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// HTML returns the rendered document.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}
