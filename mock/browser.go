package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Launcher = (*Launcher)(nil)

// Launcher is a mock implementation of webscrape.Launcher.
type Launcher struct {
	LaunchFn func(ctx context.Context) (webscrape.Session, error)
}

func (l *Launcher) Launch(ctx context.Context) (webscrape.Session, error) {
	return l.LaunchFn(ctx)
}

var _ webscrape.Session = (*Session)(nil)

// Session is a mock implementation of webscrape.Session.
type Session struct {
	NewPageFn func(ctx context.Context) (webscrape.Page, error)
	CloseFn   func() error

	// CloseCalls counts Close invocations.
	CloseCalls int
}

func (s *Session) NewPage(ctx context.Context) (webscrape.Page, error) {
	return s.NewPageFn(ctx)
}

func (s *Session) Close() error {
	s.CloseCalls++
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ webscrape.Page = (*Page)(nil)

// Page is a mock implementation of webscrape.Page.
type Page struct {
	NavigateFn func(ctx context.Context, url string) error
	HTMLFn     func(ctx context.Context) (string, error)
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

// NewStaticLauncher returns a Launcher whose sessions serve html for any URL.
// The returned Session records how often it was closed.
func NewStaticLauncher(html string) (*Launcher, *Session) {
	session := &Session{
		NewPageFn: func(ctx context.Context) (webscrape.Page, error) {
			return &Page{
				NavigateFn: func(ctx context.Context, url string) error { return nil },
				HTMLFn:     func(ctx context.Context) (string, error) { return html, nil },
			}, nil
		},
	}
	launcher := &Launcher{
		LaunchFn: func(ctx context.Context) (webscrape.Session, error) {
			return session, nil
		},
	}
	return launcher, session
}
