package webscrape

import "context"

// Launcher starts browser sessions.
// Implementations must check that their browser or driver is available at
// call time and report EUNAVAILABLE when it is not.
type Launcher interface {
	// Launch starts a new, exclusively owned browser session.
	// The caller must Close the session when done.
	Launch(ctx context.Context) (Session, error)
}

// Session is a running browser instance.
// A Session must not be shared between concurrent extraction calls.
type Session interface {
	// NewPage opens a new page (tab) in the session.
	NewPage(ctx context.Context) (Page, error)

	// Close releases the browser process and every page opened in it.
	Close() error
}

// Page is a single browser tab.
type Page interface {
	// Navigate loads the URL and blocks until the load event fires or the
	// navigation times out.
	Navigate(ctx context.Context, url string) error

	// HTML returns the fully rendered document markup.
	HTML(ctx context.Context) (string, error)
}
