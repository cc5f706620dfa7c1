package webscrape

import (
	"context"
	"errors"
)

// nonContentTags are removed from every document before extraction.
var nonContentTags = []string{"script", "style"}

// Scraper runs the extract-text and extract-links operations.
//
// Every call launches its own browser session and releases it before
// returning, so a Scraper is safe for concurrent use by multiple goroutines.
type Scraper struct {
	launcher   Launcher
	parser     Parser
	converter  Converter
	windowSize int
	step       int
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithWindowSize sets the text window length. Defaults to DefaultWindowSize.
func WithWindowSize(n int) ScraperOption {
	return func(s *Scraper) {
		s.windowSize = n
	}
}

// WithStep sets the distance between window starts. Defaults to DefaultStep.
func WithStep(n int) ScraperOption {
	return func(s *Scraper) {
		s.step = n
	}
}

// WithConverter renders page text as Markdown through c instead of
// collecting plain text nodes. The converter decides which elements, such as
// images or link targets, reach the output.
func WithConverter(c Converter) ScraperOption {
	return func(s *Scraper) {
		s.converter = c
	}
}

// NewScraper creates a Scraper that fetches pages through launcher and
// parses them with parser.
func NewScraper(launcher Launcher, parser Parser, opts ...ScraperOption) *Scraper {
	s := &Scraper{
		launcher:   launcher,
		parser:     parser,
		windowSize: DefaultWindowSize,
		step:       DefaultStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractText renders the page at url and returns its visible text,
// normalized and split into overlapping windows.
func (s *Scraper) ExtractText(ctx context.Context, url string) ([]string, error) {
	// Reject bad parameters before paying for a browser launch.
	if _, err := ChunkText("", s.windowSize, s.step); err != nil {
		return nil, err
	}

	var text string
	err := s.withDocument(ctx, url, func(doc Document) error {
		if s.converter == nil {
			text = doc.Text()
			return nil
		}
		html, err := doc.HTML()
		if err != nil {
			return WrapError(EPARSE, err, "serializing document")
		}
		if text, err = s.converter.Convert(html); err != nil {
			return WrapError(EPARSE, err, "converting to markdown")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ChunkText(Normalize(text), s.windowSize, s.step)
}

// ExtractLinks renders the page at url and returns every hyperlink on it
// formatted as "text (absolute url)", in document order.
func (s *Scraper) ExtractLinks(ctx context.Context, url string) ([]string, error) {
	var links []Hyperlink
	err := s.withDocument(ctx, url, func(doc Document) (err error) {
		links, err = ExtractHyperlinks(doc.Anchors(), url)
		return err
	})
	if err != nil {
		return nil, err
	}
	return FormatHyperlinks(links), nil
}

// withDocument acquires a session, loads url, parses and sanitizes the
// rendered markup and passes it to fn. The session is closed on every path.
func (s *Scraper) withDocument(ctx context.Context, url string, fn func(Document) error) (err error) {
	if err := ctx.Err(); err != nil {
		return WrapError(ENAVIGATION, err, "fetching %s", url)
	}

	session, err := s.launcher.Launch(ctx)
	if err != nil {
		return asError(EUNAVAILABLE, err, "launching browser")
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = WrapError(EINTERNAL, cerr, "closing browser")
		}
	}()

	html, err := s.render(ctx, session, url)
	if err != nil {
		return err
	}

	doc, err := s.parser.Parse(html)
	if err != nil {
		return asError(EPARSE, err, "parsing HTML")
	}
	doc.RemoveElements(nonContentTags...)

	return fn(doc)
}

// render opens a page in session and returns the markup of url.
func (s *Scraper) render(ctx context.Context, session Session, url string) (string, error) {
	page, err := session.NewPage(ctx)
	if err != nil {
		return "", asError(EUNAVAILABLE, err, "opening page")
	}
	if err := page.Navigate(ctx, url); err != nil {
		return "", asError(ENAVIGATION, err, "navigating to %s", url)
	}
	html, err := page.HTML(ctx)
	if err != nil {
		return "", asError(ENAVIGATION, err, "reading HTML of %s", url)
	}
	return html, nil
}

// asError passes application errors through unchanged and wraps anything
// else with the given code.
func asError(code string, err error, format string, args ...any) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return WrapError(code, err, format, args...)
}
