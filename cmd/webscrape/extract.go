package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/htmltomarkdown"
	"golang.org/x/sync/errgroup"
)

// windowSeparator is printed between text windows.
const windowSeparator = "-----"

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	opts := []webscrape.ScraperOption{
		webscrape.WithWindowSize(c.WindowSize),
		webscrape.WithStep(c.Step),
	}
	if c.Format == "markdown" {
		opts = append(opts, webscrape.WithConverter(htmltomarkdown.NewConverter()))
	}
	scraper := webscrape.NewScraper(deps.Launcher, deps.Parser, opts...)

	return extractAll(deps, c.URLs, scraper.ExtractText, func(windows []string) string {
		return strings.Join(windows, "\n"+windowSeparator+"\n")
	})
}

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	scraper := webscrape.NewScraper(deps.Launcher, deps.Parser)

	return extractAll(deps, c.URLs, scraper.ExtractLinks, func(links []string) string {
		return strings.Join(links, "\n")
	})
}

type extractResult struct {
	url   string
	items []string
	err   error
}

// extractAll runs extract for every URL, at most deps.Concurrency at a time,
// and prints the results in argument order. A failing URL does not stop the
// others.
func extractAll(deps *Dependencies, urls []string, extract func(context.Context, string) ([]string, error), render func([]string) string) error {
	concurrency := deps.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]extractResult, len(urls))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, url := range urls {
		g.Go(func() error {
			items, err := extract(gctx, url)
			results[i] = extractResult{url: url, items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.url, describe(r.err))
			continue
		}
		if len(urls) > 1 {
			fmt.Fprintf(deps.Stdout, "# %s\n", r.url)
		}
		if len(r.items) > 0 {
			fmt.Fprintln(deps.Stdout, render(r.items))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(urls))
	}
	return nil
}

// describe returns the user-facing message of err followed by its cause.
func describe(err error) string {
	msg := webscrape.ErrorMessage(err)
	if cause := errors.Unwrap(err); cause != nil {
		msg += ": " + cause.Error()
	}
	return msg
}
