package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Launcher    webscrape.Launcher
	Parser      webscrape.Parser
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Backend     string        `short:"b" enum:"rod,chromedp,playwright,http" default:"rod" env:"WEBSCRAPE_BACKEND" help:"Browser backend (rod, chromedp, playwright, http)"`
	Timeout     time.Duration `short:"t" default:"30s" env:"WEBSCRAPE_TIMEOUT" help:"Navigation timeout per page"`
	Concurrency int           `short:"c" default:"1" env:"WEBSCRAPE_CONCURRENCY" help:"Pages fetched in parallel, each in its own browser"`
	Verbose     bool          `short:"v" help:"Log browser activity to stderr"`

	Text  TextCmd  `cmd:"" help:"Extract visible text as overlapping windows"`
	Links LinksCmd `cmd:"" help:"Extract hyperlinks with absolute URLs"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	URLs       []string `arg:"" name:"url" help:"Page URLs"`
	WindowSize int      `short:"w" default:"900" env:"WEBSCRAPE_WINDOW_SIZE" help:"Window length in characters"`
	Step       int      `short:"s" default:"800" env:"WEBSCRAPE_STEP" help:"Distance between window starts; must be smaller than the window"`
	Format     string   `short:"f" enum:"text,markdown" default:"text" help:"Render page text as plain text or markdown"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URLs []string `arg:"" name:"url" help:"Page URLs"`
}
