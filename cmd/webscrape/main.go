package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/chromedp"
	"github.com/fwojciec/webscrape/goquery"
	scrapehttp "github.com/fwojciec/webscrape/http"
	"github.com/fwojciec/webscrape/playwright"
	"github.com/fwojciec/webscrape/rod"
	scrapeslog "github.com/fwojciec/webscrape/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Launcher overrides the --backend selection. Set before calling Run().
	Launcher webscrape.Launcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webscrape"),
		kong.Description("Render web pages in a headless browser and extract text windows or links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	launcher := m.Launcher
	if launcher == nil {
		launcher = newLauncher(cli.Backend, cli.Timeout)
	}
	deps.Launcher = scrapeslog.NewLoggingLauncher(launcher, logger)
	deps.Parser = goquery.NewParser()
	deps.Concurrency = cli.Concurrency

	return kongCtx.Run(deps)
}

// newLauncher returns the browser backend named by the --backend flag.
// Kong validates the name against the enum, so unknown names never get here.
func newLauncher(backend string, timeout time.Duration) webscrape.Launcher {
	switch backend {
	case "chromedp":
		return chromedp.NewLauncher(chromedp.WithNavigationTimeout(timeout))
	case "playwright":
		return playwright.NewLauncher(playwright.WithNavigationTimeout(timeout))
	case "http":
		return scrapehttp.NewLauncher(scrapehttp.WithTimeout(timeout))
	default:
		return rod.NewLauncher(rod.WithNavigationTimeout(timeout))
	}
}
