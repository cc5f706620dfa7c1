// Package slog provides log/slog decorators for the browser capability.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/google/uuid"
)

// Ensure LoggingLauncher implements webscrape.Launcher.
var _ webscrape.Launcher = (*LoggingLauncher)(nil)

// LoggingLauncher wraps a Launcher with logging. Every session it launches
// is tagged with a random session ID so concurrent calls can be told apart.
type LoggingLauncher struct {
	next   webscrape.Launcher
	logger *slog.Logger
}

// NewLoggingLauncher creates a new LoggingLauncher.
func NewLoggingLauncher(next webscrape.Launcher, logger *slog.Logger) *LoggingLauncher {
	return &LoggingLauncher{next: next, logger: logger}
}

// Launch delegates to the wrapped launcher and logs the launch.
func (l *LoggingLauncher) Launch(ctx context.Context) (webscrape.Session, error) {
	logger := l.logger.With("session", uuid.NewString())

	begin := time.Now()
	session, err := l.next.Launch(ctx)
	logger.Debug("launch",
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		return nil, err
	}
	return &loggingSession{next: session, logger: logger, begin: begin}, nil
}

type loggingSession struct {
	next   webscrape.Session
	logger *slog.Logger
	begin  time.Time
}

func (s *loggingSession) NewPage(ctx context.Context) (webscrape.Page, error) {
	page, err := s.next.NewPage(ctx)
	if err != nil {
		s.logger.Debug("new page", "err", err)
		return nil, err
	}
	return &loggingPage{next: page, logger: s.logger}, nil
}

func (s *loggingSession) Close() (err error) {
	defer func() {
		s.logger.Debug("close",
			"lifetime", time.Since(s.begin),
			"err", err,
		)
	}()
	return s.next.Close()
}

type loggingPage struct {
	next   webscrape.Page
	logger *slog.Logger
}

func (p *loggingPage) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Navigate(ctx, url)
}

func (p *loggingPage) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.HTML(ctx)
}
