// Package slog provides logging decorators for linkscrape services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/linkscrape"
)

// Ensure LoggingScraper implements linkscrape.Scraper.
var _ linkscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   linkscrape.Scraper
	logger *slog.Logger
	format string
}

// NewLoggingScraper creates a new LoggingScraper. The format label
// identifies the wrapped scraper in log output.
func NewLoggingScraper(next linkscrape.Scraper, logger *slog.Logger, format string) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger, format: format}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(r io.Reader) (links []linkscrape.Link, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape",
			"format", s.format,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(r)
}
