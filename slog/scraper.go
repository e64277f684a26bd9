package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
)

// Ensure LoggingScraper implements schemagen.Scraper.
var _ schemagen.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging. Failures are logged at error
// level.
type LoggingScraper struct {
	next   schemagen.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next schemagen.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (data *schemagen.ExtractedData, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("scrape", "url", url, "duration", time.Since(begin), "err", err)
			return
		}
		s.logger.Info("scrape", "url", url, "title", data.Title, "duration", time.Since(begin))
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
