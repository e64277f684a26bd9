package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
)

// Ensure LoggingExtractor implements schemagen.Extractor.
var _ schemagen.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of what was found.
type LoggingExtractor struct {
	next   schemagen.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next schemagen.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs a summary of the result.
func (e *LoggingExtractor) Extract(html, sourceURL string) (data *schemagen.ExtractedData, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", sourceURL, "duration", time.Since(begin)}
		if data != nil {
			attrs = append(attrs,
				"title", data.Title,
				"body", len(data.ArticleBody),
				"breadcrumbs", len(data.Breadcrumbs),
				"faqs", len(data.FAQs),
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
