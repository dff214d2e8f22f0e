// Package slog provides logging decorators for the scraping services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/deptscrape"
)

// Ensure LoggingParser implements deptscrape.PageParser.
var _ deptscrape.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser and logs each parsed page with its
// classification outcome.
type LoggingParser struct {
	next   deptscrape.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next deptscrape.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(pageURL, html string) (e *deptscrape.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if e != nil {
			pageType, review := deptscrape.Classify(e)
			attrs = append(attrs,
				"title", e.Title,
				"page_type", string(pageType),
				"faculty_links", e.Faculty.Count,
				"review", review,
			)
		}
		p.logger.Info("page parsed", attrs...)
	}(time.Now())
	return p.next.Parse(pageURL, html)
}
