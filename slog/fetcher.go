// Package slog provides logging decorators for pagescrape collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingFetcher implements pagescrape.Fetcher.
var _ pagescrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagescrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagescrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL, response size and duration and delegates to the
// wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *pagescrape.Response, err error) {
	defer func(begin time.Time) {
		var n int
		var contentType string
		if resp != nil {
			n = len(resp.Body)
			contentType = resp.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"type", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
