package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingLoader implements pagescrape.DocumentLoader.
var _ pagescrape.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with logging.
type LoggingLoader struct {
	next   pagescrape.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next pagescrape.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load logs the URL, element count and duration and delegates to the
// wrapped loader.
func (l *LoggingLoader) Load(ctx context.Context, url string) (doc *pagescrape.Document, err error) {
	defer func(begin time.Time) {
		var elements int
		if doc != nil {
			elements = len(doc.FindAll())
		}
		l.logger.Info("load",
			"url", url,
			"elements", elements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}
