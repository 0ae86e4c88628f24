// Package scrape wires loading, extraction and cleaning into a single
// URL-to-record operation.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagescrape"
)

// Ensure HTTPLoader implements pagescrape.DocumentLoader at compile time.
var _ pagescrape.DocumentLoader = (*HTTPLoader)(nil)

// HTTPLoader loads documents by fetching raw HTML and parsing it. The
// resulting nodes carry no layout geometry.
type HTTPLoader struct {
	Fetcher pagescrape.Fetcher
	Parser  pagescrape.Parser
}

// Load fetches url and parses the body against the final URL after
// redirects.
func (l *HTTPLoader) Load(ctx context.Context, url string) (*pagescrape.Document, error) {
	resp, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, stageError("fetch page", err)
	}

	base := resp.URL
	if base == "" {
		base = url
	}
	doc, err := l.Parser.Parse(resp.Text(), base)
	if err != nil {
		return nil, stageError("parse page", err)
	}
	return doc, nil
}

// Scraper turns a URL into a cleaned record.
type Scraper struct {
	Loader    pagescrape.DocumentLoader
	Extractor pagescrape.Extractor
}

// Scrape loads url, extracts everything from it and returns the cleaned
// record. Any failure aborts the scrape with EEXTRACT.
func (s *Scraper) Scrape(ctx context.Context, url string) (*pagescrape.ExtractedRecord, error) {
	doc, err := s.Loader.Load(ctx, url)
	if err != nil {
		return nil, stageError("fetch page", err)
	}

	rec, err := s.Extractor.ExtractAll(ctx, doc)
	if err != nil {
		return nil, stageError("extract content", err)
	}
	return pagescrape.Clean(rec), nil
}

// stageError reports err as EEXTRACT naming the failed stage, keeping err
// in the chain for errors.Is. Errors that already carry EEXTRACT pass
// through unchanged.
func stageError(stage string, err error) error {
	if pagescrape.ErrorCode(err) == pagescrape.EEXTRACT {
		return err
	}
	return fmt.Errorf("%w: %w", pagescrape.Errorf(pagescrape.EEXTRACT, "%s", stage), err)
}
