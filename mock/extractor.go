package mock

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

var (
	_ pagescrape.Parser         = (*Parser)(nil)
	_ pagescrape.DocumentLoader = (*DocumentLoader)(nil)
	_ pagescrape.Extractor      = (*Extractor)(nil)
)

// Parser is a mock implementation of pagescrape.Parser.
type Parser struct {
	ParseFn func(html string, baseURL string) (*pagescrape.Document, error)
}

func (p *Parser) Parse(html string, baseURL string) (*pagescrape.Document, error) {
	return p.ParseFn(html, baseURL)
}

// DocumentLoader is a mock implementation of pagescrape.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, url string) (*pagescrape.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, url string) (*pagescrape.Document, error) {
	return l.LoadFn(ctx, url)
}

// Extractor is a mock implementation of pagescrape.Extractor.
type Extractor struct {
	ExtractAllFn func(ctx context.Context, doc *pagescrape.Document) (*pagescrape.ExtractedRecord, error)
}

func (e *Extractor) ExtractAll(ctx context.Context, doc *pagescrape.Document) (*pagescrape.ExtractedRecord, error) {
	return e.ExtractAllFn(ctx, doc)
}
