package pagescrape

import "context"

// Parser turns HTML into a Document.
type Parser interface {
	// Parse parses html. The baseURL is recorded on the document and
	// used later to resolve relative links.
	Parse(html string, baseURL string) (*Document, error)
}

// DocumentLoader loads a URL into a Document.
// Implementations hide whether the page is fetched statically or rendered
// in a browser.
type DocumentLoader interface {
	Load(ctx context.Context, url string) (*Document, error)
}

// Extractor extracts a record from a loaded document.
type Extractor interface {
	// ExtractAll walks doc and returns everything it finds.
	// Returns EEXTRACT if the document is unusable.
	ExtractAll(ctx context.Context, doc *Document) (*ExtractedRecord, error)
}
