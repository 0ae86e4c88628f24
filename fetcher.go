package pagescrape

import "context"

// Response is the body of a fetched URL.
type Response struct {
	// URL is the final URL after redirects.
	URL string

	// ContentType is the MIME type without parameters.
	ContentType string

	Body []byte
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Fetcher retrieves resources over the network.
type Fetcher interface {
	// Fetch retrieves the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}
