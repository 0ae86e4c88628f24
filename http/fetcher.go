// Package http provides an HTTP-based implementation of pagescrape.Fetcher
// for pages that don't require JavaScript rendering and for image bytes.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultLoadTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps the bytes read from a single response.
const DefaultMaxBodySize = 32 << 20

// Ensure Fetcher implements pagescrape.Fetcher at compile time.
var _ pagescrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources using plain HTTP GET requests.
// Unlike rod.Loader, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBody   int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
// Longer bodies are rejected with EINVALID.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the resource at url. A 404 returns ENOTFOUND; any other
// non-2xx status is an error. The content type comes from the response
// header and is sniffed from the body when the header is missing.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagescrape.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, pagescrape.Errorf(pagescrape.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBody {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "response for %s exceeds %d bytes", url, f.maxBody)
	}

	return &pagescrape.Response{
		URL:         resp.Request.URL.String(),
		ContentType: contentType(resp.Header.Get("Content-Type"), body),
		Body:        body,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func contentType(header string, body []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(mimetype.Detect(body).String())
	return mt
}
