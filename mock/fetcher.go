package mock

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

var _ pagescrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagescrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagescrape.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagescrape.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
