package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Fetcher is expected
	var _ pagescrape.Fetcher = &mock.Fetcher{}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FetchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		f := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagescrape.Response, error) {
				calledWith = url
				return &pagescrape.Response{URL: url, Body: []byte("ok")}, nil
			},
		}

		resp, err := f.Fetch(context.Background(), "https://example.com/a.png")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a.png", calledWith)
		assert.Equal(t, "ok", resp.Text())
	})
}
