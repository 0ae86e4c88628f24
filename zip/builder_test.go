package zip_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fwojciec/pagescrape"
	pszip "github.com/fwojciec/pagescrape/zip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(b)
	}
	return out
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("writes added files", func(t *testing.T) {
		t.Parallel()

		b := pszip.NewBuilder(pszip.WithModified(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
		require.NoError(t, b.AddFile("data.json", []byte(`{"a":1}`)))
		require.NoError(t, b.AddFile("qr-code.png", []byte{0x89, 'P', 'N', 'G'}))

		data, err := b.Build()

		require.NoError(t, err)
		entries := readEntries(t, data)
		assert.Equal(t, map[string]string{
			"data.json":   `{"a":1}`,
			"qr-code.png": "\x89PNG",
		}, entries)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		b := pszip.NewBuilder()
		require.NoError(t, b.AddFile("a.txt", nil))

		err := b.AddFile("a.txt", nil)

		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})

	t.Run("rejects use after build", func(t *testing.T) {
		t.Parallel()

		b := pszip.NewBuilder()
		_, err := b.Build()
		require.NoError(t, err)

		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(b.AddFile("late.txt", nil)))
		_, err = b.Build()
		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})
}
