package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		ext     string
		want    string
		wantErr bool
	}{
		{
			name: "joins host and path",
			url:  "https://example.com/docs/api/users",
			ext:  ".zip",
			want: "example.com-docs-api-users.zip",
		},
		{
			name: "ignores trailing slash",
			url:  "https://example.com/docs/",
			ext:  ".json",
			want: "example.com-docs.json",
		},
		{
			name: "root path uses host",
			url:  "https://example.com/",
			ext:  ".csv",
			want: "example.com.csv",
		},
		{
			name: "drops port query and fragment",
			url:  "http://localhost:8080/a?x=1#top",
			ext:  ".zip",
			want: "localhost-a.zip",
		},
		{
			name:    "requires host",
			url:     "/relative/path",
			wantErr: true,
		},
		{
			name:    "rejects invalid URL",
			url:     "://bad",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.Filename(tt.url, tt.ext)
			if tt.wantErr {
				assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDownloader_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes file into base directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		d := fs.NewDownloader(dir)

		err := d.Save(context.Background(), []byte("payload"), "out/page.zip")

		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, "out", "page.zip"))
		require.NoError(t, err)
		assert.Equal(t, "payload", string(got))
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		d := fs.NewDownloader(dir)
		require.NoError(t, d.Save(context.Background(), []byte("old"), "page.json"))

		require.NoError(t, d.Save(context.Background(), []byte("new"), "page.json"))

		got, err := os.ReadFile(filepath.Join(dir, "page.json"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects names outside base directory", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDownloader(t.TempDir())

		for _, name := range []string{"", "../escape.zip", "/abs/path.zip"} {
			err := d.Save(context.Background(), []byte("x"), name)
			assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err), name)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewDownloader(dir).Save(ctx, []byte("x"), "page.zip")

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(filepath.Join(dir, "page.zip"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
