// Package fs saves exported artifacts to the local file system.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Filename derives a download file name from a page URL.
// Example: https://example.com/docs/api/ with ext ".zip" → example.com-docs-api.zip
func Filename(pageURL, ext string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "invalid page URL: %v", err)
	}
	if u.Host == "" {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "page URL has no host: %s", pageURL)
	}

	parts := []string{u.Hostname()}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "-") + ext, nil
}

// Ensure Downloader implements pagescrape.Downloader at compile time.
var _ pagescrape.Downloader = (*Downloader)(nil)

// Downloader saves files into a base directory. Each file is written to a
// temporary file first and renamed into place, so a reader never sees a
// partial file.
type Downloader struct {
	baseDir string
}

// NewDownloader creates a Downloader that saves into baseDir.
func NewDownloader(baseDir string) *Downloader {
	return &Downloader{baseDir: baseDir}
}

// Save writes data to filename inside the base directory, replacing any
// existing file. Returns EINVALID if filename escapes the base directory.
func (d *Downloader) Save(ctx context.Context, data []byte, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filename == "" || !filepath.IsLocal(filename) {
		return pagescrape.Errorf(pagescrape.EINVALID, "invalid file name %q", filename)
	}

	fullPath := filepath.Join(d.baseDir, filename)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
