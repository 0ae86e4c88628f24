// Package zip implements pagescrape.ArchiveBuilder with
// github.com/klauspost/compress/zip.
package zip

import (
	"bytes"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/klauspost/compress/zip"
)

// Ensure Builder implements pagescrape.ArchiveBuilder at compile time.
var _ pagescrape.ArchiveBuilder = (*Builder)(nil)

// Builder writes files into an in-memory ZIP archive.
// A Builder produces a single archive; Build finalizes it.
type Builder struct {
	buf      bytes.Buffer
	w        *zip.Writer
	modified time.Time
	names    map[string]bool
	built    bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithModified sets the modification time stamped on every entry.
// Defaults to the time the Builder was created.
func WithModified(t time.Time) Option {
	return func(b *Builder) {
		b.modified = t
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		modified: time.Now(),
		names:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.w = zip.NewWriter(&b.buf)
	return b
}

// AddFile adds a deflated entry. Returns EINVALID for an empty or
// duplicate name, or after Build.
func (b *Builder) AddFile(name string, data []byte) error {
	if b.built {
		return pagescrape.Errorf(pagescrape.EINVALID, "archive already built")
	}
	if name == "" {
		return pagescrape.Errorf(pagescrape.EINVALID, "archive entry name required")
	}
	if b.names[name] {
		return pagescrape.Errorf(pagescrape.EINVALID, "duplicate archive entry %q", name)
	}
	b.names[name] = true

	fw, err := b.w.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: b.modified,
	})
	if err != nil {
		return err
	}
	_, err = fw.Write(data)
	return err
}

// Build finalizes the archive and returns its bytes.
func (b *Builder) Build() ([]byte, error) {
	if b.built {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "archive already built")
	}
	b.built = true
	if err := b.w.Close(); err != nil {
		return nil, err
	}
	return b.buf.Bytes(), nil
}
