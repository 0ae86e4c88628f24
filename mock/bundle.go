package mock

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

var (
	_ pagescrape.QREncoder      = (*QREncoder)(nil)
	_ pagescrape.ArchiveBuilder = (*ArchiveBuilder)(nil)
	_ pagescrape.Downloader     = (*Downloader)(nil)
)

// QREncoder is a mock implementation of pagescrape.QREncoder.
type QREncoder struct {
	EncodeFn func(payload string, opts pagescrape.QROptions) (string, error)
}

func (e *QREncoder) Encode(payload string, opts pagescrape.QROptions) (string, error) {
	return e.EncodeFn(payload, opts)
}

// ArchiveBuilder is a mock implementation of pagescrape.ArchiveBuilder.
type ArchiveBuilder struct {
	AddFileFn func(name string, data []byte) error
	BuildFn   func() ([]byte, error)
}

func (b *ArchiveBuilder) AddFile(name string, data []byte) error {
	return b.AddFileFn(name, data)
}

func (b *ArchiveBuilder) Build() ([]byte, error) {
	return b.BuildFn()
}

// Downloader is a mock implementation of pagescrape.Downloader.
type Downloader struct {
	SaveFn func(ctx context.Context, data []byte, filename string) error
}

func (d *Downloader) Save(ctx context.Context, data []byte, filename string) error {
	return d.SaveFn(ctx, data, filename)
}
