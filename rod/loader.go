// Package rod loads pages in headless Chrome using github.com/go-rod/rod.
//
// Unlike the static HTTP path, a rendered page carries layout: every node
// of the resulting Document has a viewport bounding box and loaded images
// report their natural size.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultLoadTimeout bounds navigation, load and snapshot of one page.
const DefaultLoadTimeout = 10 * time.Second

// Ensure Loader implements pagescrape.DocumentLoader at compile time.
var _ pagescrape.DocumentLoader = (*Loader)(nil)

// Loader renders pages in a managed browser and snapshots the DOM.
// Loader is safe for concurrent use by multiple goroutines.
type Loader struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithLoadTimeout sets the per-page timeout.
// Defaults to DefaultLoadTimeout (10s) if not specified.
func WithLoadTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// NewLoader creates a Loader that renders pages in the browsers of m.
// Closing the Loader closes m.
func NewLoader(m *BrowserManager, opts ...Option) *Loader {
	l := &Loader{
		manager: m,
		timeout: DefaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load navigates to url, waits for the load event and returns a snapshot
// of the rendered document.
func (l *Loader) Load(ctx context.Context, url string) (*pagescrape.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := l.manager.Browser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	res, err := page.Eval(snapshotJS)
	if err != nil {
		return nil, err
	}
	l.manager.PageDone()

	return decodeSnapshot(res.Value.Str())
}

// Close releases browser resources.
func (l *Loader) Close() error {
	return l.manager.Close()
}
