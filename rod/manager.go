package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/pagescrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is how many pages one Chrome process renders before it
// is replaced.
const DefaultMaxPages = 75

// chromeFlags keep background pages rendering at full speed inside
// containers.
var chromeFlags = []string{
	"disable-background-timer-throttling",
	"disable-backgrounding-occluded-windows",
	"disable-renderer-backgrounding",
	"disable-dev-shm-usage",
}

// session is one running Chrome process and the connection to it.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
}

func (s *session) close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// BrowserManager hands out a shared headless Chrome and starts a fresh one
// after maxPages loads, since a long-lived Chrome keeps growing in memory.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *session // nil once closed
	maxPages int64
	bin      string
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages a browser renders before it is
// replaced. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBrowserBin runs the Chrome binary at path instead of the one rod
// finds or downloads.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// NewBrowserManager starts the first browser. Call Close when done.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	s, err := bm.start()
	if err != nil {
		return nil, err
	}
	bm.current = s
	return bm, nil
}

// Browser returns the browser to render the next page with. When the
// current one has used up its page budget a replacement is started; if
// that fails the old browser keeps serving. Returns EINVALID after Close.
func (bm *BrowserManager) Browser() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.current == nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "browser manager is closed")
	}
	if bm.current.pages >= bm.maxPages {
		if next, err := bm.start(); err == nil {
			_ = bm.current.close()
			bm.current = next
		}
	}
	return bm.current.browser, nil
}

// PageDone counts a rendered page against the current browser's budget.
func (bm *BrowserManager) PageDone() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current != nil {
		bm.current.pages++
	}
}

// Close stops the browser. Further calls are no-ops.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.current == nil {
		return nil
	}
	err := bm.current.close()
	bm.current = nil
	return err
}

// LauncherPID returns the PID of the running Chrome launcher, or 0 after
// Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current == nil {
		return 0
	}
	return bm.current.launcher.PID()
}

func (bm *BrowserManager) start() (*session, error) {
	l := launcher.New().Leakless(true).Headless(true)
	for _, flag := range chromeFlags {
		l = l.Set(flag)
	}
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &session{browser: b, launcher: l}, nil
}
