//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T, opts ...rod.Option) *rod.Loader {
	t.Helper()
	m, err := rod.NewBrowserManager()
	require.NoError(t, err)
	l := rod.NewLoader(m, opts...)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestLoader_Load_ReturnsRenderedTree(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Rendered</title></head>
<body style="margin:0">
<h1 id="heading" style="margin:0;height:40px">Loading...</h1>
<script>
document.getElementById('heading').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	doc, err := newLoader(t).Load(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Rendered", doc.Title)
	assert.Equal(t, srv.URL+"/", doc.URL)

	h1 := doc.Find("h1")
	require.NotNil(t, h1)
	assert.Equal(t, "JavaScript Rendered", h1.TextContent())
	assert.InDelta(t, 40, h1.Box.Height, 0.5)
	assert.Greater(t, h1.Box.Width, 0.0)
}

func TestLoader_Load_IncludesShadowDOM(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><body>
<nav-menu></nav-menu>
<script>
class NavMenu extends HTMLElement {
  constructor() {
    super();
    this.attachShadow({mode: 'open'}).innerHTML = '<a href="/one">One</a><a href="/two">Two</a>';
  }
}
customElements.define('nav-menu', NavMenu);
</script>
</body></html>`))
	}))
	defer srv.Close()

	doc, err := newLoader(t).Load(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Len(t, doc.FindAll("a"), 2)
}

func TestLoader_Load_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newLoader(t).Load(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Load_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	_, err := newLoader(t, rod.WithLoadTimeout(100*time.Millisecond)).Load(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoader_Load_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	m, err := rod.NewBrowserManager()
	require.NoError(t, err)
	l := rod.NewLoader(m)
	require.NoError(t, l.Close())

	_, err = l.Load(context.Background(), "http://example.com")

	assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
}
