package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("builds a tree rooted at html", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Getting
   Started </title></head>
<body>
<!-- comment -->
<main><h1>Hello</h1><p class="lead">World</p></main>
</body>
</html>`

		doc, err := goquery.NewParser().Parse(html, "https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs/", doc.URL)
		assert.Equal(t, "Getting Started", doc.Title)
		require.NotNil(t, doc.Root)
		assert.Equal(t, "html", doc.Root.Tag)

		p := doc.Find("p")
		require.NotNil(t, p)
		assert.Equal(t, "World", p.TextContent())
		assert.Equal(t, "lead", p.AttrOr("class", ""))
		assert.Equal(t, pagescrape.Rect{}, p.Box)
	})

	t.Run("drops comments", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<body><!-- hidden --><p>x</p></body>`, "")

		require.NoError(t, err)
		body := doc.Body()
		require.NotNil(t, body)
		require.Len(t, body.Children, 1)
		assert.Equal(t, "p", body.Children[0].Tag)
	})

	t.Run("repairs an empty document", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse("", "")

		require.NoError(t, err)
		assert.Empty(t, doc.Title)
		assert.NotNil(t, doc.Find("head"))
		assert.NotNil(t, doc.Body())
	})

	t.Run("lower-cases tag names", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<BODY><NAV><A HREF="/x">X</A></NAV></BODY>`, "")

		require.NoError(t, err)
		a := doc.Find("a")
		require.NotNil(t, a)
		assert.Equal(t, "/x", a.AttrOr("href", ""))
	})
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", goquery.NormalizeWhitespace("  a\n\tb   c "))
	assert.Empty(t, goquery.NormalizeWhitespace(" \n "))
}
