// Package goquery implements pagescrape.Parser on top of goquery and
// golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescrape"
	"golang.org/x/net/html"
)

// Ensure Parser implements pagescrape.Parser at compile time.
var _ pagescrape.Parser = (*Parser)(nil)

// Parser parses static HTML. The resulting tree has no layout: every
// bounding box is zero and image natural sizes are unknown.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a document tree rooted at <html>.
// Malformed markup is repaired the way browsers repair it.
func (p *Parser) Parse(rawHTML string, baseURL string) (*pagescrape.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Find("html").First()
	if root.Length() == 0 {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "failed to parse HTML: no root element")
	}

	return &pagescrape.Document{
		URL:   baseURL,
		Title: NormalizeWhitespace(doc.Find("title").First().Text()),
		Root:  convert(root.Get(0)),
	}, nil
}

// NormalizeWhitespace collapses runs of whitespace to a single space and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// convert copies an html.Node subtree into a pagescrape.Node tree,
// keeping only elements and text.
func convert(n *html.Node) *pagescrape.Node {
	out := &pagescrape.Node{}
	switch n.Type {
	case html.TextNode:
		out.Type = pagescrape.TextNode
		out.Data = n.Data
		return out
	case html.ElementNode:
		out.Type = pagescrape.ElementNode
		out.Tag = strings.ToLower(n.Data)
	default:
		return nil
	}

	if len(n.Attr) > 0 {
		out.Attrs = make([]pagescrape.Attribute, 0, len(n.Attr))
		for _, a := range n.Attr {
			out.Attrs = append(out.Attrs, pagescrape.Attribute{Name: a.Key, Value: a.Val})
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			out.Children = append(out.Children, child)
		}
	}
	return out
}
