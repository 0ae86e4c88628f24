// Package extract turns a parsed document into an ExtractedRecord.
//
// Extraction is a single read-only pass over the node tree. The only
// network access is the optional, strictly sequential fetch of each image.
package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"log/slog"
	"math"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagescrape"
	"github.com/google/uuid"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor extracts metadata, landmark regions, links, images and
// structure statistics from a document.
type Extractor struct {
	images pagescrape.Fetcher
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithImageFetcher makes the extractor fetch every image it finds.
// Images whose fetch fails are logged and left out of the record.
// Without a fetcher no image is fetched and all images are kept.
func WithImageFetcher(f pagescrape.Fetcher) Option {
	return func(e *Extractor) {
		e.images = f
	}
}

// WithLogger sets the logger used for image warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractAll walks doc and returns the raw, uncleaned record.
// Missing regions are nil rather than errors. Returns EEXTRACT if doc has
// no tree or an unparsable URL.
func (e *Extractor) ExtractAll(ctx context.Context, doc *pagescrape.Document) (*pagescrape.ExtractedRecord, error) {
	if doc == nil || doc.Root == nil {
		return nil, pagescrape.Errorf(pagescrape.EEXTRACT, "extract content: document has no content")
	}

	x, err := e.begin(doc)
	if err != nil {
		return nil, err
	}

	images, err := x.extractImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	return &pagescrape.ExtractedRecord{
		Metadata: x.extractMetadata(),
		Content: &pagescrape.Content{
			Navigation: x.extractNavigation(),
			Main:       x.extractMain(),
			Footer:     x.extractFooter(),
		},
		Links:     x.extractLinks(),
		Images:    images,
		Structure: x.analyzeStructure(),
	}, nil
}

// extraction holds the state of a single ExtractAll call.
type extraction struct {
	id     string
	doc    *pagescrape.Document
	base   *url.URL
	images pagescrape.Fetcher
	logger *slog.Logger

	// fetched caches image responses by resolved URL so a repeated
	// source is fetched once per call.
	fetched map[string]fetchResult
}

type fetchResult struct {
	resp *pagescrape.Response
	err  error
}

func (e *Extractor) begin(doc *pagescrape.Document) (*extraction, error) {
	x := &extraction{
		id:      uuid.NewString(),
		doc:     doc,
		images:  e.images,
		fetched: make(map[string]fetchResult),
	}
	x.logger = e.logger.With("run", x.id)

	if doc.URL != "" {
		base, err := url.Parse(doc.URL)
		if err != nil {
			return nil, pagescrape.Errorf(pagescrape.EEXTRACT, "extract content: invalid document URL: %v", err)
		}
		x.base = base
	}
	return x, nil
}

// href returns the href attribute of n as an absolute URL, the way a
// browser reports the href property: a missing attribute is empty and an
// empty one is the document URL without its fragment.
func (x *extraction) href(n *pagescrape.Node) string {
	ref, ok := n.Attr("href")
	if !ok {
		return ""
	}
	if strings.TrimSpace(ref) == "" && x.base != nil {
		self := *x.base
		self.Fragment, self.RawFragment = "", ""
		return self.String()
	}
	return x.resolve(ref)
}

// resolve returns ref as an absolute URL, the way a browser reports the
// src property of an image. Empty and unparsable references are returned
// unchanged.
func (x *extraction) resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || x.base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return x.base.ResolveReference(u).String()
}

func (x *extraction) extractMetadata() *pagescrape.Metadata {
	m := &pagescrape.Metadata{Title: x.doc.Title}

	for _, n := range x.doc.FindAll("meta") {
		name := n.AttrOr("name", "")
		if name == "" {
			name = n.AttrOr("property", "")
		}
		content := n.AttrOr("content", "")
		if name == "" || content == "" {
			continue
		}
		m.Meta = append(m.Meta, pagescrape.MetaTag{Name: name, Content: content})
	}

	for _, n := range x.doc.FindAll("script") {
		if src, ok := n.Attr("src"); ok {
			m.Scripts = append(m.Scripts, x.resolve(src))
		}
	}

	for _, n := range x.doc.FindAll("link") {
		if n.AttrOr("rel", "") != "stylesheet" {
			continue
		}
		m.Styles = append(m.Styles, x.href(n))
	}

	return m
}

func (x *extraction) extractNavigation() *pagescrape.Navigation {
	nav := x.doc.Find("nav")
	if nav == nil {
		return nil
	}

	out := &pagescrape.Navigation{}
	for _, n := range nav.FindAll("a", "button") {
		item := pagescrape.NavItem{
			Text: strings.TrimSpace(n.TextContent()),
			Type: n.Tag,
		}
		if n.Tag == pagescrape.NavItemLink {
			item.Href = x.href(n)
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func (x *extraction) extractMain() *pagescrape.MainContent {
	main := x.doc.Find("main")
	if main == nil {
		return nil
	}

	out := &pagescrape.MainContent{}
	if h1 := main.Find("h1"); h1 != nil {
		out.Title = strings.TrimSpace(h1.TextContent())
		if next := main.NextElementSibling(h1); next.Is("p") {
			out.Subtitle = strings.TrimSpace(next.TextContent())
		}
	}

	for _, s := range main.FindAll("section") {
		section := pagescrape.Section{}
		if h := s.Find("h2", "h3"); h != nil {
			section.Title = strings.TrimSpace(h.TextContent())
		}
		for _, c := range s.Elements() {
			if c.Is("p") {
				section.Content = append(section.Content, strings.TrimSpace(c.TextContent()))
			}
		}
		out.Sections = append(out.Sections, section)
	}
	return out
}

func (x *extraction) extractFooter() *pagescrape.Footer {
	footer := x.doc.Find("footer")
	if footer == nil {
		return nil
	}

	out := &pagescrape.Footer{Text: strings.TrimSpace(footer.TextContent())}
	for _, a := range footer.FindAll("a") {
		out.Links = append(out.Links, pagescrape.FooterLink{
			Text: strings.TrimSpace(a.TextContent()),
			Href: x.href(a),
		})
	}
	return out
}

func (x *extraction) extractLinks() []pagescrape.Link {
	var links []pagescrape.Link
	for _, a := range x.doc.FindAll("a") {
		links = append(links, pagescrape.Link{
			Text:     strings.TrimSpace(a.TextContent()),
			Href:     x.href(a),
			Title:    a.AttrOr("title", ""),
			Location: location(a),
		})
	}
	return links
}

// extractImages processes images one at a time in document order.
// A failed image fetch is logged and the image dropped; only context
// cancellation aborts the extraction.
func (x *extraction) extractImages(ctx context.Context) ([]pagescrape.Image, error) {
	var images []pagescrape.Image
	for _, n := range x.doc.FindAll("img") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img := pagescrape.Image{
			Src:      x.resolve(n.AttrOr("src", "")),
			Alt:      n.AttrOr("alt", ""),
			Title:    n.AttrOr("title", ""),
			Location: location(n),
		}
		if n.Natural != nil {
			d := *n.Natural
			img.Dimensions = &d
		}

		if x.images != nil && img.Src != "" && !strings.HasPrefix(img.Src, "data:") {
			resp, err := x.fetchImage(ctx, img.Src)
			if err != nil {
				warning := pagescrape.Errorf(pagescrape.EIMAGEFETCH, "fetch image %s: %v", img.Src, err)
				x.logger.Warn("image skipped", "src", img.Src, "err", warning)
				continue
			}
			if err := describeImage(&img, resp); err != nil {
				warning := pagescrape.Errorf(pagescrape.EIMAGEFETCH, "encode image %s: %v", img.Src, err)
				x.logger.Warn("image skipped", "src", img.Src, "err", warning)
				continue
			}
		}

		images = append(images, img)
	}
	return images, nil
}

func (x *extraction) fetchImage(ctx context.Context, src string) (*pagescrape.Response, error) {
	if r, ok := x.fetched[src]; ok {
		return r.resp, r.err
	}
	resp, err := x.images.Fetch(ctx, src)
	x.fetched[src] = fetchResult{resp: resp, err: err}
	return resp, err
}

// describeImage embeds the fetched bytes in img and records what they say
// about it. Formats without a registered decoder leave the dimensions
// unknown; only a failed encode rejects the image.
func describeImage(img *pagescrape.Image, resp *pagescrape.Response) error {
	data, err := encodeImage(resp.Body)
	if err != nil {
		return err
	}
	img.Data = data
	img.Type = resp.ContentType
	img.Size = len(resp.Body)
	img.Checksum = fmt.Sprintf("%016x", xxhash.Sum64(resp.Body))

	if img.Dimensions != nil {
		return nil
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(resp.Body)); err == nil {
		img.Dimensions = &pagescrape.Dimensions{Width: cfg.Width, Height: cfg.Height}
	}
	return nil
}

// encodeImage returns body as standard base64. An empty body has nothing
// to embed and is an error.
func encodeImage(body []byte) (string, error) {
	if len(body) == 0 {
		return "", errors.New("empty image body")
	}
	var b strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &b)
	if _, err := enc.Write(body); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (x *extraction) analyzeStructure() *pagescrape.Structure {
	s := &pagescrape.Structure{
		Elements: make(map[string]int),
		Depth:    maxDepth(x.doc.Body(), 0),
	}

	for _, n := range x.doc.FindAll() {
		s.Elements[n.Tag]++
	}

	for _, h := range x.doc.FindAll("h1", "h2", "h3", "h4", "h5", "h6") {
		s.Headings = append(s.Headings, pagescrape.Heading{
			Level:    int(h.Tag[1] - '0'),
			Text:     strings.TrimSpace(h.TextContent()),
			Location: location(h),
		})
	}
	return s
}

// maxDepth returns the deepest element nesting below n, counting n as
// depth current. A leaf has the depth of its own position.
func maxDepth(n *pagescrape.Node, current int) int {
	if n == nil {
		return 0
	}
	deepest := current
	for _, c := range n.Elements() {
		deepest = max(deepest, maxDepth(c, current+1))
	}
	return deepest
}

// location snapshots the bounding box of n in whole pixels.
func location(n *pagescrape.Node) *pagescrape.Location {
	return &pagescrape.Location{
		X:      round(n.Box.X),
		Y:      round(n.Box.Y),
		Width:  round(n.Box.Width),
		Height: round(n.Box.Height),
	}
}

// round rounds half up, matching how browsers report rounded geometry.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
