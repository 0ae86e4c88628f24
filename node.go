package pagescrape

import "strings"

// NodeType identifies the kind of a Node.
type NodeType int

// Node types. Comments, doctypes and other markup are dropped when a tree
// is built.
const (
	ElementNode NodeType = iota
	TextNode
)

// Rect is a bounding box relative to the viewport at the time the tree
// was built. Sources without layout leave it zero.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Attribute is a single element attribute.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is an immutable snapshot of a document node. A tree of Nodes holds
// no reference back to the parser or browser that produced it.
type Node struct {
	Type     NodeType
	Tag      string // lower-case, elements only
	Data     string // text nodes only
	Attrs    []Attribute
	Children []*Node
	Box      Rect

	// Natural is the intrinsic pixel size of an image element, when the
	// source knows it.
	Natural *Dimensions
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute or def if it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// Is reports whether n is an element with one of the given tag names.
func (n *Node) Is(tags ...string) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	for _, t := range tags {
		if n.Tag == t {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and all its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Type == TextNode {
			b.WriteString(c.Data)
			continue
		}
		c.appendText(b)
	}
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant element, in document order, whose tag
// is one of tags. It returns nil if none match.
func (n *Node) Find(tags ...string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Is(tags...) {
			return c
		}
		if found := c.Find(tags...); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element whose tag is one of tags, in
// document order. An empty tags list matches every element.
func (n *Node) FindAll(tags ...string) []*Node {
	var out []*Node
	n.Walk(func(d *Node) {
		if d != n && d.Type == ElementNode && (len(tags) == 0 || d.Is(tags...)) {
			out = append(out, d)
		}
	})
	return out
}

// Walk calls fn for n and each of its descendants in document order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// NextElementSibling returns the element that immediately follows target
// among its siblings, searching the subtree rooted at n. It returns nil if
// target is not found or is the last element child.
func (n *Node) NextElementSibling(target *Node) *Node {
	if n == nil || target == nil {
		return nil
	}
	elems := n.Elements()
	for i, c := range elems {
		if c == target {
			if i+1 < len(elems) {
				return elems[i+1]
			}
			return nil
		}
	}
	for _, c := range elems {
		if next := c.NextElementSibling(target); next != nil {
			return next
		}
	}
	return nil
}

// Document is a parsed page.
type Document struct {
	// URL is the address the page was loaded from. Relative links and
	// image sources are resolved against it.
	URL string

	// Title is the text of the document's <title> element with
	// whitespace collapsed.
	Title string

	// Root is the <html> element.
	Root *Node
}

// Find returns the first element in the document matching one of tags,
// including the root itself.
func (d *Document) Find(tags ...string) *Node {
	if d.Root.Is(tags...) {
		return d.Root
	}
	return d.Root.Find(tags...)
}

// FindAll returns every element in the document matching one of tags,
// including the root itself. An empty tags list matches every element.
func (d *Document) FindAll(tags ...string) []*Node {
	if d.Root == nil {
		return nil
	}
	all := d.Root.FindAll(tags...)
	if len(tags) == 0 || d.Root.Is(tags...) {
		all = append([]*Node{d.Root}, all...)
	}
	return all
}

// Body returns the <body> element, or nil if the document has none.
func (d *Document) Body() *Node {
	return d.Find("body")
}
