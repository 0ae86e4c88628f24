package rod

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// snapshotJS serializes the rendered DOM, including open shadow roots, with
// viewport geometry from getBoundingClientRect and the natural size of
// loaded images. It returns a JSON string so the result crosses the CDP
// boundary as a single value.
//
// Open shadow roots are walked before light children, so extracted counts
// include shadow content that querySelectorAll on the document misses.
const snapshotJS = `() => {
	const walk = (n) => {
		if (n.nodeType === Node.TEXT_NODE) {
			return {type: "text", data: n.data};
		}
		if (n.nodeType !== Node.ELEMENT_NODE) {
			return null;
		}
		const r = n.getBoundingClientRect();
		const out = {
			type: "element",
			tag: n.tagName.toLowerCase(),
			attrs: Array.from(n.attributes, (a) => ({name: a.name, value: a.value})),
			box: {x: r.x, y: r.y, width: r.width, height: r.height},
			children: [],
		};
		if (n instanceof HTMLImageElement && n.complete && n.naturalWidth > 0) {
			out.natural = {width: n.naturalWidth, height: n.naturalHeight};
		}
		const kids = n.shadowRoot ? [...n.shadowRoot.childNodes, ...n.childNodes] : n.childNodes;
		for (const c of kids) {
			const s = walk(c);
			if (s) out.children.push(s);
		}
		return out;
	};
	return JSON.stringify({url: location.href, title: document.title, root: walk(document.documentElement)});
}`

type snapshot struct {
	URL   string        `json:"url"`
	Title string        `json:"title"`
	Root  *snapshotNode `json:"root"`
}

type snapshotNode struct {
	Type     string                 `json:"type"`
	Tag      string                 `json:"tag"`
	Data     string                 `json:"data"`
	Attrs    []pagescrape.Attribute `json:"attrs"`
	Box      *pagescrape.Rect       `json:"box"`
	Natural  *pagescrape.Dimensions `json:"natural"`
	Children []*snapshotNode        `json:"children"`
}

// decodeSnapshot converts the output of snapshotJS into a Document.
func decodeSnapshot(data string) (*pagescrape.Document, error) {
	var s snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "decode page snapshot: %v", err)
	}
	if s.Root == nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "page snapshot has no document element")
	}
	return &pagescrape.Document{
		URL:   s.URL,
		Title: strings.Join(strings.Fields(s.Title), " "),
		Root:  s.Root.node(),
	}, nil
}

func (s *snapshotNode) node() *pagescrape.Node {
	if s.Type == "text" {
		return &pagescrape.Node{Type: pagescrape.TextNode, Data: s.Data}
	}

	n := &pagescrape.Node{
		Type:    pagescrape.ElementNode,
		Tag:     s.Tag,
		Attrs:   s.Attrs,
		Natural: s.Natural,
	}
	if s.Box != nil {
		n.Box = *s.Box
	}
	for _, c := range s.Children {
		if c != nil {
			n.Children = append(n.Children, c.node())
		}
	}
	return n
}
