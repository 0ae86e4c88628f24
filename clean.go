package pagescrape

import (
	"maps"
	"strings"
)

// Clean returns a copy of rec with every string trimmed and every empty
// value pruned: blank strings, empty lists, list entries left with no
// fields and sub-records left with no fields. Children are cleaned before
// their parent is checked, so a region that only held blank entries
// disappears along with them. Numbers are never pruned.
//
// Clean never fails and is idempotent. A nil record cleans to nil.
func Clean(rec *ExtractedRecord) *ExtractedRecord {
	if rec == nil {
		return nil
	}
	return &ExtractedRecord{
		Metadata:  cleanMetadata(rec.Metadata),
		Content:   cleanContent(rec.Content),
		Links:     cleanList(rec.Links, cleanLink),
		Images:    cleanList(rec.Images, cleanImage),
		Structure: cleanStructure(rec.Structure),
	}
}

// cleanList cleans each entry with fn and keeps the non-empty ones.
// It returns nil when nothing is left.
func cleanList[T any](in []T, fn func(T) (T, bool)) []T {
	var out []T
	for _, v := range in {
		if c, ok := fn(v); ok {
			out = append(out, c)
		}
	}
	return out
}

func cleanString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func cleanMetadata(m *Metadata) *Metadata {
	if m == nil {
		return nil
	}
	out := &Metadata{
		Title:   strings.TrimSpace(m.Title),
		Meta:    cleanList(m.Meta, cleanMetaTag),
		Scripts: cleanList(m.Scripts, cleanString),
		Styles:  cleanList(m.Styles, cleanString),
	}
	if out.Title == "" && out.Meta == nil && out.Scripts == nil && out.Styles == nil {
		return nil
	}
	return out
}

func cleanMetaTag(t MetaTag) (MetaTag, bool) {
	t.Name = strings.TrimSpace(t.Name)
	t.Content = strings.TrimSpace(t.Content)
	return t, t.Name != "" || t.Content != ""
}

func cleanContent(c *Content) *Content {
	if c == nil {
		return nil
	}
	out := &Content{
		Navigation: cleanNavigation(c.Navigation),
		Main:       cleanMain(c.Main),
		Footer:     cleanFooter(c.Footer),
	}
	if out.Navigation == nil && out.Main == nil && out.Footer == nil {
		return nil
	}
	return out
}

func cleanNavigation(n *Navigation) *Navigation {
	if n == nil {
		return nil
	}
	items := cleanList(n.Items, cleanNavItem)
	if items == nil {
		return nil
	}
	return &Navigation{Items: items}
}

func cleanNavItem(it NavItem) (NavItem, bool) {
	it.Text = strings.TrimSpace(it.Text)
	it.Type = strings.TrimSpace(it.Type)
	it.Href = strings.TrimSpace(it.Href)
	return it, it.Text != "" || it.Type != "" || it.Href != ""
}

func cleanMain(m *MainContent) *MainContent {
	if m == nil {
		return nil
	}
	out := &MainContent{
		Title:    strings.TrimSpace(m.Title),
		Subtitle: strings.TrimSpace(m.Subtitle),
		Sections: cleanList(m.Sections, cleanSection),
	}
	if out.Title == "" && out.Subtitle == "" && out.Sections == nil {
		return nil
	}
	return out
}

func cleanSection(s Section) (Section, bool) {
	s.Title = strings.TrimSpace(s.Title)
	s.Content = cleanList(s.Content, cleanString)
	return s, s.Title != "" || s.Content != nil
}

func cleanFooter(f *Footer) *Footer {
	if f == nil {
		return nil
	}
	out := &Footer{
		Text:  strings.TrimSpace(f.Text),
		Links: cleanList(f.Links, cleanFooterLink),
	}
	if out.Text == "" && out.Links == nil {
		return nil
	}
	return out
}

func cleanFooterLink(l FooterLink) (FooterLink, bool) {
	l.Text = strings.TrimSpace(l.Text)
	l.Href = strings.TrimSpace(l.Href)
	return l, l.Text != "" || l.Href != ""
}

func cleanLink(l Link) (Link, bool) {
	l.Text = strings.TrimSpace(l.Text)
	l.Href = strings.TrimSpace(l.Href)
	l.Title = strings.TrimSpace(l.Title)
	l.Location = copyLocation(l.Location)
	return l, l.Text != "" || l.Href != "" || l.Title != "" || l.Location != nil
}

func cleanImage(img Image) (Image, bool) {
	img.Src = strings.TrimSpace(img.Src)
	img.Alt = strings.TrimSpace(img.Alt)
	img.Title = strings.TrimSpace(img.Title)
	img.Type = strings.TrimSpace(img.Type)
	img.Checksum = strings.TrimSpace(img.Checksum)
	img.Data = strings.TrimSpace(img.Data)
	img.Location = copyLocation(img.Location)
	if img.Dimensions != nil {
		d := *img.Dimensions
		img.Dimensions = &d
	}
	return img, img.Src != "" || img.Alt != "" || img.Title != "" ||
		img.Type != "" || img.Checksum != "" || img.Data != "" || img.Size != 0 ||
		img.Dimensions != nil || img.Location != nil
}

func cleanStructure(s *Structure) *Structure {
	if s == nil {
		return nil
	}
	out := &Structure{
		Depth:    s.Depth,
		Headings: cleanList(s.Headings, cleanHeading),
	}
	if len(s.Elements) > 0 {
		out.Elements = maps.Clone(s.Elements)
	}
	return out
}

func cleanHeading(h Heading) (Heading, bool) {
	h.Text = strings.TrimSpace(h.Text)
	h.Location = copyLocation(h.Location)
	return h, true
}

func copyLocation(l *Location) *Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
