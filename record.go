package pagescrape

// ExtractedRecord is everything extracted from a single page. It is plain
// data: no field refers back to the document it came from.
type ExtractedRecord struct {
	Metadata  *Metadata  `json:"metadata,omitempty"`
	Content   *Content   `json:"content,omitempty"`
	Links     []Link     `json:"links,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Structure *Structure `json:"structure,omitempty"`
}

// Metadata holds the document title and head references.
type Metadata struct {
	Title   string    `json:"title,omitempty"`
	Meta    []MetaTag `json:"meta,omitempty"`
	Scripts []string  `json:"scripts,omitempty"`
	Styles  []string  `json:"styles,omitempty"`
}

// MetaTag is a <meta> element with a name (or property) and content.
type MetaTag struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}

// Content groups the landmark regions of a page. Each region is nil when
// the page has no such element.
type Content struct {
	Navigation *Navigation  `json:"navigation,omitempty"`
	Main       *MainContent `json:"main,omitempty"`
	Footer     *Footer      `json:"footer,omitempty"`
}

// Navigation is the first <nav> element of a page.
type Navigation struct {
	Items []NavItem `json:"items,omitempty"`
}

// NavItem types.
const (
	NavItemLink   = "a"
	NavItemButton = "button"
)

// NavItem is a link or button inside the navigation.
type NavItem struct {
	Text string `json:"text,omitempty"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"` // links only
}

// MainContent is the first <main> element of a page.
type MainContent struct {
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// Section is a <section> inside the main content.
type Section struct {
	Title   string   `json:"title,omitempty"`
	Content []string `json:"content,omitempty"`
}

// Footer is the first <footer> element of a page.
type Footer struct {
	Text  string       `json:"text,omitempty"`
	Links []FooterLink `json:"links,omitempty"`
}

// FooterLink is a link inside the footer.
type FooterLink struct {
	Text string `json:"text,omitempty"`
	Href string `json:"href,omitempty"`
}

// Link is an <a> element anywhere in the page.
type Link struct {
	Text     string    `json:"text,omitempty"`
	Href     string    `json:"href,omitempty"`
	Title    string    `json:"title,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// Image is an <img> element anywhere in the page.
type Image struct {
	Src        string      `json:"src,omitempty"`
	Alt        string      `json:"alt,omitempty"`
	Title      string      `json:"title,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Location   *Location   `json:"location,omitempty"`

	// Set when the image bytes were fetched.
	Type     string `json:"type,omitempty"`
	Size     int    `json:"size,omitempty"`
	Checksum string `json:"checksum,omitempty"`

	// Data is the fetched bytes, base64 encoded.
	Data string `json:"base64,omitempty"`
}

// Dimensions is a pixel size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Location is a bounding box rounded to whole pixels.
type Location struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Structure summarises the shape of the document.
type Structure struct {
	Elements map[string]int `json:"elements,omitempty"`
	Depth    int            `json:"depth"`
	Headings []Heading      `json:"headings,omitempty"`
}

// Heading is an h1-h6 element.
type Heading struct {
	Level    int       `json:"level"`
	Text     string    `json:"text,omitempty"`
	Location *Location `json:"location,omitempty"`
}
