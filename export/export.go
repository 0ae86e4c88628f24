// Package export serializes extracted records as JSON or CSV and packages
// them into downloadable archives.
package export

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Archive entry names.
const (
	DataFile = "data.json"
	QRFile   = "qr-code.png"
)

// Exporter serializes records. PageURL and Now fill the URL and Timestamp
// rows of CSV output.
type Exporter struct {
	PageURL string
	Now     func() time.Time
}

// NewExporter creates an Exporter for the page at pageURL.
func NewExporter(pageURL string) *Exporter {
	return &Exporter{PageURL: pageURL, Now: time.Now}
}

// Export renders rec in format. Returns EUNSUPPORTED for formats other
// than "json" and "csv".
func (e *Exporter) Export(rec *pagescrape.ExtractedRecord, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(rec)
	case FormatCSV:
		return []byte(e.csv(rec)), nil
	default:
		return nil, pagescrape.Errorf(pagescrape.EUNSUPPORTED, "unsupported format: %s", format)
	}
}

// MarshalJSON renders rec as JSON indented by two spaces.
func MarshalJSON(rec *pagescrape.ExtractedRecord) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}

// csv renders a summary of rec as comma-separated rows.
//
// Fields are joined without quoting, so a value containing a comma or a
// newline produces a malformed row.
func (e *Exporter) csv(rec *pagescrape.ExtractedRecord) string {
	var title string
	if rec != nil && rec.Metadata != nil {
		title = rec.Metadata.Title
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	rows := [][]string{
		{"Title", title},
		{"URL", e.PageURL},
		{"Timestamp", now().UTC().Format("2006-01-02T15:04:05.000Z")},
		{},
	}

	if rec != nil && rec.Content != nil && rec.Content.Main != nil {
		main := rec.Content.Main
		rows = append(rows,
			[]string{"Main Content"},
			[]string{"Title", main.Title},
			[]string{"Subtitle", main.Subtitle},
		)
		for _, s := range main.Sections {
			rows = append(rows, []string{}, []string{"Section", s.Title})
			for _, p := range s.Content {
				rows = append(rows, []string{"Content", p})
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}

// Package bundles rec as data.json and, when qrDataURL is not empty, the
// PNG it encodes as qr-code.png. Returns EINVALID if qrDataURL is not a
// base64 data URL.
func Package(rec *pagescrape.ExtractedRecord, qrDataURL string, builder pagescrape.ArchiveBuilder) ([]byte, error) {
	data, err := MarshalJSON(rec)
	if err != nil {
		return nil, err
	}
	if err := builder.AddFile(DataFile, data); err != nil {
		return nil, err
	}

	if qrDataURL != "" {
		png, err := DecodeDataURL(qrDataURL)
		if err != nil {
			return nil, err
		}
		if err := builder.AddFile(QRFile, png); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

// DecodeDataURL returns the payload of a base64 data URL such as
// "data:image/png;base64,iVBORw0...".
func DecodeDataURL(dataURL string) ([]byte, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid data URL")
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid data URL payload: %v", err)
	}
	return b, nil
}
