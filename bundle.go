package pagescrape

import "context"

// QRLevel is a QR code error-correction level.
type QRLevel string

// Error-correction levels, from lowest to highest redundancy.
const (
	QRLevelLow     QRLevel = "L"
	QRLevelMedium  QRLevel = "M"
	QRLevelHigh    QRLevel = "Q"
	QRLevelHighest QRLevel = "H"
)

// QROptions configures QR code generation.
type QROptions struct {
	// Size is the image width and height in pixels.
	Size int

	Level QRLevel
}

// QREncoder renders payloads as QR code images.
type QREncoder interface {
	// Encode returns a PNG data URL ("data:image/png;base64,...").
	Encode(payload string, opts QROptions) (string, error)
}

// ArchiveBuilder assembles files into a single archive.
type ArchiveBuilder interface {
	AddFile(name string, data []byte) error
	Build() ([]byte, error)
}

// Downloader saves a finished artifact for the user.
type Downloader interface {
	Save(ctx context.Context, data []byte, filename string) error
}
