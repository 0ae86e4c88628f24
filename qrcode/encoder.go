// Package qrcode implements pagescrape.QREncoder with
// github.com/skip2/go-qrcode.
package qrcode

import (
	"encoding/base64"

	"github.com/fwojciec/pagescrape"
	qr "github.com/skip2/go-qrcode"
)

// Ensure Encoder implements pagescrape.QREncoder at compile time.
var _ pagescrape.QREncoder = (*Encoder)(nil)

// Defaults applied when QROptions fields are zero.
const (
	DefaultSize  = 256
	DefaultLevel = pagescrape.QRLevelMedium
)

// DataURLPrefix starts every URL returned by Encode.
const DataURLPrefix = "data:image/png;base64,"

var levels = map[pagescrape.QRLevel]qr.RecoveryLevel{
	pagescrape.QRLevelLow:     qr.Low,
	pagescrape.QRLevelMedium:  qr.Medium,
	pagescrape.QRLevelHigh:    qr.High,
	pagescrape.QRLevelHighest: qr.Highest,
}

// Encoder renders QR codes as PNG data URLs.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders payload as a square PNG of opts.Size pixels.
func (e *Encoder) Encode(payload string, opts pagescrape.QROptions) (string, error) {
	if payload == "" {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "qr payload required")
	}

	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "invalid qr size %d", size)
	}

	name := opts.Level
	if name == "" {
		name = DefaultLevel
	}
	level, ok := levels[name]
	if !ok {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "unknown qr level %q", name)
	}

	png, err := qr.Encode(payload, level, size)
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "encode qr: %v", err)
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
