package main

import (
	"fmt"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/export"
	"github.com/fwojciec/pagescrape/fs"
)

// Run executes the bundle command. The QR code encodes the page URL.
func (c *BundleCmd) Run(deps *Dependencies) error {
	rec, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	var qr string
	if !c.NoQR {
		qr, err = deps.QR.Encode(c.URL, pagescrape.QROptions{
			Size:  c.QRSize,
			Level: pagescrape.QRLevel(c.QRLevel),
		})
		if err != nil {
			return fmt.Errorf("qr code: %w", err)
		}
	}

	data, err := export.Package(rec, qr, deps.NewArchive())
	if err != nil {
		return err
	}

	name := c.Output
	if name == "" {
		if name, err = fs.Filename(c.URL, ".zip"); err != nil {
			return err
		}
	}
	if err := deps.Downloader.Save(deps.Ctx, data, name); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", name, len(data))
	return nil
}
