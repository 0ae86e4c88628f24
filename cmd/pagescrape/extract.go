package main

import (
	"fmt"

	"github.com/fwojciec/pagescrape/export"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rec, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	exporter := &export.Exporter{PageURL: c.URL, Now: deps.now}
	data, err := exporter.Export(rec, c.Format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}
	if err := deps.Downloader.Save(deps.Ctx, data, c.Output); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", c.Output, len(data))
	return nil
}
