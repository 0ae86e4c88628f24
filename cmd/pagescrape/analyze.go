package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagescrape/analytics"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	rec, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	analysis, err := analytics.Analyze(rec, c.URL)
	if err != nil {
		return err
	}

	var v any = analysis
	if c.Chart {
		v = analytics.ChartData(analysis)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
