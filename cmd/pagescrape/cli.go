package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Scraper    *scrape.Scraper
	QR         pagescrape.QREncoder
	NewArchive func() pagescrape.ArchiveBuilder
	Downloader pagescrape.Downloader
	Now        func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout  time.Duration `short:"t" default:"10s" env:"PAGESCRAPE_TIMEOUT" help:"Timeout per page and image fetch"`
	LogLevel string        `default:"warn" env:"PAGESCRAPE_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	Dir      string        `short:"d" default:"." help:"Directory for saved files"`

	Extract  ExtractCmd  `cmd:"" help:"Extract a page as JSON or CSV"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Show link, image and structure statistics for a page"`
	Bundle   BundleCmd   `cmd:"" help:"Save a ZIP with the extracted data and a QR code"`
	Generate GenerateCmd `cmd:"" help:"Generate placeholder text themed after a domain"`
}

// rendered reports whether the selected command asked for browser rendering.
func (c *CLI) rendered() bool {
	return c.Extract.Render || c.Analyze.Render || c.Bundle.Render
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Format string `short:"f" default:"json" help:"Output format (json, csv)"`
	Render bool   `short:"r" help:"Render the page in headless Chrome"`
	Output string `short:"o" help:"Save to this file in --dir instead of printing"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Chart  bool   `help:"Print chart series instead of statistics"`
	Render bool   `short:"r" help:"Render the page in headless Chrome"`
}

// BundleCmd is the "bundle" subcommand.
type BundleCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Output  string `short:"o" help:"Archive file name (default: derived from the URL)"`
	NoQR    bool   `name:"no-qr" help:"Leave the QR code out of the archive"`
	QRSize  int    `name:"qr-size" default:"256" help:"QR code size in pixels"`
	QRLevel string `name:"qr-level" default:"M" enum:"L,M,Q,H" help:"QR error correction level (L, M, Q, H)"`
	Render  bool   `short:"r" help:"Render the page in headless Chrome"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Domain     string `arg:"" help:"Domain name whose theme selects the vocabulary"`
	Paragraphs int    `short:"n" default:"3" help:"Number of paragraphs"`
	Seed       uint64 `help:"Random seed for reproducible output (0: random)"`
}
