package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/extract"
	"github.com/fwojciec/pagescrape/fs"
	"github.com/fwojciec/pagescrape/goquery"
	pshttp "github.com/fwojciec/pagescrape/http"
	"github.com/fwojciec/pagescrape/qrcode"
	"github.com/fwojciec/pagescrape/rod"
	"github.com/fwojciec/pagescrape/scrape"
	psslog "github.com/fwojciec/pagescrape/slog"
	"github.com/fwojciec/pagescrape/zip"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loader, when set, replaces the HTTP and browser loaders.
	// Used for end-to-end testing.
	Loader pagescrape.DocumentLoader

	// ImageFetcher, when set, replaces the HTTP image fetcher.
	ImageFetcher pagescrape.Fetcher

	// QR and Downloader, when set, replace the QR encoder and the
	// file system downloader.
	QR         pagescrape.QREncoder
	Downloader pagescrape.Downloader

	// Now stamps CSV exports and archive entries. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescrape"),
		kong.Description("Extract, analyze and bundle the content of web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagescrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger
	deps.Downloader = m.Downloader
	if deps.Downloader == nil {
		deps.Downloader = fs.NewDownloader(cli.Dir)
	}
	deps.QR = m.QR
	if deps.QR == nil {
		deps.QR = qrcode.NewEncoder()
	}
	deps.NewArchive = func() pagescrape.ArchiveBuilder {
		return zip.NewBuilder(zip.WithModified(deps.now()))
	}

	if strings.HasPrefix(kongCtx.Command(), "generate") {
		return kongCtx.Run(deps)
	}

	images := m.ImageFetcher
	if images == nil {
		f := psslog.NewLoggingFetcher(pshttp.NewFetcher(pshttp.WithTimeout(cli.Timeout)), logger)
		defer f.Close()
		images = f
	}

	loader := m.Loader
	if loader == nil {
		if cli.rendered() {
			manager, err := rod.NewBrowserManager()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			l := rod.NewLoader(manager, rod.WithLoadTimeout(cli.Timeout))
			defer l.Close()
			loader = l
		} else {
			loader = &scrape.HTTPLoader{
				Fetcher: pshttp.NewFetcher(pshttp.WithTimeout(cli.Timeout)),
				Parser:  goquery.NewParser(),
			}
		}
		loader = psslog.NewLoggingLoader(loader, logger)
	}

	deps.Scraper = &scrape.Scraper{
		Loader: loader,
		Extractor: extract.NewExtractor(
			extract.WithImageFetcher(images),
			extract.WithLogger(logger),
		),
	}

	return kongCtx.Run(deps)
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler
// writing to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return slog.New(handler), nil
}
