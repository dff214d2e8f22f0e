package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/deptscrape/fs"
	"github.com/fwojciec/deptscrape/goquery"
	"github.com/fwojciec/deptscrape/htmltomarkdown"
	depthttp "github.com/fwojciec/deptscrape/http"
	"github.com/fwojciec/deptscrape/scrape"
	deptslog "github.com/fwojciec/deptscrape/slog"
	"github.com/fwojciec/deptscrape/storyblok"
	"github.com/fwojciec/deptscrape/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("deptscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'deptscrape --help' to see available commands")
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

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "scrape" {
		cfg, err := loadConfig(cli.Scrape.Config)
		if err != nil {
			return err
		}
		if cli.Scrape.Output != "" {
			cfg.OutputBase = cli.Scrape.Output
		}
		if cli.Scrape.Delay > 0 {
			cfg.RequestDelay = cli.Scrape.Delay
		}

		fetcher := depthttp.NewFetcher(
			depthttp.WithTimeout(cfg.FetchTimeout),
			depthttp.WithUserAgent(cfg.UserAgent),
		)
		defer fetcher.Close()

		pageParser := deptslog.NewLoggingParser(goquery.NewParser(
			goquery.WithSourceHost(cfg.SourceHost),
			goquery.WithExcludedSections(cfg.ExcludedSections),
			goquery.WithFallback(trafilatura.NewExtractor()),
		), logger)

		store := fs.NewStore(cfg.OutputBase)
		deps.OutputDir = store.Dir()

		rps := 1.0
		if s := cfg.RequestDelay.Seconds(); s > 0 {
			rps = 1.0 / s
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Parser:      pageParser,
			Records:     store,
			Markdown:    htmltomarkdown.NewConverter(),
			RateLimiter: scrape.NewDomainLimiter(rps),
			Concurrency: cli.Scrape.Concurrency,
		}

		if cli.Scrape.Sitemap != "" {
			deps.Source = depthttp.NewSitemapSource(nil, cli.Scrape.Sitemap)
		} else {
			deps.Source = fs.NewLinksSource(cli.Scrape.Links)
		}
	}

	if cmd == "upload" {
		cfg, err := loadConfig(cli.Upload.Config)
		if err != nil {
			return err
		}

		token := os.Getenv("STORYBLOK_TOKEN")
		spaceID := os.Getenv("STORYBLOK_SPACE_ID")
		if token == "" || spaceID == "" {
			fmt.Fprintln(stderr, "Hint: set STORYBLOK_TOKEN and STORYBLOK_SPACE_ID")
			return fmt.Errorf("storyblok credentials not set")
		}

		client := storyblok.NewClient(token, spaceID,
			storyblok.WithBaseURL(cfg.Storyblok.BaseURL),
		)
		deps.Uploader = deptslog.NewLoggingUploader(&storyblok.Uploader{
			API:     client,
			Config:  cfg.Storyblok,
			Publish: cli.Upload.Publish,
		}, logger)
		deps.Reader = fs.NewReader(cli.Upload.Dir)
	}

	return kongCtx.Run(deps)
}
