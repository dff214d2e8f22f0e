package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Source   deptscrape.URLSource
	Scraper  *scrape.Scraper
	Reader   deptscrape.RecordReader
	Uploader deptscrape.Uploader

	// OutputDir is the run directory records are written to, for the
	// end-of-run report.
	OutputDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape department pages and write structured records"`
	Upload UploadCmd `cmd:"" help:"Upload records from a run directory to Storyblok"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Links       string        `short:"l" default:"links.txt" help:"Links file with one URL per line"`
	Sitemap     string        `help:"Discover URLs from this base URL's sitemaps instead of a links file"`
	Config      string        `short:"c" help:"YAML config file overlaid on built-in defaults"`
	Output      string        `short:"o" help:"Base directory for the run folder"`
	Concurrency int           `default:"1" help:"Concurrent fetch limit"`
	Delay       time.Duration `help:"Delay between requests to the same domain (overrides config)"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	Dir     string `arg:"" help:"Run directory containing record JSON files"`
	Config  string `short:"c" help:"YAML config file overlaid on built-in defaults"`
	Publish bool   `help:"Publish stories immediately instead of leaving drafts"`
}
