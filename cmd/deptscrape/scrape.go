package main

import (
	"fmt"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := deps.Source.URLs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deptscrape.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to scrape.")
		return nil
	}

	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d pages...\n", e.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", e.Completed, e.Total, e.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] FAILED %s: %s\n", e.Completed, e.Total, e.URL, deptscrape.ErrorMessage(e.Error))
		}
	}

	summary, err := deps.Scraper.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deptscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nScraped %d/%d pages (%d failed)\n",
		summary.PagesScraped, summary.TotalPages, summary.PagesFailed)

	for _, pt := range []deptscrape.PageType{
		deptscrape.PageStandard, deptscrape.PageSimple,
		deptscrape.PageParentOverview, deptscrape.PageMultiSpecialty,
		deptscrape.PageStructured, deptscrape.PageServiceComplex,
	} {
		if n := summary.TypeCounts[pt]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %s: %d\n", pt, n)
		}
	}

	for _, f := range summary.Failures {
		fmt.Fprintf(deps.Stdout, "  failed: %s (%s)\n", f.URL, f.Reason)
	}
	if len(summary.ReviewURLs) > 0 {
		fmt.Fprintf(deps.Stdout, "%d pages need manual review:\n", len(summary.ReviewURLs))
		for _, u := range summary.ReviewURLs {
			fmt.Fprintf(deps.Stdout, "  review: %s\n", u)
		}
	}
	if deps.OutputDir != "" {
		fmt.Fprintf(deps.Stdout, "Records written to %s\n", deps.OutputDir)
	}

	return nil
}
