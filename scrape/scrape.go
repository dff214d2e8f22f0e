// Package scrape orchestrates batch scraping of department pages.
// It coordinates rate-limited fetching, extraction, classification and
// storage, isolating per-page failures from the rest of the run.
package scrape

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/deptscrape"
	"golang.org/x/sync/errgroup"
)

// Scraper orchestrates scraping a list of department page URLs.
type Scraper struct {
	Fetcher     deptscrape.Fetcher
	Parser      deptscrape.PageParser
	Records     deptscrape.RecordStore
	Markdown    deptscrape.Converter
	RateLimiter deptscrape.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	record   *deptscrape.PageRecord
	markdown string
	err      error
}

// Run scrapes every URL in the list and saves the resulting records.
// A failing page never aborts the run; the failure is recorded in the
// returned summary and processing continues with the next URL. Records
// are saved in input order so file numbering stays stable between runs.
func (s *Scraper) Run(ctx context.Context, urls []string, progress ProgressFunc) (*deptscrape.RunSummary, error) {
	summary := &deptscrape.RunSummary{TotalPages: len(urls)}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, pageURL)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(urls))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		if result.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	for _, result := range results {
		if result.err != nil {
			summary.RecordFailure(result.url, result.err)
			continue
		}

		if _, err := s.Records.SaveRecord(ctx, result.record, result.markdown); err != nil {
			summary.RecordFailure(result.url, err)
			continue
		}

		summary.PagesScraped++
		summary.CountPage(result.record.PageType)
		if result.record.ReviewFlagged {
			summary.ReviewURLs = append(summary.ReviewURLs, result.url)
		}
	}

	if err := s.Records.WriteSummary(ctx, summary); err != nil {
		return summary, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return summary, nil
}

// processURL fetches, parses and assembles a single page.
func (s *Scraper) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{position: position, url: pageURL}

	if s.RateLimiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = deptscrape.Errorf(deptscrape.EINVALID, "invalid URL %q", pageURL)
			return result
		}
		if err := s.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	extraction, err := s.Parser.Parse(pageURL, html)
	if err != nil {
		result.err = err
		return result
	}

	record, err := deptscrape.Assemble(pageURL, extraction)
	if err != nil {
		result.err = err
		return result
	}
	result.record = record

	// Review copy is best effort; a conversion failure never fails the page.
	if s.Markdown != nil && extraction.BodyHTML != "" {
		if md, err := s.Markdown.Convert(extraction.BodyHTML); err == nil {
			result.markdown = md
		}
	}

	return result
}
