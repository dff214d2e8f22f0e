package deptscrape

// PageFailure records one failed URL with its reason, for the run
// summary's manual-retry list.
type PageFailure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// RunSummary aggregates per-page outcomes for one batch run. A failure
// of one URL never aborts the batch; it lands here instead.
type RunSummary struct {
	TotalPages   int           `json:"total_pages"`
	PagesScraped int           `json:"pages_scraped"`
	PagesFailed  int           `json:"pages_failed"`
	Failures     []PageFailure `json:"failures"`

	// ReviewURLs lists pages classified via the fallback rule.
	ReviewURLs []string `json:"review_urls,omitempty"`

	// TypeCounts holds the archetype distribution of the scraped pages.
	TypeCounts map[PageType]int `json:"type_counts,omitempty"`
}

// FailedURLs returns just the URLs from the failure list, in order.
func (s *RunSummary) FailedURLs() []string {
	urls := make([]string, 0, len(s.Failures))
	for _, f := range s.Failures {
		urls = append(urls, f.URL)
	}
	return urls
}

// CountPage adds a scraped page's archetype to the distribution.
func (s *RunSummary) CountPage(t PageType) {
	if s.TypeCounts == nil {
		s.TypeCounts = make(map[PageType]int)
	}
	s.TypeCounts[t]++
}

// RecordFailure appends a failure and updates the counters.
func (s *RunSummary) RecordFailure(url string, err error) {
	s.PagesFailed++
	s.Failures = append(s.Failures, PageFailure{URL: url, Reason: ErrorMessage(err)})
}

// TypeDistribution counts records per archetype.
func TypeDistribution(records []*PageRecord) map[PageType]int {
	dist := make(map[PageType]int)
	for _, rec := range records {
		dist[rec.PageType]++
	}
	return dist
}
