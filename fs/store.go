// Package fs provides file-based storage for scraped page records.
// Each run writes into a fresh timestamped directory containing one
// JSON file per page, an optional Markdown review copy, a metadata
// file and a CSV summary.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/deptscrape"
)

// runDirLayout is the timestamp layout for run directory names,
// e.g. output_2026-08-31_153045.
const runDirLayout = "2006-01-02_150405"

// Ensure Store implements deptscrape.RecordStore at compile time.
var _ deptscrape.RecordStore = (*Store)(nil)

// Store writes page records into a timestamped run directory under
// baseDir. File numbering starts at 1 and follows save order.
type Store struct {
	mu      sync.Mutex
	baseDir string
	runName string
	next    int
	rows    []csvRow
	hashes  map[string]string
}

// csvRow holds one line of the run summary CSV.
type csvRow struct {
	fileNumber       int
	url              string
	pageTitle        string
	hasH1            bool
	pageType         deptscrape.PageType
	bodyWordCount    int
	facultyLinkCount int
	hasAppointment   bool
	hasClickButton   bool
	hasApps          bool
	subsectionCount  int
}

// NewStore creates a Store whose run directory name is derived from
// the current time. The directory itself is created on first save.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		runName: "output_" + time.Now().Format(runDirLayout),
		next:    1,
		hashes:  make(map[string]string),
	}
}

// Dir returns the absolute path of the run directory.
func (s *Store) Dir() string {
	return filepath.Join(s.baseDir, s.runName)
}

// SaveRecord writes the record as numbered JSON and, when
// reviewMarkdown is non-empty, a Markdown copy next to it.
// It returns the path of the JSON file.
func (s *Store) SaveRecord(ctx context.Context, rec *deptscrape.PageRecord, reviewMarkdown string) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return "", err
	}

	n := s.next
	s.next++

	base := fmt.Sprintf("%d_%s", n, deptscrape.SanitizeFilename(rec.PageTitle))
	jsonPath := filepath.Join(s.Dir(), base+".json")

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", err
	}

	if reviewMarkdown != "" {
		mdPath := filepath.Join(s.Dir(), base+".md")
		if err := os.WriteFile(mdPath, []byte(reviewMarkdown), 0644); err != nil {
			return "", err
		}
	}

	s.hashes[base+".json"] = fmt.Sprintf("%x", xxhash.Sum64(data))
	s.rows = append(s.rows, csvRow{
		fileNumber:       n,
		url:              rec.URL,
		pageTitle:        rec.PageTitle,
		hasH1:            rec.HasH1Title,
		pageType:         rec.PageType,
		bodyWordCount:    rec.BodyContent.WordCount,
		facultyLinkCount: rec.FacultyLinks.Count,
		hasAppointment:   rec.AppointmentSection.Present,
		hasClickButton:   rec.AppointmentSection.Components.ClickHereLink.Present,
		hasApps:          rec.AppointmentSection.Components.FamilyHifazat.MainLinkPresent,
		subsectionCount:  rec.SubsectionLinks.Count,
	})

	return jsonPath, nil
}

// runMetadata is the shape of metadata.json.
type runMetadata struct {
	ScrapeMetadata struct {
		Date         string   `json:"date"`
		TotalPages   int      `json:"total_pages"`
		PagesScraped int      `json:"pages_scraped"`
		PagesFailed  int      `json:"pages_failed"`
		FailedURLs   []string `json:"failed_urls"`
		ReviewURLs   []string `json:"review_urls,omitempty"`
		OutputFolder string   `json:"output_folder"`
	} `json:"scrape_metadata"`
	Summary struct {
		TotalFiles    int               `json:"total_files"`
		FilePattern   string            `json:"file_pattern"`
		ContentHashes map[string]string `json:"content_hashes"`
	} `json:"summary"`
}

// WriteSummary writes metadata.json and summary.csv into the run
// directory.
func (s *Store) WriteSummary(ctx context.Context, summary *deptscrape.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return err
	}

	var meta runMetadata
	meta.ScrapeMetadata.Date = time.Now().Format("2006-01-02 15:04:05")
	meta.ScrapeMetadata.TotalPages = summary.TotalPages
	meta.ScrapeMetadata.PagesScraped = summary.PagesScraped
	meta.ScrapeMetadata.PagesFailed = summary.PagesFailed
	meta.ScrapeMetadata.FailedURLs = summary.FailedURLs()
	if meta.ScrapeMetadata.FailedURLs == nil {
		meta.ScrapeMetadata.FailedURLs = []string{}
	}
	meta.ScrapeMetadata.ReviewURLs = summary.ReviewURLs
	meta.ScrapeMetadata.OutputFolder = s.runName
	meta.Summary.TotalFiles = len(s.rows)
	meta.Summary.FilePattern = "{number}_{page_title}.json"
	meta.Summary.ContentHashes = s.hashes

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "metadata.json"), data, 0644); err != nil {
		return err
	}

	return s.writeCSV()
}

func (s *Store) writeCSV() error {
	f, err := os.Create(filepath.Join(s.Dir(), "summary.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"file_number", "url", "page_title", "has_h1", "page_type",
		"body_word_count", "faculty_link_count", "has_appointment",
		"has_click_button", "has_apps", "subsection_count",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range s.rows {
		row := []string{
			strconv.Itoa(r.fileNumber),
			r.url,
			r.pageTitle,
			strconv.FormatBool(r.hasH1),
			string(r.pageType),
			strconv.Itoa(r.bodyWordCount),
			strconv.Itoa(r.facultyLinkCount),
			strconv.FormatBool(r.hasAppointment),
			strconv.FormatBool(r.hasClickButton),
			strconv.FormatBool(r.hasApps),
			strconv.Itoa(r.subsectionCount),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
