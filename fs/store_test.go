package fs_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements deptscrape.RecordStore at compile time.
var _ deptscrape.RecordStore = (*fs.Store)(nil)

func testRecord(url, title string) *deptscrape.PageRecord {
	return &deptscrape.PageRecord{
		URL:        url,
		PageTitle:  title,
		HasH1Title: true,
		BodyContent: deptscrape.BodyContent{
			MainParagraphs: "The clinic provides outpatient services.",
			WordCount:      6,
		},
		FacultyLinks: deptscrape.FacultyLinkGroup{
			Count:   1,
			Pattern: deptscrape.FacultySingle,
			Links:   []deptscrape.FacultyLink{{Text: "Meet our team", URL: "/findadoctor.aspx"}},
		},
		AppointmentSection: deptscrape.AppointmentSection{
			Present: true,
			Components: deptscrape.AppointmentComponents{
				FamilyHifazat: deptscrape.FamilyHifazat{MainLinkPresent: true},
			},
		},
		PageType: deptscrape.PageSimple,
	}
}

func TestStore_SaveRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes numbered JSON files into a timestamped run directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStore(base)

		path1, err := store.SaveRecord(context.Background(), testRecord("https://x/a", "Cardiology"), "")
		require.NoError(t, err)
		path2, err := store.SaveRecord(context.Background(), testRecord("https://x/b", "Neurology"), "")
		require.NoError(t, err)

		assert.Equal(t, "1_Cardiology.json", filepath.Base(path1))
		assert.Equal(t, "2_Neurology.json", filepath.Base(path2))
		assert.True(t, strings.HasPrefix(filepath.Base(store.Dir()), "output_"))

		data, err := os.ReadFile(path1)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "Cardiology", decoded["page_title"])
		assert.Equal(t, "simple", decoded["page_type_classification"])
	})

	t.Run("sanitizes titles for filenames", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		path, err := store.SaveRecord(context.Background(), testRecord("https://x/a", `Ear Nose "and" Throat?`), "")

		require.NoError(t, err)
		assert.Equal(t, "1_Ear_Nose_and_Throat.json", filepath.Base(path))
	})

	t.Run("writes a markdown review copy when provided", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		path, err := store.SaveRecord(context.Background(), testRecord("https://x/a", "Cardiology"), "# Cardiology\n")
		require.NoError(t, err)

		mdPath := strings.TrimSuffix(path, ".json") + ".md"
		data, err := os.ReadFile(mdPath)
		require.NoError(t, err)
		assert.Equal(t, "# Cardiology\n", string(data))
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		_, err := store.SaveRecord(context.Background(), &deptscrape.PageRecord{}, "")

		assert.Equal(t, deptscrape.EINVALID, deptscrape.ErrorCode(err))
	})
}

func TestStore_WriteSummary(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewStore(base)
	ctx := context.Background()

	_, err := store.SaveRecord(ctx, testRecord("https://x/a", "Cardiology"), "")
	require.NoError(t, err)

	summary := &deptscrape.RunSummary{
		TotalPages:   2,
		PagesScraped: 1,
		ReviewURLs:   []string{"https://x/odd"},
	}
	summary.RecordFailure("https://x/bad", deptscrape.Errorf(deptscrape.EFETCH, "HTTP 500"))

	require.NoError(t, store.WriteSummary(ctx, summary))

	t.Run("metadata.json has the scrape_metadata shape", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(store.Dir(), "metadata.json"))
		require.NoError(t, err)

		var meta struct {
			ScrapeMetadata struct {
				TotalPages   int      `json:"total_pages"`
				PagesScraped int      `json:"pages_scraped"`
				PagesFailed  int      `json:"pages_failed"`
				FailedURLs   []string `json:"failed_urls"`
				ReviewURLs   []string `json:"review_urls"`
				OutputFolder string   `json:"output_folder"`
			} `json:"scrape_metadata"`
			Summary struct {
				TotalFiles    int               `json:"total_files"`
				FilePattern   string            `json:"file_pattern"`
				ContentHashes map[string]string `json:"content_hashes"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(data, &meta))

		assert.Equal(t, 2, meta.ScrapeMetadata.TotalPages)
		assert.Equal(t, 1, meta.ScrapeMetadata.PagesScraped)
		assert.Equal(t, 1, meta.ScrapeMetadata.PagesFailed)
		assert.Equal(t, []string{"https://x/bad"}, meta.ScrapeMetadata.FailedURLs)
		assert.Equal(t, []string{"https://x/odd"}, meta.ScrapeMetadata.ReviewURLs)
		assert.Equal(t, filepath.Base(store.Dir()), meta.ScrapeMetadata.OutputFolder)
		assert.Equal(t, 1, meta.Summary.TotalFiles)
		assert.Equal(t, "{number}_{page_title}.json", meta.Summary.FilePattern)
		assert.NotEmpty(t, meta.Summary.ContentHashes["1_Cardiology.json"])
	})

	t.Run("summary.csv has the expected header and rows", func(t *testing.T) {
		f, err := os.Open(filepath.Join(store.Dir(), "summary.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, []string{
			"file_number", "url", "page_title", "has_h1", "page_type",
			"body_word_count", "faculty_link_count", "has_appointment",
			"has_click_button", "has_apps", "subsection_count",
		}, rows[0])
		assert.Equal(t, "1", rows[1][0])
		assert.Equal(t, "https://x/a", rows[1][1])
		assert.Equal(t, "Cardiology", rows[1][2])
		assert.Equal(t, "true", rows[1][3])
		assert.Equal(t, "simple", rows[1][4])
		assert.Equal(t, "true", rows[1][7])

		// has_apps follows the Family Hifazat main link, not the
		// store badges.
		assert.Equal(t, "false", rows[1][8])
		assert.Equal(t, "true", rows[1][9])
	})
}
