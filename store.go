package deptscrape

import "context"

// RecordStore persists assembled page records for one run.
type RecordStore interface {
	// SaveRecord writes one record plus its review Markdown copy and
	// returns the stored filename.
	SaveRecord(ctx context.Context, rec *PageRecord, reviewMarkdown string) (string, error)

	// WriteSummary writes the run-level metadata and CSV summary.
	WriteSummary(ctx context.Context, summary *RunSummary) error
}

// RecordReader loads previously stored records, e.g. for the upload
// phase of a chained scrape-then-upload run.
type RecordReader interface {
	ReadRecords(ctx context.Context) ([]*PageRecord, error)
}
