package mock

import (
	"context"

	"github.com/fwojciec/deptscrape"
)

var _ deptscrape.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of deptscrape.RecordStore.
type RecordStore struct {
	SaveRecordFn   func(ctx context.Context, rec *deptscrape.PageRecord, reviewMarkdown string) (string, error)
	WriteSummaryFn func(ctx context.Context, summary *deptscrape.RunSummary) error
}

func (s *RecordStore) SaveRecord(ctx context.Context, rec *deptscrape.PageRecord, reviewMarkdown string) (string, error) {
	return s.SaveRecordFn(ctx, rec, reviewMarkdown)
}

func (s *RecordStore) WriteSummary(ctx context.Context, summary *deptscrape.RunSummary) error {
	if s.WriteSummaryFn == nil {
		return nil
	}
	return s.WriteSummaryFn(ctx, summary)
}

var _ deptscrape.RecordReader = (*RecordReader)(nil)

// RecordReader is a mock implementation of deptscrape.RecordReader.
type RecordReader struct {
	ReadRecordsFn func(ctx context.Context) ([]*deptscrape.PageRecord, error)
}

func (r *RecordReader) ReadRecords(ctx context.Context) ([]*deptscrape.PageRecord, error) {
	return r.ReadRecordsFn(ctx)
}
