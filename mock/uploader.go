package mock

import (
	"context"

	"github.com/fwojciec/deptscrape"
)

var _ deptscrape.Uploader = (*Uploader)(nil)

// Uploader is a mock implementation of deptscrape.Uploader.
type Uploader struct {
	UploadRecordFn func(ctx context.Context, rec *deptscrape.PageRecord) error
}

func (u *Uploader) UploadRecord(ctx context.Context, rec *deptscrape.PageRecord) error {
	return u.UploadRecordFn(ctx, rec)
}
