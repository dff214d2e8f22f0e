package deptscrape

import "context"

// Uploader publishes one page record to the content-management system.
// Implementations must reject records with an empty title or empty
// body before attempting any remote call.
type Uploader interface {
	UploadRecord(ctx context.Context, rec *PageRecord) error
}
