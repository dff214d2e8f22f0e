package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deptscrape"
)

// Ensure LoggingUploader implements deptscrape.Uploader.
var _ deptscrape.Uploader = (*LoggingUploader)(nil)

// LoggingUploader wraps an Uploader and logs each upload attempt.
type LoggingUploader struct {
	next   deptscrape.Uploader
	logger *slog.Logger
}

// NewLoggingUploader creates a new LoggingUploader.
func NewLoggingUploader(next deptscrape.Uploader, logger *slog.Logger) *LoggingUploader {
	return &LoggingUploader{next: next, logger: logger}
}

// UploadRecord delegates to the wrapped uploader and logs the operation.
func (u *LoggingUploader) UploadRecord(ctx context.Context, rec *deptscrape.PageRecord) (err error) {
	defer func(begin time.Time) {
		u.logger.Info("record uploaded",
			"url", rec.URL,
			"title", rec.PageTitle,
			"page_type", string(rec.PageType),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return u.next.UploadRecord(ctx, rec)
}
