package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRecords() []*deptscrape.PageRecord {
	return []*deptscrape.PageRecord{
		{
			URL:         "https://hospitals.aku.edu/karachi/cardiology",
			PageTitle:   "Cardiology",
			BodyContent: deptscrape.BodyContent{MainParagraphs: "Cardiac care."},
			PageType:    deptscrape.PageStandard,
		},
		{
			URL:         "https://hospitals.aku.edu/karachi/lab",
			PageTitle:   "Laboratory",
			BodyContent: deptscrape.BodyContent{MainParagraphs: "Diagnostics."},
			PageType:    deptscrape.PageSimple,
		},
	}
}

func TestUploadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("uploads all records and prints the type distribution", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		var uploaded []string
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Reader: &mock.RecordReader{
				ReadRecordsFn: func(_ context.Context) ([]*deptscrape.PageRecord, error) {
					return uploadRecords(), nil
				},
			},
			Uploader: &mock.Uploader{
				UploadRecordFn: func(_ context.Context, rec *deptscrape.PageRecord) error {
					uploaded = append(uploaded, rec.PageTitle)
					return nil
				},
			},
		}

		cmd := &UploadCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"Cardiology", "Laboratory"}, uploaded)
		out := stdout.String()
		assert.Contains(t, out, "Uploading 2 records")
		assert.Contains(t, out, "standard: 1")
		assert.Contains(t, out, "simple: 1")
		assert.Contains(t, out, "Uploaded 2 stories (0 failed)")
	})

	t.Run("a failed upload is reported and continues", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Reader: &mock.RecordReader{
				ReadRecordsFn: func(_ context.Context) ([]*deptscrape.PageRecord, error) {
					return uploadRecords(), nil
				},
			},
			Uploader: &mock.Uploader{
				UploadRecordFn: func(_ context.Context, rec *deptscrape.PageRecord) error {
					if rec.PageTitle == "Cardiology" {
						return deptscrape.Errorf(deptscrape.EUNAVAILABLE, "storyblok HTTP 503")
					}
					return nil
				},
			},
		}

		cmd := &UploadCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Uploaded 1 stories (1 failed)")
		assert.Contains(t, stderr.String(), "upload failed: https://hospitals.aku.edu/karachi/cardiology")
	})

	t.Run("empty directory prints a notice", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &bytes.Buffer{},
			Reader: &mock.RecordReader{
				ReadRecordsFn: func(_ context.Context) ([]*deptscrape.PageRecord, error) {
					return nil, nil
				},
			},
		}

		cmd := &UploadCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No records to upload.")
	})
}
