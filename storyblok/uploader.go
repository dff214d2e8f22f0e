package storyblok

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/deptscrape"
	"github.com/google/uuid"
)

// maxSlugLen caps generated story slugs.
const maxSlugLen = 60

// Ensure Uploader implements deptscrape.Uploader at compile time.
var _ deptscrape.Uploader = (*Uploader)(nil)

// Uploader republishes page records as Storyblok stories. The target
// folder is resolved once and reused for every record.
type Uploader struct {
	API     StoryAPI
	Config  deptscrape.StoryblokConfig
	Publish bool

	mu         sync.Mutex
	folderID   int64
	folderDone bool
}

// UploadRecord creates a story for the record. Records without a title
// or body text are rejected before any API call. Slug collisions are
// resolved by retrying with suffixed slug candidates.
func (u *Uploader) UploadRecord(ctx context.Context, rec *deptscrape.PageRecord) error {
	if strings.TrimSpace(rec.PageTitle) == "" {
		return deptscrape.Errorf(deptscrape.EINVALID, "record has no title: %s", rec.URL)
	}
	if strings.TrimSpace(rec.BodyContent.MainParagraphs) == "" {
		return deptscrape.Errorf(deptscrape.EINVALID, "record has no body content: %s", rec.URL)
	}

	folderID, err := u.ensureFolder(ctx)
	if err != nil {
		return err
	}

	content := BuildContent(rec, u.Config.ContentType, u.Config.TitleField)

	var lastErr error
	for _, slug := range slugCandidates(rec.PageTitle) {
		_, err := u.API.CreateStory(ctx, &Story{
			Name:     rec.PageTitle,
			Slug:     slug,
			ParentID: folderID,
			Content:  content,
		}, u.Publish)
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.Is(err, ErrSlugTaken) {
			return err
		}
	}
	return lastErr
}

// ensureFolder resolves the configured folder path once.
func (u *Uploader) ensureFolder(ctx context.Context) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.folderDone {
		return u.folderID, nil
	}

	id, err := u.API.EnsureFolderPath(ctx, u.Config.FolderPath)
	if err != nil {
		return 0, err
	}

	u.folderID = id
	u.folderDone = true
	return id, nil
}

// slugCandidates returns the slugs to try in order: the plain slug, a
// random-suffixed variant, then a timestamped one.
func slugCandidates(title string) []string {
	base := deptscrape.Slugify(title, maxSlugLen)
	if base == "" {
		base = "page"
	}
	return []string{
		base,
		fmt.Sprintf("%s-%s", base, uuid.NewString()[:4]),
		fmt.Sprintf("%s-%d", base, time.Now().Unix()),
	}
}
