package storyblok_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/storyblok"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Uploader implements deptscrape.Uploader at compile time.
var _ deptscrape.Uploader = (*storyblok.Uploader)(nil)

// fakeAPI is a function-field fake for the story API.
type fakeAPI struct {
	EnsureFolderPathFn func(ctx context.Context, path []string) (int64, error)
	CreateStoryFn      func(ctx context.Context, story *storyblok.Story, publish bool) (*storyblok.Story, error)
}

func (f *fakeAPI) EnsureFolderPath(ctx context.Context, path []string) (int64, error) {
	return f.EnsureFolderPathFn(ctx, path)
}

func (f *fakeAPI) CreateStory(ctx context.Context, story *storyblok.Story, publish bool) (*storyblok.Story, error) {
	return f.CreateStoryFn(ctx, story, publish)
}

func uploadableRecord() *deptscrape.PageRecord {
	return &deptscrape.PageRecord{
		URL:         "https://hospitals.aku.edu/karachi/cardiology",
		PageTitle:   "Cardiology",
		BodyContent: deptscrape.BodyContent{MainParagraphs: "Comprehensive cardiac care for all ages."},
		PageType:    deptscrape.PageStandard,
	}
}

func TestUploader_UploadRecord(t *testing.T) {
	t.Parallel()

	cfg := deptscrape.StoryblokConfig{
		ContentType: "health_and_service",
		TitleField:  "title",
		FolderPath:  []string{"Automation", "health-services"},
	}

	t.Run("creates a story under the resolved folder", func(t *testing.T) {
		t.Parallel()

		var created *storyblok.Story
		u := &storyblok.Uploader{
			API: &fakeAPI{
				EnsureFolderPathFn: func(_ context.Context, path []string) (int64, error) {
					assert.Equal(t, []string{"Automation", "health-services"}, path)
					return 99, nil
				},
				CreateStoryFn: func(_ context.Context, story *storyblok.Story, publish bool) (*storyblok.Story, error) {
					created = story
					assert.True(t, publish)
					return story, nil
				},
			},
			Config:  cfg,
			Publish: true,
		}

		err := u.UploadRecord(context.Background(), uploadableRecord())

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Cardiology", created.Name)
		assert.Equal(t, "cardiology", created.Slug)
		assert.Equal(t, int64(99), created.ParentID)
		assert.Equal(t, "health_and_service", created.Content["component"])
	})

	t.Run("rejects records without title or body before any API call", func(t *testing.T) {
		t.Parallel()

		u := &storyblok.Uploader{
			API: &fakeAPI{
				EnsureFolderPathFn: func(_ context.Context, _ []string) (int64, error) {
					t.Fatal("folder lookup should not happen")
					return 0, nil
				},
			},
			Config: cfg,
		}

		noTitle := uploadableRecord()
		noTitle.PageTitle = "  "
		err := u.UploadRecord(context.Background(), noTitle)
		assert.Equal(t, deptscrape.EINVALID, deptscrape.ErrorCode(err))

		noBody := uploadableRecord()
		noBody.BodyContent.MainParagraphs = ""
		err = u.UploadRecord(context.Background(), noBody)
		assert.Equal(t, deptscrape.EINVALID, deptscrape.ErrorCode(err))
	})

	t.Run("retries alternative slugs when the first is taken", func(t *testing.T) {
		t.Parallel()

		var slugs []string
		u := &storyblok.Uploader{
			API: &fakeAPI{
				EnsureFolderPathFn: func(_ context.Context, _ []string) (int64, error) {
					return 1, nil
				},
				CreateStoryFn: func(_ context.Context, story *storyblok.Story, _ bool) (*storyblok.Story, error) {
					slugs = append(slugs, story.Slug)
					if len(slugs) < 2 {
						return nil, storyblok.ErrSlugTaken
					}
					return story, nil
				},
			},
			Config: cfg,
		}

		err := u.UploadRecord(context.Background(), uploadableRecord())

		require.NoError(t, err)
		require.Len(t, slugs, 2)
		assert.Equal(t, "cardiology", slugs[0])
		assert.True(t, strings.HasPrefix(slugs[1], "cardiology-"))
	})

	t.Run("non-slug errors are returned immediately", func(t *testing.T) {
		t.Parallel()

		calls := 0
		u := &storyblok.Uploader{
			API: &fakeAPI{
				EnsureFolderPathFn: func(_ context.Context, _ []string) (int64, error) {
					return 1, nil
				},
				CreateStoryFn: func(_ context.Context, _ *storyblok.Story, _ bool) (*storyblok.Story, error) {
					calls++
					return nil, deptscrape.Errorf(deptscrape.EUNAVAILABLE, "storyblok HTTP 503")
				},
			},
			Config: cfg,
		}

		err := u.UploadRecord(context.Background(), uploadableRecord())

		assert.Equal(t, deptscrape.EUNAVAILABLE, deptscrape.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("resolves the folder path only once", func(t *testing.T) {
		t.Parallel()

		lookups := 0
		u := &storyblok.Uploader{
			API: &fakeAPI{
				EnsureFolderPathFn: func(_ context.Context, _ []string) (int64, error) {
					lookups++
					return 1, nil
				},
				CreateStoryFn: func(_ context.Context, story *storyblok.Story, _ bool) (*storyblok.Story, error) {
					return story, nil
				},
			},
			Config: cfg,
		}

		require.NoError(t, u.UploadRecord(context.Background(), uploadableRecord()))
		require.NoError(t, u.UploadRecord(context.Background(), uploadableRecord()))

		assert.Equal(t, 1, lookups)
	})
}
