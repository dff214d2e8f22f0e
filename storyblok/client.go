// Package storyblok implements republishing of scraped page records
// to the Storyblok management API. Stories are created under a nested
// content folder and composed from a fixed block layout.
package storyblok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/deptscrape"
)

// DefaultBaseURL is the Storyblok management API endpoint.
const DefaultBaseURL = "https://mapi.storyblok.com/v1"

// defaultRetries is the number of attempts for transient API failures.
const defaultRetries = 4

// ErrSlugTaken is returned when the API rejects a story because its
// slug already exists in the space.
var ErrSlugTaken = &deptscrape.Error{Code: deptscrape.EINVALID, Message: "Slug already taken."}

// Story is the subset of the Storyblok story object the uploader
// works with.
type Story struct {
	ID       int64          `json:"id,omitempty"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	IsFolder bool           `json:"is_folder,omitempty"`
	ParentID int64          `json:"parent_id"`
	Content  map[string]any `json:"content,omitempty"`
}

// StoryAPI is the part of the management API the uploader depends on.
type StoryAPI interface {
	EnsureFolderPath(ctx context.Context, path []string) (int64, error)
	CreateStory(ctx context.Context, story *Story, publish bool) (*Story, error)
}

// Ensure Client implements StoryAPI at compile time.
var _ StoryAPI = (*Client)(nil)

// Client talks to the Storyblok management API for one space.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	spaceID    string
	retries    int
	retryWait  time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithRetryWait sets the base wait between retry attempts.
func WithRetryWait(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryWait = d
	}
}

// NewClient creates a Client for the given management token and space.
func NewClient(token, spaceID string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		token:      token,
		spaceID:    spaceID,
		retries:    defaultRetries,
		retryWait:  1200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureFolderPath walks the nested folder path, creating any missing
// folders, and returns the ID of the innermost one.
func (c *Client) EnsureFolderPath(ctx context.Context, path []string) (int64, error) {
	var parentID int64
	for _, name := range path {
		folders, err := c.listFolders(ctx)
		if err != nil {
			return 0, err
		}

		slug := deptscrape.Slugify(name, 60)
		var found *Story
		for i := range folders {
			f := &folders[i]
			if f.ParentID != parentID {
				continue
			}
			if f.Slug == slug || strings.EqualFold(f.Name, name) {
				found = f
				break
			}
		}

		if found != nil {
			parentID = found.ID
			continue
		}

		created, err := c.CreateStory(ctx, &Story{
			Name:     name,
			Slug:     slug,
			IsFolder: true,
			ParentID: parentID,
		}, false)
		if err != nil {
			return 0, err
		}
		parentID = created.ID
	}
	return parentID, nil
}

// listFolders pages through all folders in the space.
func (c *Client) listFolders(ctx context.Context) ([]Story, error) {
	var all []Story
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/spaces/%s/stories?folder_only=1&per_page=100&page=%d", c.baseURL, c.spaceID, page)

		var resp struct {
			Stories []Story `json:"stories"`
		}
		if err := c.do(ctx, http.MethodGet, url, nil, &resp); err != nil {
			return nil, err
		}

		all = append(all, resp.Stories...)
		if len(resp.Stories) < 100 {
			break
		}
	}
	return all, nil
}

// CreateStory creates a story (or folder) in the space. When publish
// is true the story is published immediately.
func (c *Client) CreateStory(ctx context.Context, story *Story, publish bool) (*Story, error) {
	url := fmt.Sprintf("%s/spaces/%s/stories", c.baseURL, c.spaceID)
	if publish {
		url += "?publish=1"
	}

	body := map[string]any{"story": story}
	var resp struct {
		Story Story `json:"story"`
	}
	if err := c.do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Story, nil
}

// do sends a request with retry on transient failures and decodes the
// JSON response into out.
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryWait * time.Duration(attempt-1)):
			}
		}

		err := c.send(ctx, method, url, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, method, url string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return deptscrape.Errorf(deptscrape.EUNAVAILABLE, "storyblok request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return deptscrape.Errorf(deptscrape.EPARSE, "decoding storyblok response: %v", err)
			}
		}
		return nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		text := strings.ToLower(string(respBody))
		if strings.Contains(text, "already taken") || strings.Contains(text, "slug") {
			return ErrSlugTaken
		}
		return deptscrape.Errorf(deptscrape.EINVALID, "storyblok rejected request: %s", string(respBody))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return deptscrape.Errorf(deptscrape.EUNAVAILABLE, "storyblok HTTP %d", resp.StatusCode)
	default:
		return deptscrape.Errorf(deptscrape.EINTERNAL, "storyblok HTTP %d: %s", resp.StatusCode, string(respBody))
	}
}

// retryable reports whether a request should be attempted again.
func retryable(err error) bool {
	return deptscrape.ErrorCode(err) == deptscrape.EUNAVAILABLE
}
