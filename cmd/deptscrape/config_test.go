package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/deptscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("no file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("")

		require.NoError(t, err)
		assert.Equal(t, deptscrape.DefaultConfig(), cfg)
	})

	t.Run("file values overlay defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `request_delay: 500ms
source_host: example.org
storyblok:
  content_type: custom_service
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := loadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 500*time.Millisecond, cfg.RequestDelay)
		assert.Equal(t, "example.org", cfg.SourceHost)
		assert.Equal(t, "custom_service", cfg.Storyblok.ContentType)

		// Untouched fields keep their defaults.
		defaults := deptscrape.DefaultConfig()
		assert.Equal(t, defaults.FetchTimeout, cfg.FetchTimeout)
		assert.Equal(t, defaults.Storyblok.FolderPath, cfg.Storyblok.FolderPath)
	})

	t.Run("invalid duration is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("request_delay: soon\n"), 0644))

		_, err := loadConfig(path)

		assert.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})
}
