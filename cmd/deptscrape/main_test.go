package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("no arguments shows help and errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "scrape")
		assert.Contains(t, stdout.String(), "upload")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

		assert.Error(t, err)
	})

	t.Run("upload without credentials errors with a hint", func(t *testing.T) {
		t.Setenv("STORYBLOK_TOKEN", "")
		t.Setenv("STORYBLOK_SPACE_ID", "")

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"upload", t.TempDir()}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials")
		assert.Contains(t, stderr.String(), "STORYBLOK_TOKEN")
	})
}
