package http_test

import (
	"context"
	gohttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements deptscrape.Fetcher at compile time.
var _ deptscrape.Fetcher = (*http.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			_, _ = w.Write([]byte("<html><body><h1>Cardiology</h1></body></html>"))
		}))
		defer srv.Close()

		f := http.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "<h1>Cardiology</h1>")
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			gotUA = r.UserAgent()
		}))
		defer srv.Close()

		f := http.NewFetcher(http.WithUserAgent("dept-scraper/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "dept-scraper/1.0", gotUA)
	})

	t.Run("defaults to a browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			gotUA = r.UserAgent()
		}))
		defer srv.Close()

		f := http.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("non-200 status yields a fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			w.WriteHeader(gohttp.StatusNotFound)
		}))
		defer srv.Close()

		f := http.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, deptscrape.EFETCH, deptscrape.ErrorCode(err))
	})

	t.Run("transport failures carry the URL and reason", func(t *testing.T) {
		t.Parallel()

		// A closed server guarantees a connection-level failure.
		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {}))
		srv.Close()

		f := http.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, deptscrape.EFETCH, deptscrape.ErrorCode(err))
		assert.Contains(t, deptscrape.ErrorMessage(err), srv.URL)
		assert.Contains(t, deptscrape.ErrorMessage(err), "connection refused")
	})

	t.Run("honors the configured timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := http.NewFetcher(http.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		f := http.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})
}
