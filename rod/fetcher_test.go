//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, srv.URL, digest.FetchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, fetcher.Launched(), "cancelled fetch should not launch a browser")
}

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL, digest.FetchOptions{})

	require.NoError(t, err)
	assert.True(t, fetcher.Launched())
	assert.Contains(t, html, "JavaScript Rendered")
	assert.NotContains(t, html, "Loading...")
}

func TestFetcher_Fetch_SendsHeaders(t *testing.T) {
	t.Parallel()

	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case got <- r.Header.Get("X-Digest-Test"):
		default:
		}
		_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), srv.URL, digest.FetchOptions{
		Headers: map[string]string{"X-Digest-Test": "yes"},
	})

	require.NoError(t, err)
	assert.Equal(t, "yes", <-got)
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), srv.URL, digest.FetchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
