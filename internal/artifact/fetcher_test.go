package artifact

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDownloadWritesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("item,expiry\nmilk,2025-06-20\n"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "downloads", "inventory.csv")
	f := NewFetcher(testLogger())

	n, err := f.Download(context.Background(), srv.URL, dest)

	require.NoError(t, err)
	assert.Equal(t, int64(28), n)

	body, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "item,expiry\nmilk,2025-06-20\n", string(body))
}

func TestDownloadNonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(testLogger())
	_, err := f.Download(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x.csv"))

	assert.ErrorIs(t, err, ErrDownloadFailed)
}

func TestDownloadContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(testLogger())
	_, err := f.Download(ctx, srv.URL, filepath.Join(t.TempDir(), "x.csv"))

	assert.Error(t, err)
}

func TestDownloadSheetRejectsForeignURL(t *testing.T) {
	t.Parallel()

	f := NewFetcher(testLogger())
	_, err := f.DownloadSheet(context.Background(), "https://example.com/doc", filepath.Join(t.TempDir(), "s.csv"))

	assert.ErrorIs(t, err, ErrNotSheetURL)
}
