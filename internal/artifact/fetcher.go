package artifact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const fetchTimeout = 60 * time.Second

// Fetcher downloads user artifacts over HTTP into a scratch directory.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher with a bounded per-request timeout.
func NewFetcher(logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Download fetches rawURL and writes the body to destPath, creating
// parent directories as needed. Returns the number of bytes written.
func (f *Fetcher) Download(ctx context.Context, rawURL, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CleanURL(rawURL), nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %s returned %s", ErrDownloadFailed, rawURL, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating artifact dir: %w", err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", destPath, err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", destPath, err)
	}

	f.logger.Debug("artifact downloaded", "url", rawURL, "dest", destPath, "bytes", n)
	return n, nil
}

// DownloadSheet rewrites a Google Sheets URL into its CSV export form
// and downloads it.
func (f *Fetcher) DownloadSheet(ctx context.Context, sheetURL, destPath string) (int64, error) {
	exportURL, err := SheetExportURL(sheetURL)
	if err != nil {
		return 0, err
	}
	return f.Download(ctx, exportURL, destPath)
}
