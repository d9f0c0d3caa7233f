package subscriber

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Relay file names. Each step binary writes its output for the next
// step to pick up from the workspace directory.
const (
	ExtractFile  = "extract_users_subscriptions.json"
	FetchFile    = "fetch_subscribed_users_data.json"
	EligibleFile = "filtered_users_with_sheets.json"
)

// ErrRelayMissing is returned when a step's expected input file does
// not exist, which usually means the previous step did not run.
var ErrRelayMissing = errors.New("relay file missing")

// WriteRelay writes rows as indented JSON to the named relay file in
// dir, creating the directory if needed.
func WriteRelay[T any](dir, name string, rows []T) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating workspace dir: %w", err)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadRelay reads the named relay file from dir.
// Returns ErrRelayMissing when the file does not exist.
func ReadRelay[T any](dir, name string) ([]T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRelayMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return rows, nil
}
