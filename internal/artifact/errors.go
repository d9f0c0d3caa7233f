package artifact

import "errors"

var (
	// ErrNotSheetURL is returned when a URL does not point at a Google
	// Sheets document.
	ErrNotSheetURL = errors.New("not a google sheets url")

	// ErrDownloadFailed is returned when a fetch completes with a
	// non-success HTTP status.
	ErrDownloadFailed = errors.New("artifact download failed")

	// ErrEmptyArtifact is returned when a fetched source contains no
	// usable rows or text.
	ErrEmptyArtifact = errors.New("artifact is empty")
)
