package store

import (
	"context"

	"github.com/pantrifi/pipeline/internal/domain"
)

// ArtifactStore reads the inventory sources a user has attached:
// linked Google Sheets and uploaded CSV and menu files.
type ArtifactStore interface {
	// SheetsForUser returns the user's active linked Google Sheets,
	// newest-created first. An empty slice (not an error) means the
	// user has none.
	SheetsForUser(ctx context.Context, userID string) ([]domain.SheetLink, error)

	// CSVFilesForUser returns the user's uploaded CSV inventories.
	CSVFilesForUser(ctx context.Context, userID string) ([]domain.UploadedFile, error)

	// MenuFilesForUser returns the user's uploaded menu documents.
	MenuFilesForUser(ctx context.Context, userID string) ([]domain.UploadedFile, error)
}
