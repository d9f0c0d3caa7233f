package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/store"
)

// ArtifactStore implements store.ArtifactStore against the sheet-link
// and file-upload tables.
type ArtifactStore struct {
	db *sql.DB
}

// NewArtifactStore creates an ArtifactStore. The caller owns the
// connection.
func NewArtifactStore(db *sql.DB) *ArtifactStore {
	return &ArtifactStore{db: db}
}

var _ store.ArtifactStore = (*ArtifactStore)(nil)

// sheetsForUserQuery selects only active sheet links, newest-created
// first. The order matters downstream: the filter step keeps the first
// three rows per kind, so a deactivated or stale-but-recently-touched
// sheet must never outrank an active newest one.
const sheetsForUserQuery = `
		SELECT sheet_id, sheet_name, sheet_url,
		       COALESCE(description, ''),
		       created_at, updated_at
		FROM user_sheets
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC`

// SheetsForUser implements store.ArtifactStore.SheetsForUser.
func (s *ArtifactStore) SheetsForUser(ctx context.Context, userID string) ([]domain.SheetLink, error) {
	rows, err := s.db.QueryContext(ctx, sheetsForUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sheets for user %s: %w", userID, mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var sheets []domain.SheetLink
	for rows.Next() {
		var sh domain.SheetLink
		if err := rows.Scan(
			&sh.SheetID,
			&sh.SheetName,
			&sh.SheetURL,
			&sh.Description,
			&sh.CreatedAt,
			&sh.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning sheet row: %w", mapError(err))
		}
		sheets = append(sheets, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sheet rows: %w", mapError(err))
	}

	return sheets, nil
}

// CSVFilesForUser implements store.ArtifactStore.CSVFilesForUser.
func (s *ArtifactStore) CSVFilesForUser(ctx context.Context, userID string) ([]domain.UploadedFile, error) {
	return s.filesForUser(ctx, "user_csv_files", userID)
}

// MenuFilesForUser implements store.ArtifactStore.MenuFilesForUser.
func (s *ArtifactStore) MenuFilesForUser(ctx context.Context, userID string) ([]domain.UploadedFile, error) {
	return s.filesForUser(ctx, "user_menu_files", userID)
}

// filesForUser reads one of the upload tables; they share a shape.
func (s *ArtifactStore) filesForUser(ctx context.Context, table, userID string) ([]domain.UploadedFile, error) {
	query := fmt.Sprintf(`
		SELECT file_name, file_url
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC`, table)

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing %s for user %s: %w", table, userID, mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var files []domain.UploadedFile
	for rows.Next() {
		var f domain.UploadedFile
		if err := rows.Scan(&f.FileName, &f.FileURL); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, mapError(err))
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, mapError(err))
	}

	return files, nil
}
