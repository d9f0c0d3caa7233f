package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/store"
)

// AlertStore implements store.AlertStore against the alerts table.
type AlertStore struct {
	db *sql.DB
}

// NewAlertStore creates an AlertStore. The caller owns the connection.
func NewAlertStore(db *sql.DB) *AlertStore {
	return &AlertStore{db: db}
}

var _ store.AlertStore = (*AlertStore)(nil)

// CreateAlert implements store.AlertStore.CreateAlert.
func (s *AlertStore) CreateAlert(ctx context.Context, alert *domain.Alert) error {
	const query = `
		INSERT INTO alerts (id, user_id, ai_analysis, alert_date)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query,
		alert.ID,
		alert.UserID,
		alert.AIAnalysis,
		alert.AlertDate,
	)
	if err != nil {
		return fmt.Errorf("creating alert for user %s: %w", alert.UserID, mapError(err))
	}

	return nil
}
