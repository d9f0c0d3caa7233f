package store

import (
	"context"

	"github.com/pantrifi/pipeline/internal/domain"
)

// AlertStore persists analysis results for the dashboard to read.
type AlertStore interface {
	// CreateAlert saves one analysis alert.
	// Returns ErrInvalidEntity if the row violates a constraint.
	CreateAlert(ctx context.Context, alert *domain.Alert) error
}
