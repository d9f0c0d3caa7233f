package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Alert is one persisted analysis result for a user. AIAnalysis holds
// the report serialized as JSON text, matching what the dashboard reads.
type Alert struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	AIAnalysis string    `json:"ai_analysis"`
	AlertDate  time.Time `json:"alert_date"`
}

// NewAlert creates a validated Alert for the given user and serialized
// analysis.
func NewAlert(userID, analysis string, alertDate time.Time) (*Alert, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserID)
	}
	if analysis == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyAnalysis)
	}

	return &Alert{
		ID:         uuid.New(),
		UserID:     userID,
		AIAnalysis: analysis,
		AlertDate:  alertDate.UTC(),
	}, nil
}
