package store

import (
	"context"

	"github.com/pantrifi/pipeline/internal/domain"
)

// UserStore reads account rows for the extraction step.
type UserStore interface {
	// ListUsers returns every account, ordered by creation time.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// SubscriptionStore reads billing rows for the extraction step.
type SubscriptionStore interface {
	// ListSubscriptions returns every subscription row. Joining with
	// users and choosing the best subscription per user happens in the
	// extraction logic, not in SQL.
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
}
