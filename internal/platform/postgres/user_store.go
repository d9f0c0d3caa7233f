package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/store"
)

// UserStore implements store.UserStore and store.SubscriptionStore
// against the web application's users and subscriptions tables.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a UserStore. The caller owns the connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

var (
	_ store.UserStore         = (*UserStore)(nil)
	_ store.SubscriptionStore = (*UserStore)(nil)
)

// ListUsers implements store.UserStore.ListUsers.
func (s *UserStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	const query = `
		SELECT id, name, email,
		       COALESCE(google_id, ''),
		       COALESCE(has_claimed_trial, FALSE),
		       COALESCE(stripe_customer_id, ''),
		       created_at
		FROM users
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.GoogleID,
			&u.HasClaimedTrial,
			&u.StripeCustomerID,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", mapError(err))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", mapError(err))
	}

	return users, nil
}

// ListSubscriptions implements store.SubscriptionStore.ListSubscriptions.
func (s *UserStore) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	const query = `
		SELECT id, user_id, status,
		       COALESCE(stripe_subscription_id, ''),
		       current_period_start, current_period_end, trial_end,
		       created_at
		FROM subscriptions
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Status,
			&sub.StripeSubscriptionID,
			&sub.CurrentPeriodStart,
			&sub.CurrentPeriodEnd,
			&sub.TrialEnd,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning subscription row: %w", mapError(err))
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subscription rows: %w", mapError(err))
	}

	return subs, nil
}
