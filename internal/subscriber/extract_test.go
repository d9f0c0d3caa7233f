package subscriber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrifi/pipeline/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestExtractUserWithoutSubscription(t *testing.T) {
	t.Parallel()

	users := []domain.User{{ID: "u1", Name: "Alice", Email: "a@x.test", CreatedAt: ts("2025-01-01T00:00:00Z")}}

	rows := Extract(users, nil, ts("2025-06-15T00:00:00Z"))

	require.Len(t, rows, 1)
	assert.Equal(t, domain.NoSubscription, rows[0].SubscriptionStatus)
	assert.Empty(t, rows[0].SubscriptionID)
}

func TestExtractPicksHighestPriorityStatus(t *testing.T) {
	t.Parallel()

	now := ts("2025-06-15T00:00:00Z")
	users := []domain.User{{ID: "u1", Name: "Alice"}}
	subs := []domain.Subscription{
		{ID: "s-cancel", UserID: "u1", Status: domain.SubscriptionCanceled, CreatedAt: ts("2025-05-01T00:00:00Z")},
		{ID: "s-active", UserID: "u1", Status: domain.SubscriptionActive,
			CurrentPeriodEnd: tsp("2025-07-01T00:00:00Z"), CreatedAt: ts("2025-03-01T00:00:00Z")},
		{ID: "s-trial", UserID: "u1", Status: domain.SubscriptionTrialing,
			CurrentPeriodEnd: tsp("2025-07-01T00:00:00Z"), CreatedAt: ts("2025-06-01T00:00:00Z")},
	}

	rows := Extract(users, subs, now)

	require.Len(t, rows, 1)
	assert.Equal(t, "s-active", rows[0].SubscriptionID, "active outranks canceled and trialing")
	assert.Equal(t, domain.SubscriptionActive, rows[0].SubscriptionStatus)
}

func TestExtractTieBreaksByNewest(t *testing.T) {
	t.Parallel()

	now := ts("2025-06-15T00:00:00Z")
	users := []domain.User{{ID: "u1"}}
	subs := []domain.Subscription{
		{ID: "s-old", UserID: "u1", Status: domain.SubscriptionCanceled, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "s-new", UserID: "u1", Status: domain.SubscriptionCanceled, CreatedAt: ts("2025-01-01T00:00:00Z")},
	}

	rows := Extract(users, subs, now)

	require.Len(t, rows, 1)
	assert.Equal(t, "s-new", rows[0].SubscriptionID)
}

func TestExtractLapsedActiveBecomesExpired(t *testing.T) {
	t.Parallel()

	// Provider still says active but the period ended; the row carries
	// the effective status with the provider's preserved alongside.
	now := ts("2025-06-15T00:00:00Z")
	users := []domain.User{{ID: "u1"}}
	subs := []domain.Subscription{
		{ID: "s1", UserID: "u1", Status: domain.SubscriptionActive,
			CurrentPeriodEnd: tsp("2025-06-01T00:00:00Z"), CreatedAt: ts("2025-01-01T00:00:00Z")},
	}

	rows := Extract(users, subs, now)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.SubscriptionExpired, rows[0].SubscriptionStatus)
	assert.Equal(t, domain.SubscriptionActive, rows[0].OriginalStatus)
}

func TestExtractKeepsOtherUsersSubscriptionsApart(t *testing.T) {
	t.Parallel()

	now := ts("2025-06-15T00:00:00Z")
	users := []domain.User{{ID: "u1"}, {ID: "u2"}}
	subs := []domain.Subscription{
		{ID: "s1", UserID: "u2", Status: domain.SubscriptionActive,
			CurrentPeriodEnd: tsp("2025-07-01T00:00:00Z"), CreatedAt: ts("2025-01-01T00:00:00Z")},
	}

	rows := Extract(users, subs, now)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.NoSubscription, rows[0].SubscriptionStatus)
	assert.Equal(t, domain.SubscriptionActive, rows[1].SubscriptionStatus)
}

func TestSelectSubscribed(t *testing.T) {
	t.Parallel()

	rows := []domain.Subscriber{
		{UserID: "u1", SubscriptionStatus: domain.SubscriptionActive},
		{UserID: "u2", SubscriptionStatus: domain.SubscriptionCanceled},
		{UserID: "u3", SubscriptionStatus: domain.SubscriptionTrialing},
		{UserID: "u4", SubscriptionStatus: domain.NoSubscription},
		{UserID: "u5", SubscriptionStatus: domain.SubscriptionExpired},
	}

	kept := SelectSubscribed(rows)

	require.Len(t, kept, 2)
	assert.Equal(t, "u1", kept[0].UserID)
	assert.Equal(t, "u3", kept[1].UserID)
}
