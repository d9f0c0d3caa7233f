package subscriber

import (
	"sort"
	"time"

	"github.com/pantrifi/pipeline/internal/domain"
)

// Extract joins users with their subscriptions, keeping one row per
// user. When a user holds several subscriptions the best one wins:
// lowest status priority first, newest creation time as the
// tie-breaker. Statuses are evaluated as of now, so a provider-reported
// "active" subscription past its period end is treated as expired, with
// the provider's status preserved in OriginalStatus.
func Extract(users []domain.User, subs []domain.Subscription, now time.Time) []domain.Subscriber {
	byUser := make(map[string][]domain.Subscription, len(users))
	for _, sub := range subs {
		byUser[sub.UserID] = append(byUser[sub.UserID], sub)
	}

	out := make([]domain.Subscriber, 0, len(users))
	for _, u := range users {
		row := domain.Subscriber{
			UserID:             u.ID,
			Name:               u.Name,
			Email:              u.Email,
			GoogleID:           u.GoogleID,
			HasClaimedTrial:    u.HasClaimedTrial,
			StripeCustomerID:   u.StripeCustomerID,
			UserCreatedAt:      u.CreatedAt,
			SubscriptionStatus: domain.NoSubscription,
		}

		if best, ok := bestSubscription(byUser[u.ID], now); ok {
			effective := best.EffectiveStatus(now)
			row.SubscriptionID = best.ID
			row.SubscriptionStatus = effective
			row.StripeSubscriptionID = best.StripeSubscriptionID
			row.CurrentPeriodStart = best.CurrentPeriodStart
			row.CurrentPeriodEnd = best.CurrentPeriodEnd
			row.TrialEnd = best.TrialEnd
			created := best.CreatedAt
			row.SubscriptionCreated = &created
			if effective != best.Status {
				row.OriginalStatus = best.Status
			}
		}

		out = append(out, row)
	}

	return out
}

// SelectSubscribed keeps only the rows whose status grants pipeline
// access (active or trialing). The fetch step runs this before pulling
// artifact references.
func SelectSubscribed(rows []domain.Subscriber) []domain.Subscriber {
	var out []domain.Subscriber
	for _, r := range rows {
		if r.SubscriptionStatus.IsSubscribed() {
			out = append(out, r)
		}
	}
	return out
}

// bestSubscription picks the highest-priority subscription as of now.
func bestSubscription(subs []domain.Subscription, now time.Time) (domain.Subscription, bool) {
	if len(subs) == 0 {
		return domain.Subscription{}, false
	}

	sorted := make([]domain.Subscription, len(subs))
	copy(sorted, subs)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi := sorted[i].EffectiveStatus(now).Priority()
		pj := sorted[j].EffectiveStatus(now).Priority()
		if pi != pj {
			return pi < pj
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted[0], true
}
