package domain

import "time"

// SubscriptionStatus represents the billing state of a subscription as
// reported by the payment provider.
type SubscriptionStatus string

// Possible subscription status values.
const (
	SubscriptionActive            SubscriptionStatus = "active"
	SubscriptionPastDue           SubscriptionStatus = "past_due"
	SubscriptionExpired           SubscriptionStatus = "expired"
	SubscriptionCanceled          SubscriptionStatus = "canceled"
	SubscriptionTrialing          SubscriptionStatus = "trialing"
	SubscriptionIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionUnpaid            SubscriptionStatus = "unpaid"
)

// statusPriority orders subscription statuses when a user holds more
// than one subscription. Lower number = higher priority.
var statusPriority = map[SubscriptionStatus]int{
	SubscriptionActive:            1,
	SubscriptionPastDue:           2,
	SubscriptionExpired:           3,
	SubscriptionCanceled:          4,
	SubscriptionTrialing:          5,
	SubscriptionIncomplete:        6,
	SubscriptionIncompleteExpired: 7,
	SubscriptionUnpaid:            8,
}

// unknownStatusPriority sorts unrecognized statuses behind every known one.
const unknownStatusPriority = 99

// Priority returns the selection priority for the status. Lower values
// win when choosing among a user's subscriptions.
func (s SubscriptionStatus) Priority() int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return unknownStatusPriority
}

// Subscription is one billing record attached to a user.
type Subscription struct {
	ID                   string             `json:"id"`
	UserID               string             `json:"user_id"`
	Status               SubscriptionStatus `json:"status"`
	StripeSubscriptionID string             `json:"stripe_subscription_id"`
	CurrentPeriodStart   *time.Time         `json:"current_period_start"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end"`
	TrialEnd             *time.Time         `json:"trial_end"`
	CreatedAt            time.Time          `json:"created_at"`
}

// EffectiveStatus returns the status the subscription should be treated
// as at the given time. A subscription the provider still reports as
// active or trialing counts as expired once its current period end has
// passed.
func (s Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if (s.Status == SubscriptionActive || s.Status == SubscriptionTrialing) && s.CurrentPeriodEnd != nil {
		if now.After(*s.CurrentPeriodEnd) {
			return SubscriptionExpired
		}
	}
	return s.Status
}

// IsSubscribed reports whether the status grants access to the daily
// analysis pipeline.
func (s SubscriptionStatus) IsSubscribed() bool {
	return s == SubscriptionActive || s == SubscriptionTrialing
}
