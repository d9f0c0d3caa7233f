package domain

import "time"

// User is an account row from the users table.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	GoogleID         string    `json:"google_id"`
	HasClaimedTrial  bool      `json:"has_claimed_trial"`
	StripeCustomerID string    `json:"stripe_customer_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// Subscriber is the extraction output row: a user joined with their
// highest-priority subscription, if any. Subscription fields are empty
// when the user has never subscribed.
type Subscriber struct {
	UserID               string             `json:"user_id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	GoogleID             string             `json:"google_id"`
	HasClaimedTrial      bool               `json:"has_claimed_trial"`
	StripeCustomerID     string             `json:"stripe_customer_id"`
	UserCreatedAt        time.Time          `json:"user_created_at"`
	SubscriptionID       string             `json:"subscription_id,omitempty"`
	SubscriptionStatus   SubscriptionStatus `json:"subscription_status"`
	OriginalStatus       SubscriptionStatus `json:"original_status,omitempty"`
	StripeSubscriptionID string             `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodStart   *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	TrialEnd             *time.Time         `json:"trial_end,omitempty"`
	SubscriptionCreated  *time.Time         `json:"subscription_created_at,omitempty"`
}

// NoSubscription is the status recorded for users without any
// subscription rows.
const NoSubscription SubscriptionStatus = "No Subscription"

// SheetLink is one linked Google Sheet belonging to a user.
type SheetLink struct {
	SheetID     string    `json:"sheet_id"`
	SheetName   string    `json:"sheet_name"`
	SheetURL    string    `json:"sheet_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UploadedFile is one uploaded artifact (CSV inventory or menu PDF)
// belonging to a user.
type UploadedFile struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}

// SubscribedUser is the fetch-step output row: a subscribed user with
// the artifact references the analysis step may consume.
type SubscribedUser struct {
	UserID       string         `json:"user_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	GoogleSheets []SheetLink    `json:"google_sheets"`
	CSVFiles     []UploadedFile `json:"csv_files"`
	MenuFiles    []UploadedFile `json:"menu_files"`
}

// EligibleUser is the filter-step output row: a user with at least one
// inventory source (sheet or CSV), URL-cleaned and capped per kind.
type EligibleUser struct {
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	GoogleSheetURLs []string       `json:"google_sheets_urls"`
	CSVFileURLs     []UploadedFile `json:"csv_file_urls"`
	MenuFileURLs    []UploadedFile `json:"menu_file_urls"`
}
