package domain

// ExpiredItem is one inventory item the analysis found past its
// expiration date.
type ExpiredItem struct {
	ItemName       string `json:"item_name"`
	ExpirationDate string `json:"expiration_date"`
	DaysOverdue    int    `json:"days_overdue"`
	AlertLevel     string `json:"alert_level"`
}

// ExpiringItem is one inventory item approaching its expiration date.
type ExpiringItem struct {
	ItemName        string `json:"item_name"`
	ExpirationDate  string `json:"expiration_date"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	AlertLevel      string `json:"alert_level"`
}

// SummaryStats are the aggregate counters the email template and the
// terminal summary read from a report.
type SummaryStats struct {
	ItemsExpiringSoonCount int    `json:"items_expiring_soon_count"`
	ExpiredItemsCount      int    `json:"expired_items_count"`
	EstimatedMoneySaved    string `json:"estimated_money_saved"`
}

// AnalysisReport is the structured result of one user's AI analysis.
// Field names are the wire contract with the generation model; the
// model is instructed to return exactly this shape as raw JSON.
type AnalysisReport struct {
	CurrentDate         string         `json:"current_date"`
	ExpiredItems        []ExpiredItem  `json:"expired_items"`
	ItemsExpiringSoon   []ExpiringItem `json:"items_expiring_soon"`
	AISuggestions       []string       `json:"ai_suggestions"`
	PotentialMoneySaved string         `json:"potential_money_saved"`
	SummaryStats        SummaryStats   `json:"summary_stats"`

	// Error carries a processing failure description when the report is
	// a fallback rather than a genuine model response.
	Error string `json:"error,omitempty"`
}

// FallbackReport builds the zero-valued report recorded when the model
// response could not be decoded. The pipeline still persists and
// summarizes it so a broken response is never silently dropped.
func FallbackReport(currentDate, reason string) *AnalysisReport {
	return &AnalysisReport{
		CurrentDate:         currentDate,
		ExpiredItems:        []ExpiredItem{},
		ItemsExpiringSoon:   []ExpiringItem{},
		AISuggestions:       []string{},
		PotentialMoneySaved: "$0",
		SummaryStats: SummaryStats{
			ItemsExpiringSoonCount: 0,
			ExpiredItemsCount:      0,
			EstimatedMoneySaved:    "$0",
		},
		Error: reason,
	}
}
