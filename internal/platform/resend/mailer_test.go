package resend

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	resendgo "github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrifi/pipeline/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		CurrentDate: "2025-06-15",
		ExpiredItems: []domain.ExpiredItem{
			{ItemName: "Milk", ExpirationDate: "2025-06-10", DaysOverdue: 5, AlertLevel: "high"},
		},
		ItemsExpiringSoon: []domain.ExpiringItem{
			{ItemName: "Eggs", ExpirationDate: "2025-06-18", DaysUntilExpiry: 3, AlertLevel: "medium"},
		},
		AISuggestions:       []string{"Use the milk in a quiche today."},
		PotentialMoneySaved: "$12.50",
		SummaryStats: domain.SummaryStats{
			ItemsExpiringSoonCount: 1,
			ExpiredItemsCount:      1,
			EstimatedMoneySaved:    "$12.50",
		},
	}
}

func TestSubjectFormat(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Pantrifi Alert - 06/05/2025", Subject(date))
}

func TestSendAlertBuildsRequest(t *testing.T) {
	t.Parallel()

	var got *resendgo.SendEmailRequest
	m := &Mailer{
		from:         "alerts@pantrifi.test",
		dashboardURL: "https://pantrifi.test/dashboard",
		logger:       testLogger(),
		send: func(_ context.Context, req *resendgo.SendEmailRequest) (string, error) {
			got = req
			return "email-123", nil
		},
	}

	user := domain.EligibleUser{UserID: "u1", Name: "Alice", Email: "alice@example.com"}
	err := m.SendAlert(context.Background(), user, sampleReport(),
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alerts@pantrifi.test", got.From)
	assert.Equal(t, []string{"alice@example.com"}, got.To)
	assert.Equal(t, "Pantrifi Alert - 06/15/2025", got.Subject)
	assert.Contains(t, got.Html, "Milk")
	assert.Contains(t, got.Html, "#c62828", "expired items render in red")
	assert.Contains(t, got.Html, "#ef6c00", "expiring items render in orange")
	assert.Contains(t, got.Html, "https://pantrifi.test/dashboard")
	assert.Contains(t, got.Text, "EXPIRED ITEMS")
	assert.Contains(t, got.Text, "Eggs (expires 2025-06-18, in 3 days)")
}

func TestSendAlertDeliveryFailure(t *testing.T) {
	t.Parallel()

	m := &Mailer{
		from:   "alerts@pantrifi.test",
		logger: testLogger(),
		send: func(context.Context, *resendgo.SendEmailRequest) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	user := domain.EligibleUser{UserID: "u1", Name: "Bob", Email: "bob@example.com"}
	err := m.SendAlert(context.Background(), user, sampleReport(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bob@example.com")
}

func TestRenderHTMLEscapesUserData(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.AISuggestions = []string{`<script>alert("x")</script>`}

	html, err := renderHTML("Eve", report, "https://pantrifi.test")

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTMLOmitsEmptySections(t *testing.T) {
	t.Parallel()

	report := domain.FallbackReport("2025-06-15", "model response unreadable")
	html, err := renderHTML("Carol", report, "https://pantrifi.test")

	require.NoError(t, err)
	assert.NotContains(t, html, "Expired Items")
	assert.NotContains(t, html, "Expiring Soon")
	assert.NotContains(t, html, "Suggestions")
	assert.Contains(t, html, "$0")
}
