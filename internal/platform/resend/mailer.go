package resend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/pantrifi/pipeline/internal/domain"
)

// sendFunc is the delivery seam. The default posts through the Resend
// SDK; tests record the request instead.
type sendFunc func(ctx context.Context, req *resend.SendEmailRequest) (string, error)

// Mailer sends alert emails for analysis reports.
type Mailer struct {
	from         string
	dashboardURL string
	logger       *slog.Logger
	send         sendFunc
}

// NewMailer creates a Mailer backed by the Resend API.
func NewMailer(apiKey, from, dashboardURL string, logger *slog.Logger) *Mailer {
	client := resend.NewClient(apiKey)
	return &Mailer{
		from:         from,
		dashboardURL: dashboardURL,
		logger:       logger,
		send: func(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
			sent, err := client.Emails.SendWithContext(ctx, req)
			if err != nil {
				return "", err
			}
			return sent.Id, nil
		},
	}
}

// SendAlert renders the report and emails it to the user. The subject
// carries the alert date as MM/DD/YYYY.
func (m *Mailer) SendAlert(ctx context.Context, user domain.EligibleUser, report *domain.AnalysisReport, alertDate time.Time) error {
	html, err := renderHTML(user.Name, report, m.dashboardURL)
	if err != nil {
		return fmt.Errorf("rendering alert email: %w", err)
	}

	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{user.Email},
		Subject: Subject(alertDate),
		Html:    html,
		Text:    renderText(user.Name, report, m.dashboardURL),
	}

	id, err := m.send(ctx, req)
	if err != nil {
		return fmt.Errorf("sending alert to %s: %w", user.Email, err)
	}

	m.logger.Info("alert email sent", "user_id", user.UserID, "email_id", id)
	return nil
}

// Subject formats the alert email subject for a given date.
func Subject(alertDate time.Time) string {
	return "Pantrifi Alert - " + alertDate.Format("01/02/2006")
}

// renderText builds the plain-text alternative body.
func renderText(name string, report *domain.AnalysisReport, dashboardURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\nYour Pantrifi inventory report for %s:\n\n", name, report.CurrentDate)

	if len(report.ExpiredItems) > 0 {
		b.WriteString("EXPIRED ITEMS\n")
		for _, item := range report.ExpiredItems {
			fmt.Fprintf(&b, "  - %s (expired %s, %d days overdue)\n",
				item.ItemName, item.ExpirationDate, item.DaysOverdue)
		}
		b.WriteString("\n")
	}

	if len(report.ItemsExpiringSoon) > 0 {
		b.WriteString("EXPIRING SOON\n")
		for _, item := range report.ItemsExpiringSoon {
			fmt.Fprintf(&b, "  - %s (expires %s, in %d days)\n",
				item.ItemName, item.ExpirationDate, item.DaysUntilExpiry)
		}
		b.WriteString("\n")
	}

	if len(report.AISuggestions) > 0 {
		b.WriteString("SUGGESTIONS\n")
		for _, s := range report.AISuggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Potential savings: %s\n\nView your dashboard: %s\n",
		report.PotentialMoneySaved, dashboardURL)

	return b.String()
}
