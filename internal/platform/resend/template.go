package resend

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pantrifi/pipeline/internal/domain"
)

// alertTemplate is the HTML alert body. Inline styles only: email
// clients strip stylesheets.
const alertTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 0 auto; padding: 16px;">
  <h2 style="color: #2e7d32;">Pantrifi Inventory Report</h2>
  <p>Hi {{.Name}}, here is your inventory report for {{.Report.CurrentDate}}.</p>

  {{if .Report.ExpiredItems}}
  <h3 style="color: #c62828;">Expired Items ({{.Report.SummaryStats.ExpiredItemsCount}})</h3>
  <ul>
    {{range .Report.ExpiredItems}}
    <li style="color: #c62828;">
      <strong>{{.ItemName}}</strong> &mdash; expired {{.ExpirationDate}} ({{.DaysOverdue}} days overdue)
    </li>
    {{end}}
  </ul>
  {{end}}

  {{if .Report.ItemsExpiringSoon}}
  <h3 style="color: #ef6c00;">Expiring Soon ({{.Report.SummaryStats.ItemsExpiringSoonCount}})</h3>
  <ul>
    {{range .Report.ItemsExpiringSoon}}
    <li style="color: #ef6c00;">
      <strong>{{.ItemName}}</strong> &mdash; expires {{.ExpirationDate}} (in {{.DaysUntilExpiry}} days)
    </li>
    {{end}}
  </ul>
  {{end}}

  {{if .Report.AISuggestions}}
  <h3>Suggestions</h3>
  <ul>
    {{range .Report.AISuggestions}}
    <li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}

  <p><strong>Potential savings:</strong> {{.Report.PotentialMoneySaved}}</p>
  <p>
    <a href="{{.DashboardURL}}" style="background: #2e7d32; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">
      View your dashboard
    </a>
  </p>
</body>
</html>`

var alertTmpl = template.Must(template.New("alert").Parse(alertTemplate))

type alertData struct {
	Name         string
	Report       *domain.AnalysisReport
	DashboardURL string
}

// renderHTML executes the alert template for one user's report.
func renderHTML(name string, report *domain.AnalysisReport, dashboardURL string) (string, error) {
	var b strings.Builder
	err := alertTmpl.Execute(&b, alertData{
		Name:         name,
		Report:       report,
		DashboardURL: dashboardURL,
	})
	if err != nil {
		return "", fmt.Errorf("executing alert template: %w", err)
	}
	return b.String(), nil
}
