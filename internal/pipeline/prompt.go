package pipeline

import (
	"fmt"
	"strings"
)

// promptInstructions tells the model what to do and the exact JSON
// shape to answer with. The field names are the domain.AnalysisReport
// wire contract; the "raw JSON only" demand is what makes fence
// stripping in DecodeReport a rare path rather than the normal one.
const promptInstructions = `You are a food inventory analyst. Using the inventory data above and today's date, identify expired items and items expiring within the next 7 days, and suggest how to use items before they spoil.

Respond with raw JSON only. No markdown, no code fences, no commentary. Use exactly this structure:
{
  "current_date": "YYYY-MM-DD",
  "expired_items": [{"item_name": "", "expiration_date": "YYYY-MM-DD", "days_overdue": 0, "alert_level": "high"}],
  "items_expiring_soon": [{"item_name": "", "expiration_date": "YYYY-MM-DD", "days_until_expiry": 0, "alert_level": "medium"}],
  "ai_suggestions": [""],
  "potential_money_saved": "$0.00",
  "summary_stats": {"items_expiring_soon_count": 0, "expired_items_count": 0, "estimated_money_saved": "$0.00"}
}`

// InventorySection is one staged source rendered as prompt text.
type InventorySection struct {
	Label string
	Text  string
}

// BuildPrompt assembles the analysis prompt for one user: today's date,
// each inventory section under its label, then the response
// instructions.
func BuildPrompt(userName, today string, sections []InventorySection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today's date is %s.\n", today)
	fmt.Fprintf(&b, "Inventory data for %s:\n\n", userName)

	for _, s := range sections {
		fmt.Fprintf(&b, "=== %s ===\n%s\n\n", s.Label, strings.TrimSpace(s.Text))
	}

	b.WriteString(promptInstructions)
	return b.String()
}
