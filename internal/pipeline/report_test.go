package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "current_date": "2025-06-15",
  "expired_items": [{"item_name": "Milk", "expiration_date": "2025-06-10", "days_overdue": 5, "alert_level": "high"}],
  "items_expiring_soon": [],
  "ai_suggestions": ["Freeze the bread."],
  "potential_money_saved": "$8.00",
  "summary_stats": {"items_expiring_soon_count": 0, "expired_items_count": 1, "estimated_money_saved": "$8.00"}
}`

func TestDecodeReportRawJSON(t *testing.T) {
	t.Parallel()

	report := DecodeReport(sampleJSON, "2025-06-15")

	assert.Empty(t, report.Error)
	assert.Equal(t, "2025-06-15", report.CurrentDate)
	require.Len(t, report.ExpiredItems, 1)
	assert.Equal(t, "Milk", report.ExpiredItems[0].ItemName)
	assert.Equal(t, 5, report.ExpiredItems[0].DaysOverdue)
}

func TestDecodeReportFencedJSON(t *testing.T) {
	t.Parallel()

	for _, wrapped := range []string{
		"```json\n" + sampleJSON + "\n```",
		"```\n" + sampleJSON + "\n```",
		"  ```JSON\n" + sampleJSON + "\n```  ",
	} {
		report := DecodeReport(wrapped, "2025-06-15")
		assert.Empty(t, report.Error, "fenced responses must decode cleanly")
		assert.Equal(t, "$8.00", report.PotentialMoneySaved)
	}
}

func TestDecodeReportGarbageFallsBack(t *testing.T) {
	t.Parallel()

	report := DecodeReport("I'm sorry, I cannot analyze this inventory.", "2025-06-15")

	assert.NotEmpty(t, report.Error)
	assert.Equal(t, "2025-06-15", report.CurrentDate)
	assert.Empty(t, report.ExpiredItems)
	assert.Equal(t, "$0", report.PotentialMoneySaved)
}

func TestDecodeReportFillsMissingDate(t *testing.T) {
	t.Parallel()

	report := DecodeReport(`{"expired_items": []}`, "2025-06-15")

	assert.Empty(t, report.Error)
	assert.Equal(t, "2025-06-15", report.CurrentDate)
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, "plain text", stripFences("  plain text\n"))
}
