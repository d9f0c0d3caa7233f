package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	sections := []InventorySection{
		{Label: "Google Sheet 1", Text: "Record 1:\n  Item: milk\n"},
		{Label: "Uploaded CSV: pantry.csv", Text: "Record 1:\n  Item: rice\n"},
	}

	prompt := BuildPrompt("Alice", "2025-06-15", sections)

	assert.Contains(t, prompt, "Today's date is 2025-06-15.")
	assert.Contains(t, prompt, "Inventory data for Alice:")
	assert.Contains(t, prompt, "=== Google Sheet 1 ===")
	assert.Contains(t, prompt, "=== Uploaded CSV: pantry.csv ===")
	assert.Contains(t, prompt, `"expired_items"`)
	assert.Contains(t, prompt, "raw JSON only")

	sheetIdx := strings.Index(prompt, "Google Sheet 1")
	instrIdx := strings.Index(prompt, "raw JSON only")
	assert.Less(t, sheetIdx, instrIdx, "data comes before instructions")
}
