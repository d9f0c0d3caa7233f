package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/pantrifi/pipeline/internal/domain"
)

// DecodeReport parses the model's response into an AnalysisReport.
// Models sometimes wrap JSON in markdown fences despite instructions,
// so fences are stripped first. An unparseable response yields the
// fallback report rather than an error: a broken response is recorded
// and surfaced, never silently dropped.
func DecodeReport(raw, today string) *domain.AnalysisReport {
	cleaned := stripFences(raw)

	var report domain.AnalysisReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return domain.FallbackReport(today, "model response was not valid JSON: "+err.Error())
	}
	if report.CurrentDate == "" {
		report.CurrentDate = today
	}

	return &report
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag, leaving other content untouched.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		trimmed = trimmed[i+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
