package scheduler

import (
	"time"

	"github.com/google/uuid"
	"github.com/pantrifi/pipeline/internal/step"
)

// CycleSummary aggregates the outcomes of one pipeline cycle. It is
// produced for every cycle, including cycles halted on the first
// failure, and is display-only: nothing persists it.
type CycleSummary struct {
	// CycleID identifies the cycle in logs.
	CycleID uuid.UUID

	// Trigger is the instant the cycle was scheduled to start.
	Trigger time.Time

	// Attempted counts steps that were actually invoked this cycle;
	// steps after the first failure are skipped and not counted.
	Attempted int

	// Succeeded and Failed partition the attempted steps.
	Succeeded int
	Failed    int

	// Outcomes holds the per-step results in execution order.
	Outcomes []step.Outcome

	Started  time.Time
	Finished time.Time
}

// SuccessRate returns the percentage of attempted steps that succeeded,
// or zero when nothing ran.
func (s CycleSummary) SuccessRate() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Attempted) * 100
}

// Halted reports whether the cycle stopped before completing the full
// step sequence.
func (s CycleSummary) Halted() bool {
	return s.Failed > 0
}
