package main

import (
	"fmt"
	"time"

	"github.com/pantrifi/pipeline/internal/scheduler"
)

func nowLocal() time.Time {
	return time.Now()
}

// printCountdown overwrites a single terminal line with the remaining
// time, once per poll.
func printCountdown(st scheduler.Status) {
	fmt.Printf("\rNext run in %-16s", st.Remaining.String())
}

// printSummary renders one finished cycle for the terminal.
func printSummary(summary scheduler.CycleSummary) {
	fmt.Printf("\n\n=== Pipeline cycle %s ===\n", summary.CycleID)
	fmt.Printf("Triggered: %s\n", summary.Trigger.Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration:  %s\n", summary.Finished.Sub(summary.Started).Round(time.Second))

	for i, o := range summary.Outcomes {
		mark := "OK"
		if !o.Succeeded() {
			mark = "FAIL"
		}
		fmt.Printf("  %d. [%-4s] %s (%s)\n", i+1, mark, o.Step.Name, o.Duration.Round(time.Millisecond))
		if o.Err != nil {
			fmt.Printf("          %v\n", o.Err)
		}
	}

	fmt.Printf("Steps: %d attempted, %d succeeded, %d failed",
		summary.Attempted, summary.Succeeded, summary.Failed)
	if summary.Halted() {
		fmt.Printf(" (sequence halted early)")
	}
	fmt.Printf("\nSuccess rate: %.0f%%\n\n", summary.SuccessRate())
}
