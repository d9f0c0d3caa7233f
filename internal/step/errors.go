package step

import "errors"

// Failure classifications for step execution. All three are terminal
// for the step and halt the running cycle.
var (
	// ErrStepNotFound is returned when the step executable cannot be
	// located or started.
	ErrStepNotFound = errors.New("step executable not found")

	// ErrStepFailed is returned when the step ran but completed with a
	// nonzero exit status.
	ErrStepFailed = errors.New("step execution failed")

	// ErrStepCrashed is returned when invocation itself failed
	// unexpectedly, before or during the run.
	ErrStepCrashed = errors.New("step invocation crashed")
)
