package step

import "time"

// Step describes one external pipeline step. Identity is the step's
// position in the configured sequence; Name is for display and logging.
type Step struct {
	// Name is the human-readable step name.
	Name string

	// Executable is the file name resolved against the runner's base
	// directory.
	Executable string

	// Streaming forwards the step's output to the parent's stdout and
	// stderr live instead of buffering it. Used for long-running steps;
	// affects observability only, never the success/failure contract.
	Streaming bool
}

// Status is the classified result of a step execution.
type Status string

// Possible outcome status values.
const (
	StatusSuccess  Status = "success"
	StatusNotFound Status = "not_found"
	StatusFailed   Status = "failed"
	StatusCrashed  Status = "crashed"
)

// Outcome records the result of executing one step. It is never
// silently dropped: every outcome is counted in the cycle summary.
type Outcome struct {
	Step     Step
	Status   Status
	Duration time.Duration

	// Output and Stderr hold the captured streams. Both are empty for
	// streaming steps, whose output went to the terminal directly.
	Output string
	Stderr string

	// ExitCode is the step's exit status when Status is StatusFailed.
	ExitCode int

	// Err is the classification error (ErrStepNotFound, ErrStepFailed
	// or ErrStepCrashed), wrapped with detail. Nil on success.
	Err error
}

// Succeeded reports whether the step completed with exit status zero.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}
