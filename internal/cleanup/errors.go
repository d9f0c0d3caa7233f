package cleanup

import "errors"

// Errors returned by the cleanup executor.
var (
	// ErrExecutorClosed is returned by Submit after shutdown has begun.
	ErrExecutorClosed = errors.New("cleanup executor is closed")

	// ErrQueueFull is returned by Submit when the task queue is at
	// capacity.
	ErrQueueFull = errors.New("cleanup queue is full")

	// ErrResourceBusy marks a teardown attempt that failed because the
	// target is still in use. Busy failures are retried with backoff.
	ErrResourceBusy = errors.New("cleanup target is busy")

	// ErrTimeout is reported by AwaitAll for a task that did not finish
	// within its individual wait budget. Logged as a warning, never
	// escalated to a pipeline failure.
	ErrTimeout = errors.New("cleanup task timed out")
)
