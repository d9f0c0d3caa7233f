// Package cleanup performs delayed, retryable teardown of per-user
// scratch directories without blocking the pipeline's forward progress.
// Tasks run on a small fixed worker pool; each task waits a short settle
// delay, then attempts removal with bounded exponential backoff,
// retrying only while the resource is busy. The pipeline waits for all
// submitted tasks (with a per-task timeout) before a cycle's resources
// count as reclaimed, and the pool's lifecycle is owned explicitly:
// submit, await, shutdown. Cleanup failures are warnings, never
// pipeline failures.
package cleanup
