package store

import "errors"

// Common store errors shared by all implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation or
	// violates a database constraint on write.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrQueryFailed wraps database-level failures that are neither
	// not-found nor constraint violations.
	ErrQueryFailed = errors.New("query failed")
)
