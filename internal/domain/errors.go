package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when an alert is created without a user.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyAnalysis is returned when an alert is created with no
	// analysis payload.
	ErrEmptyAnalysis = errors.New("analysis cannot be empty")
)
