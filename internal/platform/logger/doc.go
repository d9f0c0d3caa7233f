// Package logger configures the application's structured logging. All
// binaries log through log/slog with a JSON handler; the level comes
// from the scheduler configuration group.
package logger
