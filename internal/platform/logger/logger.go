package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pantrifi/pipeline/internal/config"
)

// Setup initializes and configures the application's logging system based
// on the provided configuration. It creates a structured JSON logger with
// the appropriate log level, sets it as the default logger for the
// application, and returns it.
func Setup(cfg config.SchedulerConfig) *slog.Logger {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level and warn about it
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(handler)

	// Set this logger as the default for the application so the slog
	// package functions (slog.Info, slog.Error, ...) use it too.
	slog.SetDefault(logger)

	return logger
}
