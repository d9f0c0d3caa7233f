package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Config is the persisted trigger configuration. Timestamps are stored
// in RFC 3339 form; ScheduledHour and ScheduledMinute are the wall-clock
// time-of-day the pipeline fires at every day.
type Config struct {
	ScheduledHour   int       `json:"scheduled_hour"`
	ScheduledMinute int       `json:"scheduled_minute"`
	LastUpdated     time.Time `json:"last_updated"`
	NextExecution   time.Time `json:"next_execution"`
}

// Validate checks that the configured time-of-day is in range.
func (c Config) Validate() error {
	if c.ScheduledHour < 0 || c.ScheduledHour > 23 {
		return fmt.Errorf("%w: hour %d out of range [0,23]", ErrInvalidSchedule, c.ScheduledHour)
	}
	if c.ScheduledMinute < 0 || c.ScheduledMinute > 59 {
		return fmt.Errorf("%w: minute %d out of range [0,59]", ErrInvalidSchedule, c.ScheduledMinute)
	}
	return nil
}

// Store reads and writes the trigger configuration file.
type Store struct {
	path string
}

// NewStore creates a Store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the persisted trigger configuration. A
// missing file returns ErrNoSchedule; a malformed file returns
// ErrInvalidSchedule. Both are startup errors for the scheduler, never
// a crash.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSchedule, s.path)
		}
		return nil, fmt.Errorf("failed to read schedule file %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save overwrites the trigger configuration with the given time-of-day,
// recording the resolved next execution instant relative to now.
func (s *Store) Save(hour, minute int, now time.Time) (*Config, error) {
	cfg := Config{
		ScheduledHour:   hour,
		ScheduledMinute: minute,
		LastUpdated:     now,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.NextExecution = NextTrigger(cfg, now)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write schedule file %s: %w", s.path, err)
	}

	return &cfg, nil
}
