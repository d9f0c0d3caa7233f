package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextTrigger(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 7, 12, 10, 30, 0, 0, time.UTC)

	t.Run("time later today resolves to today", func(t *testing.T) {
		t.Parallel()

		cfg := Config{ScheduledHour: 18, ScheduledMinute: 15}
		next := NextTrigger(cfg, base)

		assert.Equal(t, time.Date(2025, 7, 12, 18, 15, 0, 0, time.UTC), next)
		assert.True(t, next.After(base))
	})

	t.Run("time already passed resolves to tomorrow", func(t *testing.T) {
		t.Parallel()

		cfg := Config{ScheduledHour: 7, ScheduledMinute: 0}
		next := NextTrigger(cfg, base)

		assert.Equal(t, time.Date(2025, 7, 13, 7, 0, 0, 0, time.UTC), next)
	})

	t.Run("exact current minute resolves to tomorrow", func(t *testing.T) {
		t.Parallel()

		// now is exactly 10:30:00; the trigger must be strictly in the
		// future, so it moves to tomorrow.
		cfg := Config{ScheduledHour: 10, ScheduledMinute: 30}
		next := NextTrigger(cfg, base)

		assert.Equal(t, time.Date(2025, 7, 13, 10, 30, 0, 0, time.UTC), next)
	})

	t.Run("resolution is idempotent within the same minute", func(t *testing.T) {
		t.Parallel()

		cfg := Config{ScheduledHour: 18, ScheduledMinute: 15}
		first := NextTrigger(cfg, base)
		second := NextTrigger(cfg, base.Add(42*time.Second))

		assert.Equal(t, first, second)
	})
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   Countdown
		str    string
	}{
		{
			name:   "days hours minutes",
			target: now.Add(26*time.Hour + 5*time.Minute + 9*time.Second),
			want:   Countdown{Days: 1, Hours: 2, Minutes: 5, Seconds: 9},
			str:    "1d 2h 5m",
		},
		{
			name:   "seconds only",
			target: now.Add(42 * time.Second),
			want:   Countdown{Seconds: 42},
			str:    "42s",
		},
		{
			name:   "already passed",
			target: now.Add(-time.Minute),
			want:   Countdown{},
			str:    "0s",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Remaining(now, tt.target)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}
