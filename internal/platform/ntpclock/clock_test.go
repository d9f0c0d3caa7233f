package ntpclock

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNowUsesNetworkTime(t *testing.T) {
	t.Parallel()

	network := time.Date(2025, 6, 15, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	c := &Clock{
		server: DefaultServer,
		query:  func(string) (time.Time, error) { return network, nil },
		system: func() time.Time { t.Fatal("system clock must not be consulted"); return time.Time{} },
		logger: testLogger(),
	}

	got := c.Now()
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(network))
}

func TestNowFallsBackToSystemClock(t *testing.T) {
	t.Parallel()

	system := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	c := &Clock{
		server: DefaultServer,
		query:  func(string) (time.Time, error) { return time.Time{}, errors.New("timeout") },
		system: func() time.Time { return system },
		logger: testLogger(),
	}

	assert.True(t, c.Now().Equal(system))
}

func TestTodayFormat(t *testing.T) {
	t.Parallel()

	c := &Clock{
		server: DefaultServer,
		query: func(string) (time.Time, error) {
			return time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC), nil
		},
		logger: testLogger(),
	}

	assert.Equal(t, "2025-01-05", c.Today())
}
