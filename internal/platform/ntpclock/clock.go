package ntpclock

import (
	"log/slog"
	"time"

	"github.com/beevik/ntp"
)

// DefaultServer is the NTP pool queried for the authoritative time.
const DefaultServer = "pool.ntp.org"

// queryFunc fetches the current time from an NTP server. Injected by
// tests; the default is ntp.Time.
type queryFunc func(server string) (time.Time, error)

// Clock resolves the current UTC time, preferring a network time
// source over the host clock.
type Clock struct {
	server string
	query  queryFunc
	system func() time.Time
	logger *slog.Logger
}

// New creates a Clock backed by the given NTP server.
func New(server string, logger *slog.Logger) *Clock {
	return &Clock{
		server: server,
		query:  ntp.Time,
		system: time.Now,
		logger: logger,
	}
}

// Now returns the current time in UTC. On NTP failure it falls back to
// the system clock with a warning rather than failing the caller.
func (c *Clock) Now() time.Time {
	t, err := c.query(c.server)
	if err != nil {
		c.logger.Warn("ntp query failed, falling back to system clock",
			"server", c.server,
			"error", err)
		return c.system().UTC()
	}
	return t.UTC()
}

// Today returns the current UTC date formatted as YYYY-MM-DD, the form
// embedded in analysis prompts and alert records.
func (c *Clock) Today() string {
	return c.Now().Format("2006-01-02")
}
