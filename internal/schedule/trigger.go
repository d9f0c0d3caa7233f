package schedule

import (
	"fmt"
	"strings"
	"time"
)

// NextTrigger resolves the configured time-of-day to the next absolute
// trigger instant: today at hh:mm if that is still in the future,
// otherwise tomorrow at hh:mm. The result is always strictly after now,
// and resolving twice within the same minute yields the same instant.
func NextTrigger(cfg Config, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(),
		cfg.ScheduledHour, cfg.ScheduledMinute, 0, 0, now.Location())

	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Countdown is the display breakdown of the time remaining until the
// trigger instant.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining computes the countdown from now to the target instant. A
// target that has already passed yields the zero countdown.
func Remaining(now, target time.Time) Countdown {
	d := target.Sub(now)
	if d < 0 {
		return Countdown{}
	}

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	return Countdown{Days: days, Hours: hours, Minutes: minutes, Seconds: seconds}
}

// String renders the countdown in the compact "1d 2h 3m" form used by
// the status display. Seconds appear only when everything else is zero.
func (c Countdown) String() string {
	var parts []string
	if c.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", c.Days))
	}
	if c.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", c.Hours))
	}
	if c.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", c.Minutes))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", c.Seconds))
	}
	return strings.Join(parts, " ")
}
