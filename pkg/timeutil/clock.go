// Package timeutil holds the wall-clock helpers used by the planner: date
// keys, "h:mm AM" clock strings, day periods and the periodic tick.
package timeutil

import (
	"context"
	"sync"
	"time"
)

// DateKeyLayout is the canonical "YYYY-MM-DD" layout used to detect day
// rollover independent of time-of-day.
const DateKeyLayout = "2006-01-02"

// Clock yields the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the local system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// DateKey returns the date key for t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" key as local midnight.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}

// ValidDateKey reports whether key is a well-formed date key.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// AddDays shifts a date key by n days. Malformed keys are returned unchanged.
func AddDays(key string, n int) string {
	t, err := ParseDateKey(key)
	if err != nil {
		return key
	}
	return DateKey(t.AddDate(0, 0, n))
}

// FormatLongDate renders t as "Monday, January 2, 2006".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatWallClock renders t as "3:04:05 PM".
func FormatWallClock(t time.Time) string {
	return t.Format("3:04:05 PM")
}

// FormatShortDate renders a date key as "Sat, Jun 1, 2024". Empty keys render
// as "TBD"; malformed keys are returned as-is.
func FormatShortDate(key string) string {
	if key == "" {
		return "TBD"
	}
	t, err := ParseDateKey(key)
	if err != nil {
		return key
	}
	return t.Format("Mon, Jan 2, 2006")
}

// Every calls fn with the clock's time on each tick until ctx is done. The
// ticker is stopped before Every returns, so fn is never invoked after that.
func Every(ctx context.Context, interval time.Duration, clock Clock, fn func(time.Time)) {
	if clock == nil {
		clock = RealClock{}
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(clock.Now())
		}
	}
}
