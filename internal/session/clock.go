// Package session implements the timed typing loop.
package session

import (
	"errors"
	"time"
)

// ErrInvalidDuration reports a non-positive session length.
var ErrInvalidDuration = errors.New("duration must be positive")

// Clock is a monotonic countdown. It is not pausable and expires exactly
// once its duration elapses.
type Clock struct {
	duration time.Duration
	startAt  time.Time
	started  bool
}

// NewClock builds a countdown for the given duration.
func NewClock(d time.Duration) (*Clock, error) {
	if d <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Clock{duration: d}, nil
}

// Start arms the countdown. Subsequent calls are ignored.
func (c *Clock) Start(now time.Time) {
	if c.started {
		return
	}
	c.startAt = now
	c.started = true
}

// Started reports whether the countdown is armed.
func (c *Clock) Started() bool {
	return c.started
}

// Duration returns the configured session length.
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// Elapsed returns time spent since Start, capped at the duration.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if !c.started {
		return 0
	}
	elapsed := now.Sub(c.startAt)
	if elapsed > c.duration {
		return c.duration
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns time left on the countdown.
func (c *Clock) Remaining(now time.Time) time.Duration {
	return c.duration - c.Elapsed(now)
}

// Expired reports whether the countdown has run out.
func (c *Clock) Expired(now time.Time) bool {
	return c.started && now.Sub(c.startAt) >= c.duration
}
