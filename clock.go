package cursor

import "time"

// Clock reports the time elapsed since the animation started.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Duration

// Now calls f.
func (f ClockFunc) Now() time.Duration { return f() }

// MonotonicClock measures time since its creation on the monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed time since NewMonotonicClock.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
