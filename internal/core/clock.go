package core

import (
	"math/rand"
	"time"
)

// Clock supplies the wall-clock timestamps a tick driver measures deltas with.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to.
// Used by headless simulation and tests to feed synthetic deltas.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// RngSource supplies uniform random values in [0, 1).
// *rand.Rand satisfies it.
type RngSource interface {
	Float64() float64
}

// NewRng returns a seeded RngSource.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
