package session

import (
	"sync"
	"time"
)

// Clock abstracts time for frame pacing
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// systemClock uses the real monotonic clock
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockClock is a controllable clock for tests. Sleep advances the
// clock instead of blocking and records the requested duration.
type MockClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

// NewMockClock returns a mock clock starting at the given time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep records d and advances the clock by it
func (c *MockClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

// Advance moves the clock forward without recording a sleep
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Slept returns the recorded sleep durations in order
func (c *MockClock) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.slept))
	copy(out, c.slept)
	return out
}
