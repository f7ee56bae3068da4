package engine

import (
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when told to, for stepping frame loops in tests
type ManualClock struct {
	mu    sync.RWMutex
	now   time.Time
	frame time.Duration
}

// NewManualClock starts at start; Step advances by one frame of the given length
func NewManualClock(start time.Time, frame time.Duration) *ManualClock {
	return &ManualClock{now: start, frame: frame}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Step advances by one frame
func (c *ManualClock) Step() {
	c.Advance(c.frame)
}

// Set jumps to t, which may be earlier than the current reading
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
