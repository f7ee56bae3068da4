package engine

import (
	"time"

	"github.com/lixenwraith/portfolio-quest/parameter"
)

// Clock is the time source frame loops measure dt against
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer turns clock readings into per-frame elapsed time
// Long stalls (suspended terminal, debugger) are capped so tweens and physics never jump
type FrameTimer struct {
	clock Clock
	last  time.Time
}

// NewFrameTimer starts timing from the clock's current reading
func NewFrameTimer(c Clock) *FrameTimer {
	return &FrameTimer{clock: c, last: c.Now()}
}

// Tick returns the time since the previous tick, capped at parameter.MaxFrameDelta
func (f *FrameTimer) Tick() time.Duration {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxFrameDelta {
		return parameter.MaxFrameDelta
	}
	return dt
}
