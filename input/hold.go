package input

import (
	"time"

	"github.com/lixenwraith/portfolio-quest/parameter"
)

// HoldTracker turns press-only key events into held state
// A key stays down until its hold window lapses; every autorepeat extends the window
type HoldTracker struct {
	until [keyCount]time.Time
}

// NewHoldTracker returns a tracker with every key up
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{}
}

// Press records a press or autorepeat of k at now
func (h *HoldTracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}

	var window time.Duration
	switch {
	case k == KeyJump:
		window = parameter.HoldJump
	case now.Before(h.until[k]):
		window = parameter.HoldRepeat
	default:
		window = parameter.HoldInitial
	}

	next := now.Add(window)
	if next.After(h.until[k]) {
		h.until[k] = next
	}

	// Opposite direction releases immediately, there is no key-up to wait for
	switch k {
	case KeyLeft:
		h.until[KeyRight] = time.Time{}
	case KeyRight:
		h.until[KeyLeft] = time.Time{}
	}
}

// Release forces k up
func (h *HoldTracker) Release(k Key) {
	if k < keyCount {
		h.until[k] = time.Time{}
	}
}

// Reset releases every key
func (h *HoldTracker) Reset() {
	h.until = [keyCount]time.Time{}
}

// Sample returns the held state at now
func (h *HoldTracker) Sample(now time.Time) Keys {
	return Keys{
		Left:  now.Before(h.until[KeyLeft]),
		Right: now.Before(h.until[KeyRight]),
		Jump:  now.Before(h.until[KeyJump]),
	}
}
