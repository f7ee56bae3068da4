package parameter

import "time"

// Terminal Key Hold Emulation
// Terminals report key presses and autorepeats but no releases, so a key counts as
// held for a window after each event
const (
	// HoldInitial covers the autorepeat delay after the first press
	HoldInitial = 500 * time.Millisecond

	// HoldRepeat covers the gap between autorepeat events
	HoldRepeat = 100 * time.Millisecond

	// HoldJump is short so a single tap reads as press then release
	HoldJump = 120 * time.Millisecond
)
