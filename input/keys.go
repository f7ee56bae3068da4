package input

// Key identifies one of the sampled game keys
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	keyCount
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Keys is the held state of every game key for one frame
type Keys struct {
	Left, Right, Jump bool
}

// Held reports whether k is down
func (s Keys) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return s.Left
	case KeyRight:
		return s.Right
	case KeyJump:
		return s.Jump
	}
	return false
}

// Horizontal returns -1, 0 or 1. Both directions held cancel out.
func (s Keys) Horizontal() int {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	}
	return 0
}

// Edge detects the up-to-down transition of a single key across frames
type Edge struct {
	wasDown bool
}

// Rising consumes this frame's state and reports a press that was not held last frame
func (e *Edge) Rising(down bool) bool {
	rising := down && !e.wasDown
	e.wasDown = down
	return rising
}
