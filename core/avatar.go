package core

import "github.com/lixenwraith/portfolio-quest/vmath"

// Facing is the horizontal direction the avatar sprite looks
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right, -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// MotionState selects the avatar animation
type MotionState uint8

const (
	MotionIdle MotionState = iota
	MotionRunning
	MotionAirborne
)

func (m MotionState) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionRunning:
		return "running"
	case MotionAirborne:
		return "airborne"
	}
	return "unknown"
}

// Floor is what the avatar is standing on, or will land on once airborne.
// The zero value is the ground; a surface floor carries exactly one portal id.
type Floor struct {
	portal PortalID
}

// GroundFloor returns the ground floor
func GroundFloor() Floor { return Floor{} }

// SurfaceFloor returns the stand-surface floor under the given portal
func SurfaceFloor(id PortalID) Floor { return Floor{portal: id} }

// OnGround reports whether the floor is the ground
func (f Floor) OnGround() bool { return f.portal == "" }

// Portal returns the portal whose stand-surface is the floor
func (f Floor) Portal() (PortalID, bool) {
	return f.portal, f.portal != ""
}

func (f Floor) String() string {
	if f.OnGround() {
		return "ground"
	}
	return string(f.portal)
}

// Avatar is the player-controlled character, positioned by its centre
type Avatar struct {
	X, Y   float64
	VelY   float64
	Facing Facing
	Motion MotionState
	Floor  Floor

	// Rendered size, read from the sprite at scene setup
	Width, Height float64
}

func (a Avatar) HalfWidth() float64  { return a.Width / 2 }
func (a Avatar) HalfHeight() float64 { return a.Height / 2 }

// Airborne reports whether vertical integration is active
func (a Avatar) Airborne() bool { return a.Motion == MotionAirborne }

// Bounds returns the avatar's box
func (a Avatar) Bounds() vmath.Rect {
	return vmath.RectFromCenter(a.X, a.Y, a.Width, a.Height)
}
