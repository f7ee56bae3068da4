package parameter

// Avatar Movement
// All distances are world pixels; velocities px/s; accelerations px/s²
const (
	// AvatarSpeed is the horizontal run speed while a direction key is held
	AvatarSpeed = 300.0

	// AvatarJumpVelocity is the initial vertical velocity of a jump, negative is up
	AvatarJumpVelocity = -720.0

	// Gravity is applied to vertical velocity every airborne frame
	Gravity = 1200.0
)

// Collision Tolerances
const (
	// HitToleranceY extends a portal's box upward so a fast head still registers the hit
	HitToleranceY = 20.0

	// LandToleranceY is how far below a stand-surface top the avatar's feet may sink and still land
	LandToleranceY = 30.0
)
