package parameter

import "time"

// Walk To Target
const (
	// WalkMinDuration is the shortest walk tween
	WalkMinDuration = 400 * time.Millisecond

	// WalkMaxDuration is the longest walk tween
	WalkMaxDuration = 2000 * time.Millisecond

	// WalkMsPerPixel scales walk duration with distance
	WalkMsPerPixel = 3.0

	// ParallaxCloudFactor is the cloud layer share of the walk displacement
	ParallaxCloudFactor = 0.3

	// ParallaxGroundFactor is the ground tile and foliage share of the walk displacement
	ParallaxGroundFactor = 0.6
)

// Jump, Bounce, Land
const (
	// JumpHitOffsetY is where the avatar centre stops below the portal centre
	JumpHitOffsetY = 70.0

	// JumpHitBottomGap caps the jump target below the portal's lower edge for small portals
	JumpHitBottomGap = 10.0

	JumpHitDuration = 300 * time.Millisecond

	// BounceHeight is the upward portal displacement at the top of the bounce
	BounceHeight = 15.0

	// BounceDuration is one leg of the yoyo bounce
	BounceDuration = 80 * time.Millisecond

	LandDuration = 350 * time.Millisecond
)

// Collectible
const (
	// CoinSpawnOffsetY is where the coin appears above the portal centre
	CoinSpawnOffsetY = 30.0

	// CoinRiseOffsetY is where the coin ends above the portal centre
	CoinRiseOffsetY = 140.0

	CoinDuration      = 800 * time.Millisecond
	CoinFrameInterval = 80 * time.Millisecond
	CoinFrames        = 4
)

// Pointer
const (
	// ClickRadius is the pointer distance from a portal centre that selects it
	ClickRadius = 60.0
)
