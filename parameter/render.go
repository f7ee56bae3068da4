package parameter

import "time"

// Frame Timing
const (
	// FrameUpdateInterval drives the terminal frame ticker (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt so a stalled frame does not tunnel the avatar through a surface
	MaxFrameDelta = 50 * time.Millisecond
)

// Terminal Cell Geometry
// Each terminal cell covers CellWidth x 2*DotHeight world pixels, drawn as two half-block dots
const (
	CellWidth = 8.0
	DotHeight = 8.0
)

// Sky
const (
	// StarCount is the number of stars scattered in dark mode
	StarCount = 40

	// StarSkyFraction limits stars to the upper part of the sky
	StarSkyFraction = 0.6

	StarSize = 2.0
)
