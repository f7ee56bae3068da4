package parameter

// World Bounds
const (
	// GroundHeight is the height of the ground band at the bottom of the viewport
	GroundHeight = 220.0

	// GroundMaxFraction caps the ground band as a share of the viewport height
	GroundMaxFraction = 0.3

	// MinViewportWidth is the narrowest width the portal row keeps its tier spacing at
	MinViewportWidth = 320.0

	// MinViewportHeight is the shortest height the portal stack is guaranteed to fit
	MinViewportHeight = 260.0

	// ViewportMargin keeps the rightmost portal off the right edge
	ViewportMargin = 30.0

	// PortalMinStartX is the leftmost x the first portal may be pulled back to
	PortalMinStartX = 40.0
)

// Avatar Sprite
const (
	// AvatarScale is the render scale applied to the avatar sprite
	AvatarScale = 0.6

	// AvatarRestMargin lifts the resting avatar slightly above the ground top
	AvatarRestMargin = 5.0

	// AvatarStartX is the spawn x position
	AvatarStartX = 120.0

	// Fallback native sizes used when a sprite is missing from the registry
	AvatarFallbackWidth  = 96.0
	AvatarFallbackHeight = 150.0
	PortalFallbackSize   = 48.0
	SurfaceFallbackW     = 36.0
	SurfaceFallbackH     = 48.0
	TileFallbackSize     = 48.0
)

// Portal Row
const (
	// PortalLift is the gap between the ground top and the bottom edge of a portal
	PortalLift = 250.0

	// PortalTopMargin is the minimum gap between the viewport top and a portal's top edge
	PortalTopMargin = 20.0

	// PortalClearance is the headroom between an avatar standing on a surface and the portal above
	PortalClearance = 10.0

	// NarrowMargin is the edge gap of a squeezed portal row
	NarrowMargin = 8.0

	// MinFitScale is the smallest factor the portal row is squeezed to
	MinFitScale = 0.25

	// PortalLabelGap is the distance between a portal's bottom edge and its label
	PortalLabelGap = 6.0
)

// Breakpoint describes one responsive tier of the portal row
type Breakpoint struct {
	// MaxWidth is the exclusive upper bound of the tier, 0 for the open-ended last tier
	MaxWidth float64
	// Scale applied to the portal sprite
	Scale float64
	// SurfaceScale applied to the stand-surface sprite
	SurfaceScale float64
	// Spacing between portal centres
	Spacing float64
	// StartX of the first portal; ignored when CenterOffset is set
	StartX float64
	// CenterOffset places the first portal at w/2 - CenterOffset when non-zero
	CenterOffset float64
}

// Breakpoints are ordered narrowest first
var Breakpoints = [...]Breakpoint{
	{MaxWidth: 600, Scale: 1.5, SurfaceScale: 2, Spacing: 80, StartX: 50},
	{MaxWidth: 768, Scale: 1.8, SurfaceScale: 2, Spacing: 110, StartX: 60},
	{MaxWidth: 1024, Scale: 2.2, SurfaceScale: 2.5, Spacing: 150, StartX: 80},
	{MaxWidth: 0, Scale: 2.5, SurfaceScale: 2.5, Spacing: 200, CenterOffset: 100},
}

// Decoration
const (
	// TileWidth is the ground tile stride
	TileWidth = 48.0

	// TileOverscan is how many tiles extend past the right edge so parallax never shows a gap
	TileOverscan = 3

	// BushLift raises bush centres above the ground top
	BushLift = 10.0

	// WideViewport enables the extra cloud and bush
	WideViewport = 900.0
)

// DecorSpec places one decorative sprite: x = max(MinX, Fraction*w)
type DecorSpec struct {
	MinX     float64
	Fraction float64
	Y        float64
	Scale    float64
	WideOnly bool
}

// CloudSpecs position the cloud layer, Y is absolute
var CloudSpecs = [...]DecorSpec{
	{MinX: 150, Fraction: 0.15, Y: 180, Scale: 1.5},
	{MinX: 350, Fraction: 0.4, Y: 160, Scale: 2},
	{MinX: 550, Fraction: 0.65, Y: 190, Scale: 1.3},
	{MinX: 800, Fraction: 0.85, Y: 170, Scale: 1.7, WideOnly: true},
}

// BushSpecs position the foliage layer, Y is ignored (derived from ground top)
var BushSpecs = [...]DecorSpec{
	{MinX: 150, Fraction: 0.25, Scale: 1.3},
	{MinX: 400, Fraction: 0.6, Scale: 1.6},
	{MinX: 700, Fraction: 0.85, Scale: 1.2, WideOnly: true},
}
