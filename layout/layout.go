// Package layout derives every static position in the scene from the viewport size.
// Compute is pure: the same viewport and sprite sizes always produce the same world.
package layout

import (
	"math"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/parameter"
)

// Sizes are the native sprite dimensions the layout scales from
type Sizes struct {
	AvatarW, AvatarH   float64 // already multiplied by the avatar render scale
	PortalW, PortalH   float64
	SurfaceW, SurfaceH float64
	TileW, TileH       float64
}

// SizesFrom reads sprite sizes from the registry, falling back to nominal sizes for missing sprites
func SizesFrom(reg *asset.Registry) Sizes {
	var s Sizes
	s.AvatarW, s.AvatarH = reg.Size(asset.AvatarIdle, parameter.AvatarFallbackWidth, parameter.AvatarFallbackHeight)
	s.AvatarW *= parameter.AvatarScale
	s.AvatarH *= parameter.AvatarScale
	s.PortalW, s.PortalH = reg.Size(asset.Portal, parameter.PortalFallbackSize, parameter.PortalFallbackSize)
	s.SurfaceW, s.SurfaceH = reg.Size(asset.Surface, parameter.SurfaceFallbackW, parameter.SurfaceFallbackH)
	s.TileW, s.TileH = reg.Size(asset.GroundTile, parameter.TileFallbackSize, parameter.TileFallbackSize)
	return s
}

// Decor is one decorative sprite placement, positioned by its centre
type Decor struct {
	X, Y  float64
	Scale float64
}

// World is the full static layout for one viewport size
type World struct {
	Width, Height float64
	GroundTop     float64

	// RestY is the avatar centre y when standing on the ground
	RestY float64

	// Tier is the index into parameter.Breakpoints
	Tier int

	// Portals carry geometry only; Activated and BounceY are owned by the scene
	Portals []core.Portal

	Clouds []Decor
	Bushes []Decor
	Tiles  []Decor
}

// TierFor selects the breakpoint tier for a viewport width
func TierFor(w float64) int {
	for i, bp := range parameter.Breakpoints {
		if bp.MaxWidth == 0 || w < bp.MaxWidth {
			return i
		}
	}
	return len(parameter.Breakpoints) - 1
}

// GroundHeightFor is the ground band height, shrunk on short viewports so the portal stack fits
func GroundHeightFor(h float64) float64 {
	return math.Min(parameter.GroundHeight, h*parameter.GroundMaxFraction)
}

// Compute lays out the world for a w x h viewport
func Compute(w, h float64, sz Sizes) World {
	groundTop := h - GroundHeightFor(h)
	tier := TierFor(w)

	world := World{
		Width:     w,
		Height:    h,
		GroundTop: groundTop,
		RestY:     groundTop - sz.AvatarH/2 - parameter.AvatarRestMargin,
		Tier:      tier,
	}
	world.Portals = portals(w, groundTop, parameter.Breakpoints[tier], sz)
	world.Clouds = clouds(w)
	world.Bushes = bushes(w, groundTop)
	world.Tiles = tiles(w, groundTop, sz)
	return world
}

// rowFit is the horizontal factor that squeezes the row between the narrow margins.
// It is 1 while the row still fits after pulling back to PortalMinStartX.
func rowFit(w, span, portalW float64) float64 {
	if w-parameter.ViewportMargin-span-portalW/2 >= parameter.PortalMinStartX {
		return 1
	}
	avail := w - 2*parameter.NarrowMargin
	return math.Max(avail/(span+portalW), parameter.MinFitScale)
}

// stackFit is the vertical factor that keeps margin, portal, avatar clearance and
// stand-surface stacked above the ground top
func stackFit(groundTop, portalH, surfaceH, avatarH float64) float64 {
	free := groundTop - parameter.PortalTopMargin - avatarH - parameter.PortalClearance
	return math.Max(free/(portalH+surfaceH), parameter.MinFitScale)
}

func portals(w, groundTop float64, bp parameter.Breakpoint, sz Sizes) []core.Portal {
	count := len(core.PortalOrder)
	span := bp.Spacing * float64(count-1)

	hFit := rowFit(w, span, sz.PortalW*bp.Scale)
	vFit := stackFit(groundTop, sz.PortalH*bp.Scale, sz.SurfaceH*bp.SurfaceScale, sz.AvatarH)
	fit := min(1, hFit, vFit)

	portalScale := bp.Scale * fit
	surfaceScale := bp.SurfaceScale * fit
	portalW, portalH := sz.PortalW*portalScale, sz.PortalH*portalScale
	surfaceW, surfaceH := sz.SurfaceW*surfaceScale, sz.SurfaceH*surfaceScale

	spacing := bp.Spacing
	startX := bp.StartX
	if bp.CenterOffset != 0 {
		startX = w/2 - bp.CenterOffset
	}
	switch {
	case hFit < 1:
		// Squeezed row, centred
		spacing *= hFit
		startX = w/2 - spacing*float64(count-1)/2
	case startX+span+portalW/2 > w-parameter.ViewportMargin:
		// Pull the row back when its right edge would leave the viewport
		startX = math.Max(parameter.PortalMinStartX, w-parameter.ViewportMargin-span-portalW/2)
	}

	// The avatar must fit standing on the surface below the portal
	lowest := groundTop - surfaceH - sz.AvatarH - parameter.PortalClearance - portalH/2
	portalY := groundTop - parameter.PortalLift - portalH/2
	portalY = math.Max(portalY, parameter.PortalTopMargin+portalH/2)
	portalY = math.Min(portalY, lowest)

	out := make([]core.Portal, count)
	for i, id := range core.PortalOrder {
		x := startX + spacing*float64(i)
		// Bottom sits exactly on the ground top
		surface := &core.StandSurface{
			X:      x,
			Y:      groundTop - surfaceH/2,
			Width:  surfaceW,
			Height: surfaceH,
			Scale:  surfaceScale,
		}
		out[i] = core.Portal{
			ID:      id,
			X:       x,
			Y:       portalY,
			Width:   portalW,
			Height:  portalH,
			Scale:   portalScale,
			Surface: surface,
		}
	}
	return out
}

func clouds(w float64) []Decor {
	var out []Decor
	for _, spec := range parameter.CloudSpecs {
		if spec.WideOnly && w <= parameter.WideViewport {
			continue
		}
		out = append(out, Decor{X: math.Max(spec.MinX, w*spec.Fraction), Y: spec.Y, Scale: spec.Scale})
	}
	return out
}

func bushes(w, groundTop float64) []Decor {
	var out []Decor
	for _, spec := range parameter.BushSpecs {
		if spec.WideOnly && w <= parameter.WideViewport {
			continue
		}
		out = append(out, Decor{X: math.Max(spec.MinX, w*spec.Fraction), Y: groundTop - parameter.BushLift, Scale: spec.Scale})
	}
	return out
}

func tiles(w, groundTop float64, sz Sizes) []Decor {
	stride := parameter.TileWidth
	limit := w + stride*parameter.TileOverscan
	var out []Decor
	for x := stride / 2; x < limit; x += stride {
		out = append(out, Decor{X: x, Y: groundTop + sz.TileH/2, Scale: 1})
	}
	return out
}

// SurfaceRestY is the avatar centre y when standing on s
func SurfaceRestY(s *core.StandSurface, avatarHalfHeight float64) float64 {
	return s.Top() - avatarHalfHeight
}
