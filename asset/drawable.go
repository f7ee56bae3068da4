package asset

import (
	"fmt"
	"image/color"
)

// Sprite names the scene requests from the supplier
const (
	AvatarIdle = "avatar-idle"
	AvatarRun  = "avatar-run"
	Portal     = "portal"
	PortalUsed = "portal-used"
	Surface    = "pipe"
	Cloud      = "cloud"
	Bush       = "bush"
	GroundTile = "ground-tile"
)

// CoinFrame returns the name of the i-th collectible spin frame
func CoinFrame(i int) string {
	return fmt.Sprintf("coin-%d", i)
}

// SceneNames lists every sprite a scene loads at setup
func SceneNames(coinFrames int) []string {
	names := []string{AvatarIdle, AvatarRun, Portal, PortalUsed, Surface, Cloud, Bush, GroundTile}
	for i := 0; i < coinFrames; i++ {
		names = append(names, CoinFrame(i))
	}
	return names
}

// Drawable is an opaque visual handle. Width and Height are the native size in world
// pixels; the art bitmap is stretched over that box when drawn.
type Drawable struct {
	Name          string
	Width, Height float64
	Art           *Bitmap
}

// SampleAt returns the art pixel at normalized coordinates u, v in [0, 1)
func (d *Drawable) SampleAt(u, v float64) (color.RGBA, bool) {
	if d.Art == nil || u < 0 || v < 0 || u >= 1 || v >= 1 {
		return color.RGBA{}, false
	}
	c := d.Art.At(int(u*float64(d.Art.W)), int(v*float64(d.Art.H)))
	return c, c.A != 0
}
