// Package render turns scene state into a backend-neutral draw list.
// The composer owns no state between frames; everything it draws comes from State.
package render

import (
	"image/color"
	"strings"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/layout"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/theme"
)

var labelColor = color.RGBA{0xff, 0xff, 0xff, 0xff}

// State is a snapshot of everything drawn in one frame
type State struct {
	Width, Height float64
	GroundTop     float64

	Avatar       core.Avatar
	Portals      []core.Portal
	Parallax     core.Parallax
	Collectibles []core.Collectible

	Clouds []layout.Decor
	Bushes []layout.Decor
	Tiles  []layout.Decor

	Palette theme.Palette
	Stars   []core.Star
}

// Composer builds frames from sprites held in a registry
type Composer struct {
	Assets *asset.Registry
}

// NewComposer creates a composer over reg
func NewComposer(reg *asset.Registry) *Composer {
	return &Composer{Assets: reg}
}

// Compose emits the frame back to front. Entities whose sprite is missing are skipped.
func (c *Composer) Compose(s State) Frame {
	f := Frame{Width: s.Width, Height: s.Height}
	f.Ops = make([]Op, 0, 64)

	f.Ops = append(f.Ops, rect(LayerSky, 0, 0, s.Width, s.Height, s.Palette.Sky))
	if s.Palette.Stars {
		for _, st := range s.Stars {
			f.Ops = append(f.Ops, rect(LayerStars, st.X, st.Y, parameter.StarSize, parameter.StarSize, s.Palette.Star))
		}
	}

	c.decor(&f, LayerClouds, asset.Cloud, s.Clouds, s.Parallax.Clouds)
	f.Ops = append(f.Ops, rect(LayerGround, 0, s.GroundTop, s.Width, s.Height-s.GroundTop, s.Palette.Ground))
	c.decor(&f, LayerTiles, asset.GroundTile, s.Tiles, s.Parallax.Ground)
	c.decor(&f, LayerFoliage, asset.Bush, s.Bushes, s.Parallax.Foliage)

	for i := range s.Portals {
		if surf := s.Portals[i].Surface; surf != nil {
			c.sprite(&f, LayerSurfaces, asset.Surface, surf.X, surf.Y, surf.Width, surf.Height, false, 1)
		}
	}
	for i := range s.Portals {
		p := &s.Portals[i]
		name := asset.Portal
		if p.Activated {
			name = asset.PortalUsed
		}
		c.sprite(&f, LayerPortals, name, p.X, p.Y+p.BounceY, p.Width, p.Height, false, 1)
	}
	for i := range s.Portals {
		p := &s.Portals[i]
		f.Ops = append(f.Ops, Op{
			Kind:  KindText,
			Layer: LayerLabels,
			X:     p.X,
			Y:     p.Bottom() + parameter.PortalLabelGap,
			Color: labelColor,
			Alpha: 1,
			Text:  strings.ToUpper(string(p.ID)),
		})
	}

	for _, coin := range s.Collectibles {
		name := asset.CoinFrame(coin.Frame)
		d, ok := c.Assets.Get(name)
		if !ok {
			continue
		}
		c.sprite(&f, LayerCollectibles, name, coin.X, coin.Y, d.Width, d.Height, false, coin.Alpha)
	}

	a := s.Avatar
	name := asset.AvatarIdle
	if a.Motion != core.MotionIdle {
		name = asset.AvatarRun
	}
	c.sprite(&f, LayerAvatar, name, a.X, a.Y, a.Width, a.Height, a.Facing == core.FacingLeft, 1)

	return f
}

// decor draws a parallax group shifted by offset; each sprite keeps its native size times its scale
func (c *Composer) decor(f *Frame, layer Layer, name string, items []layout.Decor, offset float64) {
	d, ok := c.Assets.Get(name)
	if !ok {
		return
	}
	for _, it := range items {
		f.Ops = append(f.Ops, spriteOp(layer, d, it.X+offset, it.Y, d.Width*it.Scale, d.Height*it.Scale, false, 1))
	}
}

// sprite appends a sprite op centred on (cx, cy)
func (c *Composer) sprite(f *Frame, layer Layer, name string, cx, cy, w, h float64, flip bool, alpha float64) {
	d, ok := c.Assets.Get(name)
	if !ok {
		return
	}
	f.Ops = append(f.Ops, spriteOp(layer, d, cx, cy, w, h, flip, alpha))
}

func spriteOp(layer Layer, d *asset.Drawable, cx, cy, w, h float64, flip bool, alpha float64) Op {
	return Op{
		Kind:   KindSprite,
		Layer:  layer,
		X:      cx - w/2,
		Y:      cy - h/2,
		W:      w,
		H:      h,
		Sprite: d,
		FlipX:  flip,
		Alpha:  alpha,
	}
}

func rect(layer Layer, x, y, w, h float64, col color.RGBA) Op {
	return Op{
		Kind:  KindRect,
		Layer: layer,
		X:     x,
		Y:     y,
		W:     w,
		H:     h,
		Color: col,
		Alpha: 1,
	}
}
