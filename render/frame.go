package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/portfolio-quest/asset"
)

// Kind is the draw primitive of an Op
type Kind uint8

const (
	KindRect Kind = iota
	KindSprite
	KindText
)

// Layer orders ops back to front; ops are emitted in layer order
type Layer uint8

const (
	LayerSky Layer = iota
	LayerStars
	LayerClouds
	LayerGround
	LayerTiles
	LayerFoliage
	LayerSurfaces
	LayerPortals
	LayerLabels
	LayerCollectibles
	LayerAvatar
)

// Op is one draw command in world pixels. X, Y is the top-left corner,
// except for text where X is the horizontal centre.
type Op struct {
	Kind  Kind
	Layer Layer

	X, Y, W, H float64

	Color  color.RGBA
	Sprite *asset.Drawable
	FlipX  bool
	Alpha  float64
	Text   string
}

// Contains reports whether the world point lies inside the op box
func (o *Op) Contains(x, y float64) bool {
	return x >= o.X && x < o.X+o.W && y >= o.Y && y < o.Y+o.H
}

// Frame is a backend-neutral draw list for one tick
type Frame struct {
	Width, Height float64
	Ops           []Op
}

// Texts returns the text ops in draw order
func (f *Frame) Texts() []Op {
	var out []Op
	for _, op := range f.Ops {
		if op.Kind == KindText {
			out = append(out, op)
		}
	}
	return out
}

// Sample resolves the colour at a world point by walking ops front to back.
// Text is not sampled; backends draw it with their own font.
func (f *Frame) Sample(x, y float64) (color.RGBA, bool) {
	return f.sampleBelow(len(f.Ops), x, y)
}

func (f *Frame) sampleBelow(end int, x, y float64) (color.RGBA, bool) {
	for i := end - 1; i >= 0; i-- {
		op := &f.Ops[i]
		if op.Kind == KindText || !op.Contains(x, y) {
			continue
		}

		var c color.RGBA
		switch op.Kind {
		case KindRect:
			c = op.Color
		case KindSprite:
			u := (x - op.X) / op.W
			v := (y - op.Y) / op.H
			if op.FlipX {
				u = math.Min(1-u, math.Nextafter(1, 0))
			}
			px, ok := op.Sprite.SampleAt(u, v)
			if !ok {
				continue
			}
			c = px
		}

		if op.Alpha >= 1 {
			return c, true
		}
		if op.Alpha <= 0 {
			continue
		}
		under, ok := f.sampleBelow(i, x, y)
		if !ok {
			return c, true
		}
		return Blend(under, c, op.Alpha), true
	}
	return color.RGBA{}, false
}
