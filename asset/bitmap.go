package asset

import (
	"image"
	"image/color"
)

// Bitmap is a small RGBA pixel grid; alpha 0 is transparent
type Bitmap struct {
	W, H int
	Pix  []color.RGBA
}

// NewBitmap allocates a fully transparent bitmap
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// Set writes a pixel, out-of-range writes are dropped
func (b *Bitmap) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = c
}

// At reads a pixel, out-of-range reads are transparent
func (b *Bitmap) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return color.RGBA{}
	}
	return b.Pix[y*b.W+x]
}

// Image converts to a standard library image for GPU upload
func (b *Bitmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			img.SetRGBA(x, y, b.At(x, y))
		}
	}
	return img
}
