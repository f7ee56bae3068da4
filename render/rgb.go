package render

import "image/color"

// Blend mixes src over c at alpha; alpha 1 returns src and 0 returns c
func Blend(c, src color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return color.RGBA{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
		A: 0xff,
	}
}

// Luma returns perceived brightness in [0, 255]
func Luma(c color.RGBA) uint8 {
	return uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
}
