package sprite

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lixenwraith/portfolio-quest/asset"
)

// PixelMap is a row-major art table; '.' is transparent and every other rune is a palette key
type PixelMap []string

// Palette maps pixel map runes to colors
type Palette map[rune]color.RGBA

// Hex parses "#RRGGBB" into an opaque color, panicking on malformed literals
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		panic(fmt.Sprintf("sprite: bad color literal %q", s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("sprite: bad color literal %q: %v", s, err))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Render converts a pixel map into a drawable whose native size is the map size times scale.
// Rows shorter than the widest row are padded with transparency; unknown runes are transparent.
func Render(name string, m PixelMap, pal Palette, scale float64) *asset.Drawable {
	w := 0
	for _, row := range m {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	art := asset.NewBitmap(w, len(m))
	for y, row := range m {
		for x, r := range []rune(row) {
			if r == '.' {
				continue
			}
			if c, ok := pal[r]; ok {
				art.Set(x, y, c)
			}
		}
	}
	return &asset.Drawable{
		Name:   name,
		Width:  float64(w) * scale,
		Height: float64(len(m)) * scale,
		Art:    art,
	}
}
