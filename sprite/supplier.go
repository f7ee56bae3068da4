package sprite

import "github.com/lixenwraith/portfolio-quest/asset"

// Render scales of the built-in art, in world pixels per art pixel
const (
	heroScale = 6.0
	artScale  = 3.0
)

// Builtin is the procedural sprite supplier backing every frontend
type Builtin struct {
	sprites map[string]*asset.Drawable
}

// NewBuiltin renders every built-in sprite once
func NewBuiltin() *Builtin {
	b := &Builtin{sprites: make(map[string]*asset.Drawable)}
	add := func(name string, m PixelMap, pal Palette, scale float64) {
		b.sprites[name] = Render(name, m, pal, scale)
	}

	add(asset.AvatarIdle, heroIdle, heroPalette, heroScale)
	add(asset.AvatarRun, heroRun, heroPalette, heroScale)
	add(asset.Portal, box, boxPalette, artScale)
	add(asset.PortalUsed, boxUsed, boxPalette, artScale)
	add(asset.Surface, pipe, pipePalette, artScale)
	add(asset.Cloud, cloud, cloudPalette, artScale)
	add(asset.Bush, bush, bushPalette, artScale)
	add(asset.GroundTile, groundTile, tilePalette, artScale)

	// Four spin frames ping-pong through three drawings
	coins := [...]PixelMap{coinWide, coinHalf, coinEdge, coinHalf}
	for i, m := range coins {
		add(asset.CoinFrame(i), m, coinPalette, artScale)
	}
	return b
}

// Lookup implements asset.Supplier
func (b *Builtin) Lookup(name string) (*asset.Drawable, bool) {
	d, ok := b.sprites[name]
	return d, ok
}
