package sprite

import (
	"testing"

	"github.com/lixenwraith/portfolio-quest/asset"
)

func TestBuiltinCoversScene(t *testing.T) {
	b := NewBuiltin()
	for _, name := range asset.SceneNames(4) {
		d, ok := b.Lookup(name)
		if !ok {
			t.Errorf("Builtin supplier missing %q", name)
			continue
		}
		if d.Width <= 0 || d.Height <= 0 || d.Art == nil {
			t.Errorf("Sprite %q has unusable geometry %vx%v", name, d.Width, d.Height)
		}
	}
}

func TestBuiltinNativeSizes(t *testing.T) {
	b := NewBuiltin()
	tests := []struct {
		name string
		w, h float64
	}{
		{asset.AvatarIdle, 96, 150},
		{asset.Portal, 48, 48},
		{asset.Surface, 36, 48},
		{asset.GroundTile, 48, 48},
		{asset.CoinFrame(0), 30, 30},
	}
	for _, tt := range tests {
		d, _ := b.Lookup(tt.name)
		if d.Width != tt.w || d.Height != tt.h {
			t.Errorf("%s: expected %vx%v, got %vx%v", tt.name, tt.w, tt.h, d.Width, d.Height)
		}
	}
}

func TestRenderPadsRaggedRows(t *testing.T) {
	pal := Palette{'X': Hex("#FF0000")}
	d := Render("ragged", PixelMap{"XX", "X"}, pal, 2)
	if d.Width != 4 || d.Height != 4 {
		t.Fatalf("Expected 4x4 drawable, got %vx%v", d.Width, d.Height)
	}
	if c := d.Art.At(1, 1); c.A != 0 {
		t.Errorf("Expected padded pixel to be transparent, got %v", c)
	}
	if c := d.Art.At(0, 1); c.R != 0xff || c.A != 0xff {
		t.Errorf("Expected opaque red at (0,1), got %v", c)
	}
}

func TestHex(t *testing.T) {
	c := Hex("#5C94FC")
	if c.R != 0x5c || c.G != 0x94 || c.B != 0xfc || c.A != 0xff {
		t.Errorf("Hex parsed %v", c)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed literal")
		}
	}()
	Hex("5C94FC")
}
