package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/sprite"
)

func builtinSizes() Sizes {
	reg := asset.NewRegistry()
	reg.Load(sprite.NewBuiltin(), asset.SceneNames(parameter.CoinFrames)...)
	return SizesFrom(reg)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		w    float64
		tier int
	}{
		{320, 0}, {599, 0}, {600, 1}, {767, 1}, {768, 2}, {1023, 2}, {1024, 3}, {2560, 3},
	}
	for _, tt := range tests {
		if got := TierFor(tt.w); got != tt.tier {
			t.Errorf("TierFor(%v) = %d, want %d", tt.w, got, tt.tier)
		}
	}
}

func TestComputeDesktopScenario(t *testing.T) {
	world := Compute(1280, 800, builtinSizes())

	if world.GroundTop != 580 {
		t.Errorf("Expected ground top 580, got %v", world.GroundTop)
	}
	if world.RestY != 530 {
		t.Errorf("Expected rest y 530, got %v", world.RestY)
	}

	wantX := []float64{540, 740, 940, 1140}
	for i, p := range world.Portals {
		if p.ID != core.PortalOrder[i] {
			t.Errorf("Portal %d: expected id %s, got %s", i, core.PortalOrder[i], p.ID)
		}
		if p.X != wantX[i] {
			t.Errorf("Portal %s: expected x %v, got %v", p.ID, wantX[i], p.X)
		}
		if p.Y != 270 {
			t.Errorf("Portal %s: expected y 270, got %v", p.ID, p.Y)
		}
		if p.Width != 120 || p.Height != 120 {
			t.Errorf("Portal %s: expected 120x120, got %vx%v", p.ID, p.Width, p.Height)
		}
	}
}

func TestPortalsFitEveryWidth(t *testing.T) {
	sz := builtinSizes()
	for w := 120.0; w <= 2560; w++ {
		world := Compute(w, 800, sz)
		if len(world.Portals) != 4 {
			t.Fatalf("w=%v: expected 4 portals, got %d", w, len(world.Portals))
		}
		for i, p := range world.Portals {
			b := p.Bounds()
			if b.Left < 0 || b.Right > w {
				t.Fatalf("w=%v: portal %s box [%v, %v] leaves the viewport", w, p.ID, b.Left, b.Right)
			}
			if i > 0 {
				prev := world.Portals[i-1].Bounds()
				if prev.Right > b.Left {
					t.Fatalf("w=%v: portal %s overlaps its left neighbour", w, p.ID)
				}
			}
		}
	}
}

func TestSurfacesAnchoredToGround(t *testing.T) {
	sz := builtinSizes()
	for _, w := range []float64{360, 700, 900, 1280} {
		world := Compute(w, 720, sz)
		bp := parameter.Breakpoints[world.Tier]
		for _, p := range world.Portals {
			s := p.Surface
			if s == nil {
				t.Fatalf("w=%v: portal %s has no stand-surface", w, p.ID)
			}
			if bottom := s.Y + s.Height/2; bottom != world.GroundTop {
				t.Errorf("w=%v: surface under %s ends at %v, want ground top %v", w, p.ID, bottom, world.GroundTop)
			}
			if s.X != p.X {
				t.Errorf("w=%v: surface under %s at x %v, portal at %v", w, p.ID, s.X, p.X)
			}
			if s.Width != sz.SurfaceW*bp.SurfaceScale || s.Height != sz.SurfaceH*bp.SurfaceScale {
				t.Errorf("w=%v: surface under %s not sized from tier scale", w, p.ID)
			}
			if s.Top() <= p.Bottom() {
				t.Errorf("w=%v: surface under %s reaches into the portal", w, p.ID)
			}
		}
	}
}

func TestPortalStackFitsEveryHeight(t *testing.T) {
	sz := builtinSizes()
	for _, w := range []float64{280, 640, 900, 1280} {
		for h := parameter.MinViewportHeight; h <= 1200; h++ {
			world := Compute(w, h, sz)
			for _, p := range world.Portals {
				s := p.Surface
				if s.Top() <= p.Bottom() {
					t.Fatalf("%vx%v: surface under %s top=%v reaches into portal bottom=%v", w, h, p.ID, s.Top(), p.Bottom())
				}
				standY := SurfaceRestY(s, sz.AvatarH/2)
				if head := standY - sz.AvatarH/2; head < p.Bottom() {
					t.Fatalf("%vx%v: avatar on %s surface has head %v inside portal bottom %v", w, h, p.ID, head, p.Bottom())
				}
				if top := p.Y - p.Height/2; top < parameter.PortalTopMargin {
					t.Fatalf("%vx%v: portal %s top %v above margin", w, h, p.ID, top)
				}
				if bottom := s.Y + s.Height/2; bottom != world.GroundTop {
					t.Fatalf("%vx%v: surface under %s ends at %v, want %v", w, h, p.ID, bottom, world.GroundTop)
				}
			}
		}
	}
}

func TestTerminalDefaultSize(t *testing.T) {
	// 80x24 cells
	world := Compute(640, 384, builtinSizes())
	if want := 384 - 384*parameter.GroundMaxFraction; world.GroundTop != want {
		t.Errorf("Expected ground top %v, got %v", want, world.GroundTop)
	}
	for _, p := range world.Portals {
		if p.Scale >= parameter.Breakpoints[world.Tier].Scale {
			t.Errorf("Portal %s: expected scale below tier %v, got %v", p.ID, parameter.Breakpoints[world.Tier].Scale, p.Scale)
		}
		if p.Surface.Top() <= p.Bottom() {
			t.Errorf("Portal %s overlaps its surface", p.ID)
		}
	}
}

func TestNarrowRowIsSqueezed(t *testing.T) {
	sz := builtinSizes()
	world := Compute(280, 800, sz)
	bp := parameter.Breakpoints[0]
	first, last := world.Portals[0], world.Portals[len(world.Portals)-1]
	if gap := world.Portals[1].X - first.X; gap >= bp.Spacing {
		t.Errorf("Expected spacing under %v, got %v", bp.Spacing, gap)
	}
	if l, r := first.Bounds().Left, last.Bounds().Right; l < parameter.NarrowMargin-1e-9 || r > 280-parameter.NarrowMargin+1e-9 {
		t.Errorf("Expected row inside narrow margins, got [%v, %v]", l, r)
	}
	if mid := (first.X + last.X) / 2; math.Abs(mid-140) > 1e-9 {
		t.Errorf("Expected squeezed row centred at 140, got %v", mid)
	}
}

func TestComputeIdempotent(t *testing.T) {
	sz := builtinSizes()
	a := Compute(1024, 768, sz)
	b := Compute(1024, 768, sz)
	if !reflect.DeepEqual(a, b) {
		t.Error("Compute returned different worlds for the same input")
	}
}

func TestPortalTopClamp(t *testing.T) {
	world := Compute(1280, 400, builtinSizes())
	for _, p := range world.Portals {
		if top := p.Y - p.Height/2; top < parameter.PortalTopMargin {
			t.Errorf("Portal %s top %v above margin", p.ID, top)
		}
	}
}

func TestDecorCounts(t *testing.T) {
	sz := builtinSizes()

	narrow := Compute(800, 600, sz)
	if len(narrow.Clouds) != 3 || len(narrow.Bushes) != 2 {
		t.Errorf("Narrow: expected 3 clouds and 2 bushes, got %d and %d", len(narrow.Clouds), len(narrow.Bushes))
	}

	wide := Compute(1280, 600, sz)
	if len(wide.Clouds) != 4 || len(wide.Bushes) != 3 {
		t.Errorf("Wide: expected 4 clouds and 3 bushes, got %d and %d", len(wide.Clouds), len(wide.Bushes))
	}
	if wide.Clouds[0].X != 192 {
		t.Errorf("Expected first cloud at 0.15w = 192, got %v", wide.Clouds[0].X)
	}

	last := wide.Tiles[len(wide.Tiles)-1]
	if last.X >= 1280+parameter.TileWidth*parameter.TileOverscan {
		t.Errorf("Tile at %v beyond overscan", last.X)
	}
	if wide.Tiles[0].X != parameter.TileWidth/2 {
		t.Errorf("Expected first tile at %v, got %v", parameter.TileWidth/2, wide.Tiles[0].X)
	}
}

func TestSizesFromMissingSprites(t *testing.T) {
	sz := SizesFrom(asset.NewRegistry())
	if sz.AvatarH != parameter.AvatarFallbackHeight*parameter.AvatarScale {
		t.Errorf("Expected fallback avatar height, got %v", sz.AvatarH)
	}
	if sz.PortalW != parameter.PortalFallbackSize {
		t.Errorf("Expected fallback portal width, got %v", sz.PortalW)
	}
}
