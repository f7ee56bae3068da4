package physics

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/input"
	"github.com/lixenwraith/portfolio-quest/layout"
)

const frame = 16 * time.Millisecond

var testSizes = layout.Sizes{
	AvatarW: 57.6, AvatarH: 90,
	PortalW: 48, PortalH: 48,
	SurfaceW: 36, SurfaceH: 48,
	TileW: 48, TileH: 48,
}

type fixture struct {
	env    Environment
	avatar *core.Avatar
	in     *Integrator
}

func newFixture(w, h float64) *fixture {
	world := layout.Compute(w, h, testSizes)
	f := &fixture{in: NewIntegrator()}
	f.env = Environment{Width: world.Width, RestY: world.RestY}
	for i := range world.Portals {
		p := world.Portals[i]
		f.env.Portals = append(f.env.Portals, &p)
	}
	f.avatar = &core.Avatar{
		X:      120,
		Y:      world.RestY,
		Width:  testSizes.AvatarW,
		Height: testSizes.AvatarH,
	}
	return f
}

func (f *fixture) run(frames int, keys input.Keys) (jumps, hits int) {
	for i := 0; i < frames; i++ {
		out := f.in.Update(f.avatar, f.env, keys, frame)
		if out.Jumped {
			jumps++
		}
		if out.Hit != nil {
			hits++
		}
	}
	return jumps, hits
}

func TestClampHolds(t *testing.T) {
	f := newFixture(1280, 800)
	a := f.avatar

	for i := 0; i < 600; i++ {
		f.in.Update(a, f.env, input.Keys{Right: true}, frame)
		if a.X < a.HalfWidth() || a.X > f.env.Width-a.HalfWidth() {
			t.Fatalf("frame %d: x=%v outside bounds", i, a.X)
		}
	}
	if a.X != f.env.Width-a.HalfWidth() {
		t.Errorf("x = %v, want pinned at %v", a.X, f.env.Width-a.HalfWidth())
	}
	if a.Facing != core.FacingRight || a.Motion != core.MotionRunning {
		t.Errorf("facing=%v motion=%v", a.Facing, a.Motion)
	}

	for i := 0; i < 600; i++ {
		f.in.Update(a, f.env, input.Keys{Left: true}, frame)
	}
	if a.X != a.HalfWidth() {
		t.Errorf("x = %v, want pinned at %v", a.X, a.HalfWidth())
	}
	if a.Facing != core.FacingLeft {
		t.Error("facing not left after running left")
	}
}

func TestJumpRisingEdgeOnly(t *testing.T) {
	f := newFixture(1280, 800)

	// Held for three seconds: one ascent, then back on the ground
	jumps, _ := f.run(190, input.Keys{Jump: true})
	if jumps != 1 {
		t.Fatalf("held jump produced %d jumps, want 1", jumps)
	}
	if f.avatar.Airborne() {
		t.Fatal("still airborne after holding jump for 3s")
	}

	f.run(1, input.Keys{})
	jumps, _ = f.run(1, input.Keys{Jump: true})
	if jumps != 1 {
		t.Errorf("release then press produced %d jumps, want 1", jumps)
	}
}

func TestJumpReturnsToRest(t *testing.T) {
	f := newFixture(1280, 800)
	a := f.avatar
	restY := f.env.RestY

	f.run(1, input.Keys{Jump: true})
	if !a.Airborne() || a.Y >= restY {
		t.Fatalf("after jump: airborne=%v y=%v", a.Airborne(), a.Y)
	}

	f.run(120, input.Keys{})
	if a.Y != restY || a.VelY != 0 {
		t.Errorf("after landing: y=%v vel=%v, want y=%v vel=0", a.Y, a.VelY, restY)
	}
	if !a.Floor.OnGround() || a.Motion != core.MotionIdle {
		t.Errorf("after landing: floor=%v motion=%v", a.Floor, a.Motion)
	}
}

func TestHeadHitTransfersControl(t *testing.T) {
	f := newFixture(1280, 800)
	target := f.env.Portals[1]
	f.avatar.X = target.X

	var hit *core.Portal
	for i := 0; i < 60 && hit == nil; i++ {
		out := f.in.Update(f.avatar, f.env, input.Keys{Jump: i == 0}, frame)
		hit = out.Hit
	}
	if hit != target {
		t.Fatalf("hit = %v, want portal %s", hit, target.ID)
	}
	if f.avatar.VelY >= 0 {
		t.Error("hit reported while not ascending")
	}
}

func TestActivatedPortalIgnored(t *testing.T) {
	f := newFixture(1280, 800)
	target := f.env.Portals[1]
	target.Activated = true
	f.avatar.X = target.X

	_, hits := f.run(1, input.Keys{Jump: true})
	more, hits2 := f.run(150, input.Keys{})
	if hits+hits2 != 0 {
		t.Fatalf("activated portal produced %d hits", hits+hits2)
	}
	if more != 0 {
		t.Fatal("unexpected extra jump")
	}

	// Lands back where it started, on the portal's own stand-surface top or the ground
	a := f.avatar
	if a.Airborne() {
		t.Fatal("still airborne")
	}
	if id, ok := a.Floor.Portal(); ok {
		if id != target.ID || a.Y != layout.SurfaceRestY(target.Surface, a.HalfHeight()) {
			t.Errorf("landed on %s at y=%v", id, a.Y)
		}
	} else if a.Y != f.env.RestY {
		t.Errorf("landed on ground at y=%v, want %v", a.Y, f.env.RestY)
	}
}

func TestLandOnSurface(t *testing.T) {
	f := newFixture(1280, 800)
	p := f.env.Portals[2]
	a := f.avatar
	a.X = p.Surface.X
	a.Y = p.Surface.Top() - a.HalfHeight() - 40
	a.Motion = core.MotionAirborne
	a.VelY = 100

	var landed bool
	for i := 0; i < 30 && !landed; i++ {
		landed = f.in.Update(a, f.env, input.Keys{}, frame).Landed
	}
	if !landed {
		t.Fatal("never landed")
	}
	if id, ok := a.Floor.Portal(); !ok || id != p.ID {
		t.Fatalf("floor = %v, want %s", a.Floor, p.ID)
	}
	if want := p.Surface.Top() - a.HalfHeight(); a.Y != want {
		t.Errorf("y = %v, want %v", a.Y, want)
	}
}

func TestWalkOffSurface(t *testing.T) {
	f := newFixture(1280, 800)
	p := f.env.Portals[0]
	a := f.avatar
	a.X = p.Surface.X
	a.Y = layout.SurfaceRestY(p.Surface, a.HalfHeight())
	a.Floor = core.SurfaceFloor(p.ID)

	fellAt := -1
	for i := 0; i < 60; i++ {
		f.in.Update(a, f.env, input.Keys{Left: true}, frame)
		if a.Airborne() {
			fellAt = i
			break
		}
	}
	if fellAt < 0 {
		t.Fatal("never walked off the surface")
	}
	if !a.Floor.OnGround() || a.VelY != 0 {
		t.Errorf("after walk-off: floor=%v vel=%v", a.Floor, a.VelY)
	}
	if right := a.X + a.HalfWidth(); right > p.Surface.Left() {
		t.Errorf("fell while still overlapping")
	}

	f.run(120, input.Keys{})
	if a.Y != f.env.RestY || !a.Floor.OnGround() {
		t.Errorf("after fall: y=%v floor=%v", a.Y, a.Floor)
	}
}

func TestLockedIsNoop(t *testing.T) {
	f := newFixture(1280, 800)
	f.env.Locked = true
	before := *f.avatar

	f.run(30, input.Keys{Right: true, Jump: true})
	if *f.avatar != before {
		t.Errorf("avatar changed while locked: %+v", *f.avatar)
	}
}

func TestFloorExclusive(t *testing.T) {
	f := newFixture(1280, 800)
	a := f.avatar
	keys := []input.Keys{{Right: true}, {Right: true, Jump: true}, {Right: true}, {}, {Left: true, Jump: true}}

	for i := 0; i < 2000; i++ {
		f.in.Update(a, f.env, keys[(i/37)%len(keys)], frame)
		if id, ok := a.Floor.Portal(); ok && a.Floor.OnGround() {
			t.Fatalf("frame %d: floor both ground and %s", i, id)
		}
		if math.IsNaN(a.Y) || a.Y > f.env.RestY {
			t.Fatalf("frame %d: y=%v below rest", i, a.Y)
		}
	}
}
