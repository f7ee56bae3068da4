package engine

import (
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/input"
	"github.com/lixenwraith/portfolio-quest/layout"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/physics"
	"github.com/lixenwraith/portfolio-quest/render"
	"github.com/lixenwraith/portfolio-quest/theme"
	"github.com/lixenwraith/portfolio-quest/tween"
	"github.com/lixenwraith/portfolio-quest/vmath"
)

// Navigator receives the destination of every completed interaction
type Navigator interface {
	Navigate(dest string)
}

// SoundPlayer plays one-shot effects; implementations must not block
type SoundPlayer interface {
	Play(s core.Sound)
}

type noNavigator struct{}

func (noNavigator) Navigate(string) {}

type noSound struct{}

func (noSound) Play(core.Sound) {}

// Config wires a scene to its collaborators. Nil collaborators are replaced by no-ops.
type Config struct {
	Width, Height float64

	Supplier  asset.Supplier
	Navigator Navigator
	Theme     theme.Source
	Sounds    SoundPlayer

	// Seed drives star placement; zero picks a random seed
	Seed uint64
}

// sky is the theme-owned part of the frame, swapped atomically by theme notifications
type sky struct {
	palette theme.Palette
	stars   []core.Star
}

// Scene owns all mutable state of one mounted game instance
type Scene struct {
	// ===== Immutable After Init =====

	registry *asset.Registry
	composer *render.Composer
	sizes    layout.Sizes
	nav      Navigator
	sounds   SoundPlayer

	// ===== Atomic (Self-Synchronized) =====
	// Written by theme notifications from any goroutine, read by the composer

	sky    atomic.Pointer[sky]
	active atomic.Bool

	// ===== Mutex-Protected (skyMu) =====

	skyMu            sync.Mutex
	rng              *rand.Rand
	mode             theme.Mode
	skyW, skyH       float64
	unsubscribeTheme func()

	// ===== Frame-Loop Exclusive =====

	world      layout.World
	avatar     core.Avatar
	portals    []*core.Portal
	parallax   core.Parallax
	coins      []*core.Collectible
	integrator *physics.Integrator
	tweens     *tween.Scheduler

	phase Phase
	seq   sequence

	// resized is set when the layout changes under an in-flight sequence
	resized bool
}

// NewScene loads sprites, lays out the world and subscribes to the theme
func NewScene(cfg Config) *Scene {
	s := &Scene{
		registry:   asset.NewRegistry(),
		nav:        cfg.Navigator,
		sounds:     cfg.Sounds,
		integrator: physics.NewIntegrator(),
		tweens:     tween.NewScheduler(),
	}
	if s.nav == nil {
		s.nav = noNavigator{}
	}
	if s.sounds == nil {
		s.sounds = noSound{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s.rng = rand.New(rand.NewPCG(seed, seed))

	if missing := s.registry.Load(cfg.Supplier, asset.SceneNames(parameter.CoinFrames)...); missing > 0 {
		log.Printf("scene: %d sprites missing, affected entities will not draw", missing)
	}
	s.sizes = layout.SizesFrom(s.registry)
	s.composer = render.NewComposer(s.registry)

	s.world = layout.Compute(cfg.Width, cfg.Height, s.sizes)
	s.portals = make([]*core.Portal, len(s.world.Portals))
	for i := range s.world.Portals {
		p := s.world.Portals[i]
		s.portals[i] = &p
	}

	s.avatar = core.Avatar{
		X:      parameter.AvatarStartX,
		Y:      s.world.RestY,
		Facing: core.FacingRight,
		Motion: core.MotionIdle,
		Floor:  core.GroundFloor(),
		Width:  s.sizes.AvatarW,
		Height: s.sizes.AvatarH,
	}
	s.clampAvatar()

	mode := theme.Light
	if cfg.Theme != nil {
		mode = cfg.Theme.Mode()
	}
	s.skyMu.Lock()
	s.skyW, s.skyH = s.world.Width, s.world.GroundTop
	s.skyMu.Unlock()
	s.applyTheme(mode)

	s.active.Store(true)
	if cfg.Theme != nil {
		unsubscribe := cfg.Theme.Subscribe(s.applyTheme)
		s.skyMu.Lock()
		s.unsubscribeTheme = unsubscribe
		s.skyMu.Unlock()
	}

	log.Printf("scene: init %.0fx%.0f tier=%d theme=%s", cfg.Width, cfg.Height, s.world.Tier, mode)
	return s
}

// Update advances one frame: physics first, then every tween and its transitions
func (s *Scene) Update(keys input.Keys, dt time.Duration) {
	if !s.active.Load() {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	env := physics.Environment{
		Width:   s.world.Width,
		RestY:   s.world.RestY,
		Portals: s.portals,
		Locked:  s.phase != PhaseFree,
	}
	out := s.integrator.Update(&s.avatar, env, keys, dt)
	if out.Jumped {
		s.sounds.Play(core.SoundJump)
	}
	if out.Hit != nil {
		s.strike(out.Hit)
	}

	s.tweens.Update(dt)
}

// Resize re-runs the layout. Activation and bounce state survive; in-flight tweens keep
// the coordinates they captured and only later frames see the new geometry.
func (s *Scene) Resize(w, h float64) {
	if !s.active.Load() {
		return
	}
	s.world = layout.Compute(w, h, s.sizes)
	for i, p := range s.portals {
		next := s.world.Portals[i]
		p.X, p.Y = next.X, next.Y
		p.Width, p.Height = next.Width, next.Height
		p.Scale = next.Scale
		p.Surface = next.Surface
	}

	if s.phase == PhaseFree {
		s.settle()
	} else {
		s.resized = true
	}

	s.skyMu.Lock()
	s.skyW, s.skyH = s.world.Width, s.world.GroundTop
	mode := s.mode
	s.skyMu.Unlock()
	s.applyTheme(mode)
}

// settle re-derives the avatar position from its floor and clamps it to the viewport.
// A surface the avatar no longer overlaps drops it to the ground.
func (s *Scene) settle() {
	s.resized = false
	s.clampAvatar()
	if s.avatar.Airborne() {
		return
	}
	if id, ok := s.avatar.Floor.Portal(); ok {
		if p := s.portal(id); p != nil && p.Surface != nil && s.avatar.Bounds().OverlapsX(p.Surface.Bounds()) {
			s.avatar.Y = layout.SurfaceRestY(p.Surface, s.avatar.HalfHeight())
			return
		}
		s.avatar.Floor = core.GroundFloor()
	}
	s.avatar.Y = s.world.RestY
}

func (s *Scene) clampAvatar() {
	s.avatar.X = vmath.Clamp(s.avatar.X, s.avatar.HalfWidth(), s.world.Width-s.avatar.HalfWidth())
}

// applyTheme swaps in the palette of mode and a fresh star field
func (s *Scene) applyTheme(mode theme.Mode) {
	s.skyMu.Lock()
	defer s.skyMu.Unlock()

	s.mode = mode
	next := &sky{palette: theme.PaletteFor(mode)}
	next.stars = make([]core.Star, parameter.StarCount)
	for i := range next.stars {
		next.stars[i] = core.Star{
			X: s.rng.Float64() * s.skyW,
			Y: s.rng.Float64() * s.skyH * parameter.StarSkyFraction,
		}
	}
	s.sky.Store(next)
}

// Teardown cancels every tween and interval task and releases the theme subscription.
// Safe to call more than once.
func (s *Scene) Teardown() {
	if !s.active.CompareAndSwap(true, false) {
		return
	}
	s.tweens.Stop()

	s.skyMu.Lock()
	unsubscribe := s.unsubscribeTheme
	s.unsubscribeTheme = nil
	s.skyMu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}

	s.coins = nil
	log.Printf("scene: teardown in phase %s", s.phase)
}

// Active reports whether the scene is still mounted
func (s *Scene) Active() bool { return s.active.Load() }

// RenderState snapshots everything the composer draws
func (s *Scene) RenderState() render.State {
	st := render.State{
		Width:     s.world.Width,
		Height:    s.world.Height,
		GroundTop: s.world.GroundTop,
		Avatar:    s.avatar,
		Parallax:  s.parallax,
		Clouds:    s.world.Clouds,
		Bushes:    s.world.Bushes,
		Tiles:     s.world.Tiles,
	}
	st.Portals = make([]core.Portal, len(s.portals))
	for i, p := range s.portals {
		st.Portals[i] = *p
	}
	st.Collectibles = make([]core.Collectible, len(s.coins))
	for i, c := range s.coins {
		st.Collectibles[i] = *c
	}
	if sk := s.sky.Load(); sk != nil {
		st.Palette = sk.palette
		st.Stars = sk.stars
	}
	return st
}

// Frame composes the current frame
func (s *Scene) Frame() render.Frame {
	return s.composer.Compose(s.RenderState())
}

// Avatar returns a copy of the avatar
func (s *Scene) Avatar() core.Avatar { return s.avatar }

// Phase returns the interaction phase
func (s *Scene) Phase() Phase { return s.phase }

// Parallax returns the current layer offsets
func (s *Scene) Parallax() core.Parallax { return s.parallax }

// World returns the current layout
func (s *Scene) World() layout.World { return s.world }

// Portal returns a copy of the portal with the given id
func (s *Scene) Portal(id core.PortalID) (core.Portal, bool) {
	if p := s.portal(id); p != nil {
		return *p, true
	}
	return core.Portal{}, false
}

// Collectibles returns the number of live coin animations
func (s *Scene) Collectibles() int { return len(s.coins) }

// Palette returns the palette currently drawn
func (s *Scene) Palette() theme.Palette {
	if sk := s.sky.Load(); sk != nil {
		return sk.palette
	}
	return theme.PaletteFor(theme.Light)
}

func (s *Scene) portal(id core.PortalID) *core.Portal {
	for _, p := range s.portals {
		if p.ID == id {
			return p
		}
	}
	return nil
}
