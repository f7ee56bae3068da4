package engine

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/layout"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/tween"
	"github.com/lixenwraith/portfolio-quest/vmath"
)

// Phase is the interaction state; every phase except PhaseFree locks out the integrator
type Phase uint8

const (
	PhaseFree Phase = iota
	PhaseWalkingToTarget
	PhaseJumpingToHit
	PhaseBouncing
	PhaseLanding
)

func (p Phase) String() string {
	switch p {
	case PhaseFree:
		return "free"
	case PhaseWalkingToTarget:
		return "walking"
	case PhaseJumpingToHit:
		return "jumping"
	case PhaseBouncing:
		return "bouncing"
	case PhaseLanding:
		return "landing"
	}
	return "unknown"
}

// sequence holds the coordinates an interaction captured when it started.
// Later phases read these, never the live layout, so a resize cannot redirect them.
type sequence struct {
	portal *core.Portal
	hitY   float64
	landY  float64
	floor  core.Floor
}

// capture records the jump and landing targets for an avatar centred at x under p.
// The portal's surface is the landing target only when the avatar overlaps it.
func (s *Scene) capture(p *core.Portal, x float64) sequence {
	seq := sequence{
		portal: p,
		hitY:   math.Min(p.Y+parameter.JumpHitOffsetY, p.Bottom()+parameter.JumpHitBottomGap),
		landY:  s.world.RestY,
		floor:  core.GroundFloor(),
	}
	if p.Surface != nil {
		box := vmath.RectFromCenter(x, s.avatar.Y, s.avatar.Width, s.avatar.Height)
		if box.OverlapsX(p.Surface.Bounds()) {
			seq.landY = layout.SurfaceRestY(p.Surface, s.avatar.HalfHeight())
			seq.floor = core.SurfaceFloor(p.ID)
		}
	}
	return seq
}

// Click selects the portal whose centre is within the click radius of (x, y).
// Returns false when nothing was hit or a sequence is already running.
func (s *Scene) Click(x, y float64) bool {
	var best *core.Portal
	bestDist := parameter.ClickRadius
	for _, p := range s.portals {
		if d := vmath.Dist(x, y, p.X, p.Y); d <= bestDist {
			best, bestDist = p, d
		}
	}
	if best == nil {
		return false
	}
	return s.walkTo(best)
}

// Select starts the walk-to-target sequence for a portal
func (s *Scene) Select(id core.PortalID) bool {
	p := s.portal(id)
	if p == nil {
		log.Printf("scene: select unknown portal %q", id)
		return false
	}
	return s.walkTo(p)
}

// walkTo animates the avatar under p while scrolling the parallax layers against the motion
func (s *Scene) walkTo(p *core.Portal) bool {
	if !s.active.Load() || s.phase != PhaseFree {
		return false
	}
	startX, targetX := s.avatar.X, p.X
	s.phase = PhaseWalkingToTarget
	s.seq = s.capture(p, targetX)
	s.parallax.Reset()

	dist := math.Abs(targetX - startX)
	dir := 1.0
	if targetX < startX {
		dir = -1
	}

	s.avatar.Motion = core.MotionRunning
	s.avatar.VelY = 0
	if dir < 0 {
		s.avatar.Facing = core.FacingLeft
	} else {
		s.avatar.Facing = core.FacingRight
	}

	s.tweens.Start(tween.Spec{
		Duration: walkDuration(dist),
		Ease:     vmath.Linear,
		OnUpdate: func(t float64) {
			s.avatar.X = vmath.Lerp(startX, targetX, t)
			shift := t * dist * -dir
			s.parallax.Clouds = shift * parameter.ParallaxCloudFactor
			s.parallax.Ground = shift * parameter.ParallaxGroundFactor
			s.parallax.Foliage = shift * parameter.ParallaxGroundFactor
		},
		OnComplete: func() {
			s.parallax.Reset()
			s.avatar.X = targetX
			s.jumpToHit()
		},
	})
	return true
}

// walkDuration scales with distance inside the min/max window
func walkDuration(dist float64) time.Duration {
	d := time.Duration(dist * parameter.WalkMsPerPixel * float64(time.Millisecond))
	return min(max(d, parameter.WalkMinDuration), parameter.WalkMaxDuration)
}

// jumpToHit raises the avatar into the captured portal from below
func (s *Scene) jumpToHit() {
	s.phase = PhaseJumpingToHit
	s.avatar.Motion = core.MotionAirborne
	s.sounds.Play(core.SoundJump)

	startY, targetY := s.avatar.Y, s.seq.hitY
	s.tweens.Start(tween.Spec{
		Duration: parameter.JumpHitDuration,
		Ease:     vmath.QuadOut,
		OnUpdate: func(t float64) {
			s.avatar.Y = vmath.Lerp(startY, targetY, t)
		},
		OnComplete: func() {
			s.avatar.Y = targetY
			s.bounce()
		},
	})
}

// strike takes over from the integrator when an ascending avatar hits p
func (s *Scene) strike(p *core.Portal) {
	if s.phase != PhaseFree {
		return
	}
	s.seq = s.capture(p, s.avatar.X)
	s.avatar.VelY = 0
	s.avatar.Motion = core.MotionAirborne
	s.bounce()
}

// bounce knocks the portal sprite up once, latches activation and releases a coin,
// then moves straight on to landing while the bounce plays
func (s *Scene) bounce() {
	p := s.seq.portal
	s.phase = PhaseBouncing
	s.sounds.Play(core.SoundBump)

	if !p.Activated {
		p.Activated = true
	}
	s.tweens.Start(tween.Spec{
		Duration: parameter.BounceDuration,
		Ease:     vmath.BounceOut,
		Yoyo:     true,
		OnUpdate: func(t float64) {
			p.BounceY = -parameter.BounceHeight * t
		},
		OnComplete: func() {
			p.BounceY = 0
		},
	})
	s.spawnCoin(p)
	s.land()
}

// spawnCoin starts a fire-and-forget coin that spins, rises, fades and removes itself
func (s *Scene) spawnCoin(p *core.Portal) {
	coin := &core.Collectible{X: p.X, Y: p.Y - parameter.CoinSpawnOffsetY, Alpha: 1}
	s.coins = append(s.coins, coin)
	s.sounds.Play(core.SoundCoin)

	spin := s.tweens.Every(parameter.CoinFrameInterval, func() {
		coin.Frame = (coin.Frame + 1) % parameter.CoinFrames
	})

	startY, endY := coin.Y, p.Y-parameter.CoinRiseOffsetY
	s.tweens.Start(tween.Spec{
		Duration: parameter.CoinDuration,
		Ease:     vmath.CubicOut,
		OnUpdate: func(t float64) {
			coin.Y = vmath.Lerp(startY, endY, t)
			coin.Alpha = 1 - t
		},
		OnComplete: func() {
			spin.Cancel()
			s.removeCoin(coin)
		},
	})
}

func (s *Scene) removeCoin(c *core.Collectible) {
	for i, other := range s.coins {
		if other == c {
			s.coins = append(s.coins[:i], s.coins[i+1:]...)
			return
		}
	}
}

// land drops the avatar onto the captured floor, then hands control back and navigates
func (s *Scene) land() {
	s.phase = PhaseLanding
	p := s.seq.portal
	startY, targetY, floor := s.avatar.Y, s.seq.landY, s.seq.floor

	s.tweens.Start(tween.Spec{
		Duration: parameter.LandDuration,
		Ease:     vmath.CubicIn,
		OnUpdate: func(t float64) {
			s.avatar.Y = vmath.Lerp(startY, targetY, t)
		},
		OnComplete: func() {
			s.avatar.Y = targetY
			s.avatar.VelY = 0
			s.avatar.Motion = core.MotionIdle
			s.avatar.Facing = core.FacingRight
			s.avatar.Floor = floor

			s.phase = PhaseFree
			s.seq = sequence{}
			if s.resized {
				s.settle()
			}

			log.Printf("scene: interaction complete -> %s", p.ID)
			s.nav.Navigate(string(p.ID))
		},
	})
}
