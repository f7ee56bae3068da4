package physics

import (
	"time"

	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/input"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/vmath"
)

// Environment is the read-only world the integrator resolves against
type Environment struct {
	Width   float64
	RestY   float64
	Portals []*core.Portal

	// Locked is set while a scripted interaction owns the avatar
	Locked bool
}

// surfaceOf returns the stand-surface under the portal with the given id
func (e *Environment) surfaceOf(id core.PortalID) *core.StandSurface {
	for _, p := range e.Portals {
		if p.ID == id {
			return p.Surface
		}
	}
	return nil
}

// Outcome reports the discrete events of one frame
type Outcome struct {
	// Hit is the portal struck from below; control must pass to the interaction sequence
	Hit *core.Portal

	Jumped bool
	Landed bool
}

// Integrator advances the free-moving avatar one frame at a time
type Integrator struct {
	jump input.Edge
}

// NewIntegrator creates an integrator with the jump key up
func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Update runs one frame: horizontal movement, jump edge, vertical integration, walk-off, idle
func (in *Integrator) Update(a *core.Avatar, env Environment, keys input.Keys, dt time.Duration) Outcome {
	var out Outcome
	if env.Locked {
		return out
	}
	sec := dt.Seconds()

	// Horizontal
	dir := keys.Horizontal()
	if dir != 0 {
		a.X += float64(dir) * parameter.AvatarSpeed * sec
		if dir < 0 {
			a.Facing = core.FacingLeft
		} else {
			a.Facing = core.FacingRight
		}
		if !a.Airborne() {
			a.Motion = core.MotionRunning
		}
	}
	a.X = vmath.Clamp(a.X, a.HalfWidth(), env.Width-a.HalfWidth())

	// Jump on rising edge only; the edge is consumed even when airborne
	if in.jump.Rising(keys.Jump) && !a.Airborne() {
		a.Motion = core.MotionAirborne
		a.VelY = parameter.AvatarJumpVelocity
		out.Jumped = true
	}

	if a.Airborne() {
		in.integrate(a, &env, sec, &out)
		if out.Hit != nil {
			return out
		}
	} else if id, ok := a.Floor.Portal(); ok {
		s := env.surfaceOf(id)
		if s == nil || !a.Bounds().OverlapsX(s.Bounds()) {
			a.Motion = core.MotionAirborne
			a.VelY = 0
			a.Floor = core.GroundFloor()
		}
	}

	if !a.Airborne() {
		if dir != 0 {
			a.Motion = core.MotionRunning
		} else {
			a.Motion = core.MotionIdle
		}
	}
	return out
}

// integrate applies gravity then resolves head hits while rising and landings while falling
func (in *Integrator) integrate(a *core.Avatar, env *Environment, sec float64, out *Outcome) {
	a.VelY += parameter.Gravity * sec
	a.Y += a.VelY * sec
	box := a.Bounds()

	switch {
	case a.VelY < 0:
		for _, p := range env.Portals {
			if p.Activated {
				continue
			}
			if vmath.HeadHit(box, p.Bounds(), parameter.HitToleranceY) {
				out.Hit = p
				return
			}
		}

	case a.VelY > 0:
		for _, p := range env.Portals {
			s := p.Surface
			if s == nil {
				continue
			}
			if vmath.FeetLand(box, s.Bounds(), parameter.LandToleranceY) {
				a.Y = s.Top() - a.HalfHeight()
				land(a, core.SurfaceFloor(p.ID))
				out.Landed = true
				return
			}
		}
	}

	if a.Y >= env.RestY {
		a.Y = env.RestY
		land(a, core.GroundFloor())
		out.Landed = true
	}
}

func land(a *core.Avatar, floor core.Floor) {
	a.VelY = 0
	a.Motion = core.MotionIdle
	a.Floor = floor
}
