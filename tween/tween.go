// Package tween runs time-based interpolations sampled once per frame.
// Nothing here spawns goroutines: the owner calls Update from its frame loop and every
// callback runs synchronously inside that call.
package tween

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/portfolio-quest/vmath"
)

// Token is a liveness flag shared by everything a scene schedules.
// Once revoked no callback bound to it fires again.
type Token struct {
	alive atomic.Bool
}

// NewToken returns a live token
func NewToken() *Token {
	t := &Token{}
	t.alive.Store(true)
	return t
}

// Alive reports whether callbacks may still fire
func (t *Token) Alive() bool { return t.alive.Load() }

// Revoke kills the token permanently
func (t *Token) Revoke() { t.alive.Store(false) }

// Spec describes one tween
type Spec struct {
	Duration time.Duration
	Ease     vmath.Ease // nil means linear

	// Yoyo plays the curve forward then backward, taking 2*Duration in total
	Yoyo bool

	// OnUpdate receives eased progress every frame, ending at exactly 1 (or 0 for yoyo)
	OnUpdate func(p float64)

	// OnComplete runs in the frame that crosses the end
	OnComplete func()
}

// Handle controls a scheduled task
type Handle struct {
	cancelled bool
	done      bool
}

// Cancel stops the task before its next callback
func (h *Handle) Cancel() { h.cancelled = true }

// Done reports whether the task finished or was cancelled
func (h *Handle) Done() bool { return h.done || h.cancelled }

type task struct {
	handle  *Handle
	elapsed time.Duration

	// tween
	spec Spec

	// interval task when every > 0
	every time.Duration
	fn    func()
}

// sample advances a tween and reports whether it completed
func (t *task) sample(dt time.Duration) bool {
	t.elapsed += dt
	total := t.spec.Duration
	if t.spec.Yoyo {
		total *= 2
	}

	progress := 1.0
	if total > 0 && t.elapsed < total {
		progress = float64(t.elapsed) / float64(total)
	}

	leg := progress
	if t.spec.Yoyo {
		leg = progress * 2
		if leg > 1 {
			leg = 2 - leg
		}
	}

	ease := t.spec.Ease
	if ease == nil {
		ease = vmath.Linear
	}
	if t.spec.OnUpdate != nil {
		eased := ease(leg)
		if t.spec.Yoyo && progress >= 1 {
			eased = 0
		}
		t.spec.OnUpdate(eased)
	}
	return progress >= 1
}
