package tween

import "time"

// Scheduler owns every tween and interval task of one scene
type Scheduler struct {
	token   *Token
	tasks   []*task
	pending []*task
}

// NewScheduler creates a scheduler with a fresh live token
func NewScheduler() *Scheduler {
	return &Scheduler{token: NewToken()}
}

// Token returns the scheduler's liveness token
func (s *Scheduler) Token() *Token { return s.token }

// Start schedules a tween; it is first sampled on the next Update
func (s *Scheduler) Start(spec Spec) *Handle {
	h := &Handle{}
	if !s.token.Alive() {
		h.cancelled = true
		return h
	}
	s.pending = append(s.pending, &task{handle: h, spec: spec})
	return h
}

// Every schedules fn to run each time interval elapses until cancelled
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	h := &Handle{}
	if !s.token.Alive() || interval <= 0 {
		h.cancelled = true
		return h
	}
	s.pending = append(s.pending, &task{handle: h, every: interval, fn: fn})
	return h
}

// Update advances every task by dt. Tasks started from inside a callback begin next frame.
func (s *Scheduler) Update(dt time.Duration) {
	if !s.token.Alive() {
		return
	}
	s.tasks = append(s.tasks, s.pending...)
	s.pending = nil

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !s.token.Alive() {
			break
		}
		if t.handle.cancelled {
			continue
		}

		if t.every > 0 {
			t.elapsed += dt
			for t.elapsed >= t.every && !t.handle.cancelled && s.token.Alive() {
				t.elapsed -= t.every
				t.fn()
			}
			if !t.handle.cancelled {
				kept = append(kept, t)
			}
			continue
		}

		if t.sample(dt) {
			t.handle.done = true
			if t.spec.OnComplete != nil && s.token.Alive() && !t.handle.cancelled {
				t.spec.OnComplete()
			}
			continue
		}
		kept = append(kept, t)
	}

	if !s.token.Alive() {
		s.tasks = nil
		s.pending = nil
		return
	}
	// Clear the tail so dropped tasks can be collected
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Stop revokes the token and drops every task without firing callbacks
func (s *Scheduler) Stop() {
	s.token.Revoke()
	for _, t := range s.tasks {
		t.handle.cancelled = true
	}
	for _, t := range s.pending {
		t.handle.cancelled = true
	}
	s.tasks = nil
	s.pending = nil
}

// Active returns the number of live tasks, including ones waiting for their first frame
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.handle.Done() {
			n++
		}
	}
	for _, t := range s.pending {
		if !t.handle.Done() {
			n++
		}
	}
	return n
}
