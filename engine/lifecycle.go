package engine

import (
	"log"
	"sync"
)

// Lifecycle is the owner handle for the one live scene.
// Init and Teardown are serialized, so rapid re-entry never leaves two scenes running.
type Lifecycle struct {
	mu      sync.Mutex
	current *Scene
	inits   int
}

// NewLifecycle creates a lifecycle with no scene mounted
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Init tears down the current scene, if any, then mounts a new one from cfg
func (l *Lifecycle) Init(cfg Config) *Scene {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Teardown()
		l.current = nil
	}
	l.current = NewScene(cfg)
	l.inits++
	log.Printf("lifecycle: scene #%d mounted", l.inits)
	return l.current
}

// Teardown unmounts the current scene
func (l *Lifecycle) Teardown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Teardown()
		l.current = nil
	}
}

// Current returns the mounted scene, or nil
func (l *Lifecycle) Current() *Scene {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
