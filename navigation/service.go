// Package navigation dispatches route transitions to the active frontend.
package navigation

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/lixenwraith/portfolio-quest/core"
)

// ErrUnknownDestination is returned for a destination outside the route table
var ErrUnknownDestination = errors.New("unknown destination")

// Handler receives every accepted route transition
type Handler func(dest string)

// Service validates destinations against a fixed route table and records history
type Service struct {
	mu      sync.Mutex
	routes  []string
	handler Handler
	history []string
}

// NewService creates a service for the given routes; no routes means the four portal destinations
func NewService(handler Handler, routes ...string) *Service {
	if len(routes) == 0 {
		for _, id := range core.PortalOrder {
			routes = append(routes, string(id))
		}
	}
	return &Service{
		routes:  routes,
		handler: handler,
	}
}

// SetHandler replaces the transition handler
func (s *Service) SetHandler(h Handler) {
	s.mu.Lock()
	s.handler = h
	s.mu.Unlock()
}

// Go transitions to dest
func (s *Service) Go(dest string) error {
	s.mu.Lock()
	if !slices.Contains(s.routes, dest) {
		s.mu.Unlock()
		return fmt.Errorf("navigate %q: %w", dest, ErrUnknownDestination)
	}
	s.history = append(s.history, dest)
	h := s.handler
	s.mu.Unlock()

	log.Printf("navigation: -> %s", dest)
	if h != nil {
		h(dest)
	}
	return nil
}

// Navigate is Go for callers inside the frame loop; failures are logged and dropped
func (s *Service) Navigate(dest string) {
	if err := s.Go(dest); err != nil {
		log.Printf("navigation: %v", err)
	}
}

// Routes returns the accepted destinations in table order
func (s *Service) Routes() []string {
	return slices.Clone(s.routes)
}

// History returns every accepted destination, oldest first
func (s *Service) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}
