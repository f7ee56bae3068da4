// Package theme holds the light/dark flag and the palettes it selects.
package theme

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// Mode is the site-wide colour scheme
type Mode uint8

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "light" or "dark", case-insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown theme %q", s)
}

// Palette is everything the composer reads from the theme
type Palette struct {
	Sky    color.RGBA
	Ground color.RGBA
	Star   color.RGBA

	// Stars is set for the dark palette only
	Stars bool
}

var (
	lightPalette = Palette{
		Sky:    color.RGBA{0x5c, 0x94, 0xfc, 0xff},
		Ground: color.RGBA{0x8b, 0x73, 0x55, 0xff},
		Star:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	darkPalette = Palette{
		Sky:    color.RGBA{0x0a, 0x19, 0x29, 0xff},
		Ground: color.RGBA{0x2c, 0x24, 0x16, 0xff},
		Star:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		Stars:  true,
	}
)

// PaletteFor returns the palette of a mode
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}

// Source is the read side of a theme provider as the scene sees it
type Source interface {
	Mode() Mode
	Subscribe(fn func(Mode)) (unsubscribe func())
}

// Provider owns the current mode and notifies subscribers on change
// Subscribers run on the goroutine that changed the mode
type Provider struct {
	mu     sync.Mutex
	mode   Mode
	subs   map[uint64]func(Mode)
	nextID uint64
}

// NewProvider creates a provider starting in mode m
func NewProvider(m Mode) *Provider {
	return &Provider{
		mode: m,
		subs: make(map[uint64]func(Mode)),
	}
}

// Mode returns the current mode
func (p *Provider) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Set changes the mode, notifying subscribers only when it differs
func (p *Provider) Set(m Mode) {
	p.mu.Lock()
	if p.mode == m {
		p.mu.Unlock()
		return
	}
	p.mode = m
	fns := make([]func(Mode), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	// Outside the lock so a subscriber may read Mode or unsubscribe
	for _, fn := range fns {
		fn(m)
	}
}

// Toggle flips between light and dark and returns the new mode
func (p *Provider) Toggle() Mode {
	next := Dark
	if p.Mode() == Dark {
		next = Light
	}
	p.Set(next)
	return next
}

// Subscribe registers fn for mode changes; the returned func removes it and is idempotent
func (p *Provider) Subscribe(fn func(Mode)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions
func (p *Provider) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
