package core

import "github.com/lixenwraith/portfolio-quest/vmath"

// PortalID doubles as the navigation destination of a portal
type PortalID string

const (
	PortalSkills   PortalID = "skills"
	PortalProjects PortalID = "projects"
	PortalAbout    PortalID = "about"
	PortalContact  PortalID = "contact"
)

// PortalOrder is the left-to-right order of the portal row
var PortalOrder = [...]PortalID{PortalSkills, PortalProjects, PortalAbout, PortalContact}

// StandSurface is the platform beneath a portal, positioned by its centre
type StandSurface struct {
	X, Y          float64
	Width, Height float64
	Scale         float64
}

func (s *StandSurface) Top() float64   { return s.Y - s.Height/2 }
func (s *StandSurface) Left() float64  { return s.X - s.Width/2 }
func (s *StandSurface) Right() float64 { return s.X + s.Width/2 }

// Bounds returns the surface box
func (s *StandSurface) Bounds() vmath.Rect {
	return vmath.RectFromCenter(s.X, s.Y, s.Width, s.Height)
}

// Portal is an interactive trigger bound to a navigation destination
type Portal struct {
	ID PortalID

	// Geometry, owned by the world layout
	X, Y          float64
	Width, Height float64
	Scale         float64
	Surface       *StandSurface

	// BounceY is a visual-only vertical displacement applied while the bounce tween runs
	BounceY float64

	// Activated latches on the first hit and switches the sprite to its used variant
	Activated bool
}

// Bounds returns the portal box, ignoring the visual bounce
func (p *Portal) Bounds() vmath.Rect {
	return vmath.RectFromCenter(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the y of the portal's lower edge
func (p *Portal) Bottom() float64 { return p.Y + p.Height/2 }
