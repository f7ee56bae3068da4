package core

// Parallax holds the horizontal offsets of the decorative layer groups
type Parallax struct {
	Clouds  float64
	Ground  float64
	Foliage float64
}

// Reset zeroes every layer
func (p *Parallax) Reset() {
	*p = Parallax{}
}

// IsZero reports whether every layer is at rest
func (p Parallax) IsZero() bool {
	return p.Clouds == 0 && p.Ground == 0 && p.Foliage == 0
}
