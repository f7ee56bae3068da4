package vmath

// Rect is an axis-aligned box in world pixels, Y grows downward
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromCenter builds a box of size w x h centred on (cx, cy)
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// OverlapsX reports strict horizontal overlap; touching edges do not overlap
func (r Rect) OverlapsX(o Rect) bool {
	return r.Right > o.Left && r.Left < o.Right
}

// Overlaps reports strict overlap on both axes
func (r Rect) Overlaps(o Rect) bool {
	return r.OverlapsX(o) && r.Bottom > o.Top && r.Top < o.Bottom
}

// Contains reports whether the point lies inside the box, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// HeadHit reports whether an ascending box r strikes o from below.
// The struck band runs from o.Top-tolerance down to o.Bottom, measured on r.Top.
func HeadHit(r, o Rect, tolerance float64) bool {
	return r.Top <= o.Bottom && r.Top >= o.Top-tolerance && r.OverlapsX(o)
}

// FeetLand reports whether a descending box r reaches the top of o within tolerance
func FeetLand(r, o Rect, tolerance float64) bool {
	return r.Bottom >= o.Top && r.Bottom <= o.Top+tolerance && r.OverlapsX(o)
}
