package vmath

// Ease maps normalized time t in [0, 1] to eased progress
type Ease func(t float64) float64

// Linear is the identity curve
func Linear(t float64) float64 { return t }

// QuadOut decelerates
func QuadOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// CubicIn accelerates
func CubicIn(t float64) float64 { return t * t * t }

// CubicOut decelerates harder than QuadOut
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// BounceOut settles with three diminishing rebounds
func BounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
