package vmath

import "math"

// --- Scalar ---

// Clamp limits v to [lo, hi]; when the range is inverted lo wins
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates linearly from a to b at t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Vector ---

// Dist returns the Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
