package core

// Collectible is the decorative coin released by a portal hit
type Collectible struct {
	X, Y  float64
	Alpha float64
	Frame int
}

// Star is a 2px sky dot shown in dark mode
type Star struct {
	X, Y float64
}
