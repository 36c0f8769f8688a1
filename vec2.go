package grapher

import "math"

// Vec2 is a displacement in chart space. Points move by vectors; markers are
// laid out as vectors from their center.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Polar returns the vector of length r at angle th radians from the positive
// x axis, counter-clockwise in y-up space.
func Polar(r, th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{X: r * cos, Y: r * sin}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}
