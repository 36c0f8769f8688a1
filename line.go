package grapher

// Line is a straight segment from P0 to P1. The grid of a [Scene] is a set of
// Lines spanning its bounds.
type Line struct {
	P0 Point
	P1 Point
}

// Path returns the segment as a one-segment open path.
func (l Line) Path() Path {
	return Path{MoveTo(l.P0), LineTo(l.P1)}
}
