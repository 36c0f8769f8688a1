package grapher

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Point is a position in chart space. Points have no identity beyond their
// coordinates; curves own them by value.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// IsFinite reports whether both coordinates are neither infinite nor NaN.
func (pt Point) IsFinite() bool {
	return !pt.IsInf() && !pt.IsNaN()
}

// Nearest returns the index of the point in pts closest to pt and its
// distance. The first of several equidistant points wins. It returns -1 if
// pts is empty.
func Nearest(pts []Point, pt Point) (idx int, dist float64) {
	idx = -1
	best := math.Inf(1)
	for i, p := range pts {
		// Strict comparison keeps the earliest point on ties.
		if d := p.DistanceSquared(pt); d < best {
			best = d
			idx = i
		}
	}
	if idx == -1 {
		return -1, math.Inf(1)
	}
	return idx, math.Sqrt(best)
}

// SortByX returns a copy of pts ordered by ascending x. Points with equal x
// keep their relative order.
func SortByX(pts []Point) []Point {
	out := slices.Clone(pts)
	slices.SortStableFunc(out, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return out
}
