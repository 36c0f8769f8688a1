package grapher

import "math"

const circleSides = 32

// MarkerPath returns the outline of marker m centered on center, with the
// outline's vertices at most radius away from center. Coordinates are y-up.
//
// All markers except [Cross] are closed polygons meant to be filled; Cross
// consists of two open diagonal strokes.
func MarkerPath(m Marker, center Point, radius float64) Path {
	switch m {
	case Circle:
		return regularPolygon(center, radius, circleSides, 0)
	case Square:
		// Inscribed in the circle of the given radius.
		return NewRectFromCenter(center, radius/math.Sqrt2).Path()
	case Triangle:
		return regularPolygon(center, radius, 3, math.Pi/2)
	case Diamond:
		return regularPolygon(center, radius, 4, math.Pi/2)
	case Star:
		return star(center, radius, radius*0.382, 5)
	case Cross:
		d := Polar(radius, math.Pi/4)
		e := Polar(radius, -math.Pi/4)
		return Path{
			MoveTo(center.Translate(d.Negate())), LineTo(center.Translate(d)),
			MoveTo(center.Translate(e.Negate())), LineTo(center.Translate(e)),
		}
	default:
		return nil
	}
}

// regularPolygon returns a closed n-gon whose first vertex lies at angle
// start (radians) from center.
func regularPolygon(center Point, radius float64, n int, start float64) Path {
	pts := make([]Point, n)
	first := center.Translate(Polar(radius, start))
	for i := range n {
		pts[i] = first.Transform(RotateAbout(2*math.Pi*float64(i)/float64(n), center))
	}
	return Polygon(pts)
}

func star(center Point, outer, inner float64, spikes int) Path {
	pts := make([]Point, 0, 2*spikes)
	step := math.Pi / float64(spikes)
	for i := range 2 * spikes {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, center.Translate(Polar(r, math.Pi/2+float64(i)*step)))
	}
	return Polygon(pts)
}
