package grapher

// Rect is an axis-aligned rectangle given by two opposite corners. The
// corners may be in any order; a pixel area has Y0 below Y1 on screen while
// its chart area has Y0 at the bottom.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromCenter returns a square with the given half-side, centered around
// the center point.
func NewRectFromCenter(center Point, half float64) Rect {
	return Rect{
		X0: center.X - half,
		Y0: center.Y - half,
		X1: center.X + half,
		Y1: center.Y + half,
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns X1 − X0. It is negative for corners given right to left.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns Y1 − Y0. It is negative for corners given top to bottom.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies inside r, edges included. Unlike a half-open
// pixel rectangle, chart areas own their right and top borders: a click on
// the axis at x = XMax is still a click on the chart.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.MinX() &&
		pt.X <= r.MaxX() &&
		pt.Y >= r.MinY() &&
		pt.Y <= r.MaxY()
}

// Path returns the closed outline of the rectangle, counter-clockwise in a
// y-up space.
func (r Rect) Path() Path {
	var p Path
	p.MoveTo(Pt(r.X0, r.Y0))
	p.LineTo(Pt(r.X1, r.Y0))
	p.LineTo(Pt(r.X1, r.Y1))
	p.LineTo(Pt(r.X0, r.Y1))
	p.ClosePath()
	return p
}
