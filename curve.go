package grapher

import (
	"fmt"
	"slices"
)

// Curve is an ordered collection of points plus its display attributes.
//
// Point order is insertion order. It is only meaningful until the curve is
// rendered or smoothed, both of which work on the points sorted by x.
type Curve struct {
	Label  string
	Style  Style
	Points []Point
}

// NewCurve returns the i-th (0-based) freshly created curve: no points, the
// default style and the label "Curve i+1".
func NewCurve(i int) Curve {
	return Curve{
		Label: fmt.Sprintf("Curve %d", i+1),
		Style: DefaultStyle(i),
	}
}

func (c Curve) Len() int {
	return len(c.Points)
}

// Sorted returns a copy of the curve's points ordered by ascending x. The
// curve itself is not modified.
func (c Curve) Sorted() []Point {
	return SortByX(c.Points)
}

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	c.Points = slices.Clone(c.Points)
	return c
}

// TableRow is one line of the coordinate table shown for the selected curve.
type TableRow struct {
	// Index is 1-based.
	Index int
	X     string
	Y     string
}

// Table returns the curve's points in storage order, formatted with two
// decimals.
func (c Curve) Table() []TableRow {
	rows := make([]TableRow, len(c.Points))
	for i, pt := range c.Points {
		rows[i] = TableRow{
			Index: i + 1,
			X:     fmt.Sprintf("%.2f", pt.X),
			Y:     fmt.Sprintf("%.2f", pt.Y),
		}
	}
	return rows
}
