package grapher

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a [Path].
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo%s", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo%s", el.P0)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of straight-line drawing commands. Curves render as
// single-subpath polylines. Markers and the grid may have several subpaths.
type Path []PathElement

// Polyline returns the open path visiting pts in order. It returns nil for
// an empty slice.
func Polyline(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts))
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

// Polygon returns the closed path through pts.
func Polygon(pts []Point) Path {
	p := Polyline(pts)
	if p != nil {
		p.ClosePath()
	}
	return p
}

func (p *Path) MoveTo(pt Point) {
	*p = append(*p, MoveTo(pt))
}

func (p *Path) LineTo(pt Point) {
	*p = append(*p, LineTo(pt))
}

func (p *Path) ClosePath() {
	*p = append(*p, ClosePath())
}
