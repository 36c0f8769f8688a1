package grapher

// Scene is a complete, backend-independent description of a chart. It is
// what every renderer draws, on screen or into a file, so that all outputs
// agree.
type Scene struct {
	// Title is drawn above the chart. The interactive view leaves it empty.
	Title  string
	XLabel string
	YLabel string
	// Bounds is the visible data range.
	Bounds Rect
	// Ticks are drawn on the axes; when Grid is set, grid lines are drawn at
	// the same positions.
	XTicks []float64
	YTicks []float64
	Grid   bool
	// Series holds one entry per curve with at least one point, in curve
	// order.
	Series []Series
}

// Series is the drawable form of one non-empty curve.
type Series struct {
	Label string
	Style Style
	// Points are the curve's points sorted by x.
	Points []Point
	// Path is the polyline through Points.
	Path Path
}

// Markers returns the positions at which markers are drawn, which is none
// unless the curve shows its points.
func (s Series) Markers() []Point {
	if !s.Style.ShowPoints {
		return nil
	}
	return s.Points
}

// LegendEntry is one line of the chart legend.
type LegendEntry struct {
	Label string
	Style Style
}

// Render computes the scene for curves drawn on a chart with the given
// parameters. It is a pure function: curves are not modified, in particular
// their stored point order is left alone.
//
// Empty curves contribute neither a series nor a legend entry.
func Render(curves []Curve, params ChartParams, title string) Scene {
	s := Scene{
		Title:  title,
		XLabel: params.XLabel,
		YLabel: params.YLabel,
		Bounds: params.Bounds(),
		XTicks: Ticks(params.XMax, params.GridStepX),
		YTicks: Ticks(params.YMax, params.GridStepY),
		Grid:   params.GridEnabled,
	}
	for _, c := range curves {
		if len(c.Points) == 0 {
			continue
		}
		pts := c.Sorted()
		s.Series = append(s.Series, Series{
			Label:  c.Label,
			Style:  c.Style,
			Points: pts,
			Path:   Polyline(pts),
		})
	}
	return s
}

// Legend returns the legend entries, one per series. A scene without series
// has no legend.
func (s Scene) Legend() []LegendEntry {
	if len(s.Series) == 0 {
		return nil
	}
	out := make([]LegendEntry, len(s.Series))
	for i, ser := range s.Series {
		out[i] = LegendEntry{Label: ser.Label, Style: ser.Style}
	}
	return out
}

// GridLines returns the grid as line segments spanning the bounds, vertical
// lines first. It returns nil if the grid is disabled.
func (s Scene) GridLines() []Line {
	if !s.Grid {
		return nil
	}
	b := s.Bounds
	lines := make([]Line, 0, len(s.XTicks)+len(s.YTicks))
	for _, x := range s.XTicks {
		lines = append(lines, Line{Pt(x, b.MinY()), Pt(x, b.MaxY())})
	}
	for _, y := range s.YTicks {
		lines = append(lines, Line{Pt(b.MinX(), y), Pt(b.MaxX(), y)})
	}
	return lines
}
