package chart

import (
	"honnef.co/go/grapher"
)

// testScene has two curves, one with hidden markers, and a grid.
func testScene() grapher.Scene {
	a := grapher.NewCurve(0)
	a.Points = []grapher.Point{grapher.Pt(3, 9), grapher.Pt(1, 1), grapher.Pt(2, 4)}
	b := grapher.NewCurve(1)
	b.Style.LineStyle = grapher.Dashed
	b.Style.Marker = grapher.Cross
	b.Points = []grapher.Point{grapher.Pt(0, 5), grapher.Pt(10, 5)}
	c := grapher.NewCurve(2)
	c.Style.ShowPoints = false
	c.Style.LineStyle = grapher.Dotted
	c.Points = []grapher.Point{grapher.Pt(0, 0), grapher.Pt(12, 12)}
	return grapher.Render([]grapher.Curve{a, b, c}, grapher.DefaultChartParams(), "Chart")
}
