package chart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/grapher"
)

// markerGlyph draws grapher markers as plot glyphs.
type markerGlyph struct {
	marker grapher.Marker
}

var _ draw.GlyphDrawer = markerGlyph{}

func (g markerGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	outline := grapher.MarkerPath(g.marker, grapher.Pt(float64(pt.X), float64(pt.Y)), float64(sty.Radius))
	path := vgPath(outline)

	c.Push()
	defer c.Pop()
	c.SetColor(sty.Color)
	if g.marker.Filled() {
		c.Fill(path)
		return
	}
	c.SetLineWidth(sty.Radius / 3)
	c.SetLineDash(nil, 0)
	c.Stroke(path)
}

func vgPath(p grapher.Path) vg.Path {
	var out vg.Path
	for _, el := range p {
		pt := vg.Point{X: vg.Length(el.P0.X), Y: vg.Length(el.P0.Y)}
		switch el.Kind {
		case grapher.MoveToKind:
			out.Move(pt)
		case grapher.LineToKind:
			out.Line(pt)
		case grapher.ClosePathKind:
			out.Close()
		}
	}
	return out
}
