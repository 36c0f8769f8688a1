package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/grapher"
)

// pathPlotter strokes a scene path given in data coordinates. Each subpath
// becomes one polyline, clipped to the data area.
type pathPlotter struct {
	path  grapher.Path
	style draw.LineStyle
}

var _ plot.Plotter = pathPlotter{}

func (pp pathPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	var lines [][]vg.Point
	var cur []vg.Point
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, el := range pp.path {
		switch el.Kind {
		case grapher.MoveToKind:
			flush()
			cur = []vg.Point{{X: trX(el.P0.X), Y: trY(el.P0.Y)}}
		case grapher.LineToKind:
			cur = append(cur, vg.Point{X: trX(el.P0.X), Y: trY(el.P0.Y)})
		case grapher.ClosePathKind:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	flush()
	if len(lines) == 0 {
		return
	}
	c.StrokeLines(pp.style, c.ClipLinesXY(lines...)...)
}

// legendThumb draws a legend sample for a curve style: a line across the
// thumbnail and, if the curve shows its points, a marker in the middle.
type legendThumb struct {
	style grapher.Style
	prof  Profile
}

var _ plot.Thumbnailer = legendThumb{}

func (th legendThumb) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(lineStyle(th.style, th.prof.LineWidth), c.Min.X, y, c.Max.X, y)
	if th.style.ShowPoints {
		c.DrawGlyph(glyphStyle(th.style, th.prof), c.Center())
	}
}
