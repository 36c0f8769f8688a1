package chart

import (
	"fmt"
	"image/color"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/grapher"
)

// gridColor is a mid grey at 30% opacity.
var gridColor = color.NRGBA{0xb0, 0xb0, 0xb0, 0x4d}

// Build composes a plot of s. Everything drawn inside the axes comes from the
// scene, legend included. The axis ranges are
// exactly the scene's bounds; points outside them are clipped rather than
// widening the axes.
func Build(s grapher.Scene, prof Profile) (*plot.Plot, error) {
	p := plot.New()

	if prof.TitleSize > 0 && s.Title != "" {
		p.Title.Text = s.Title
		p.Title.TextStyle.Font.Size = prof.TitleSize
		p.Title.TextStyle.Font.Weight = xfont.WeightBold
	}
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = prof.LabelSize
		ax.Tick.Label.Font.Size = prof.TickSize
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks(s.XTicks))
	p.Y.Tick.Marker = plot.ConstantTicks(ticks(s.YTicks))

	if lines := s.GridLines(); len(lines) > 0 {
		var grid grapher.Path
		for _, ln := range lines {
			grid = append(grid, ln.Path()...)
		}
		p.Add(pathPlotter{
			path:  grid,
			style: draw.LineStyle{Color: gridColor, Width: prof.GridWidth},
		})
	}

	for _, ser := range s.Series {
		p.Add(pathPlotter{path: ser.Path, style: lineStyle(ser.Style, prof.LineWidth)})
		if pts := ser.Markers(); pts != nil {
			xys := make(plotter.XYs, len(pts))
			for i, pt := range pts {
				xys[i].X, xys[i].Y = pt.X, pt.Y
			}
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("curve %q: %w", ser.Label, err)
			}
			sc.GlyphStyle = glyphStyle(ser.Style, prof)
			p.Add(sc)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = prof.LegendSize
	for _, e := range s.Legend() {
		p.Legend.Add(e.Label, legendThumb{style: e.Style, prof: prof})
	}

	// Add widens the axes to fit the data, so the bounds go last.
	b := s.Bounds
	p.X.Min, p.X.Max = b.MinX(), b.MaxX()
	p.Y.Min, p.Y.Max = b.MinY(), b.MaxY()
	return p, nil
}

func lineStyle(st grapher.Style, width vg.Length) draw.LineStyle {
	ls := draw.LineStyle{
		Color: st.Color.NRGBA(),
		Width: width,
	}
	for _, d := range st.LineStyle.Dashes(float64(width)) {
		ls.Dashes = append(ls.Dashes, vg.Length(d))
	}
	return ls
}

func glyphStyle(st grapher.Style, prof Profile) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  st.Color.NRGBA(),
		Radius: prof.MarkerSize / 2,
		Shape:  markerGlyph{st.Marker},
	}
}

func ticks(vs []float64) []plot.Tick {
	out := make([]plot.Tick, len(vs))
	for i, v := range vs {
		out[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 6, 64)}
	}
	return out
}
