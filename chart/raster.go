package chart

import (
	"fmt"
	"image"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"honnef.co/go/grapher"
)

// Viewport relates the pixels of a rasterised chart to chart coordinates.
type Viewport struct {
	// Data is the plotting area in pixels, with y pointing down.
	Data grapher.Rect

	toChart grapher.Affine
}

func newViewport(data, bounds grapher.Rect) Viewport {
	// The top left pixel corner shows (min x, max y).
	to := grapher.Rect{X0: bounds.MinX(), Y0: bounds.MaxY(), X1: bounds.MaxX(), Y1: bounds.MinY()}
	return Viewport{
		Data:    data,
		toChart: grapher.MapRect(data, to),
	}
}

// Contains reports whether the pixel position px lies in the plotting area.
func (v Viewport) Contains(px grapher.Point) bool {
	return v.Data.Contains(px)
}

// ToChart converts a pixel position to chart coordinates.
func (v Viewport) ToChart(px grapher.Point) grapher.Point {
	return px.Transform(v.toChart)
}

// ToPixel converts chart coordinates to a pixel position.
func (v Viewport) ToPixel(pt grapher.Point) grapher.Point {
	return pt.Transform(v.toChart.Invert())
}

// Rasterize renders s into an image of the given pixel size at dpi dots per
// inch.
func Rasterize(s grapher.Scene, prof Profile, size image.Point, dpi int) (image.Image, Viewport, error) {
	if size.X <= 0 || size.Y <= 0 || dpi <= 0 {
		return nil, Viewport{}, fmt.Errorf("invalid raster size %v at %d dpi", size, dpi)
	}
	p, err := Build(s, prof)
	if err != nil {
		return nil, Viewport{}, err
	}

	// Pixels per point.
	scale := float64(dpi) / float64(vg.Inch)
	w := vg.Length(float64(size.X) / scale)
	h := vg.Length(float64(size.Y) / scale)
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	dc := draw.New(c)
	p.Draw(dc)

	da := p.DataCanvas(dc)
	px := func(x, y vg.Length) grapher.Point {
		return grapher.Pt(float64(x)*scale, float64(size.Y)-float64(y)*scale)
	}
	tl, br := px(da.Min.X, da.Max.Y), px(da.Max.X, da.Min.Y)
	data := grapher.Rect{X0: tl.X, Y0: tl.Y, X1: br.X, Y1: br.Y}
	vp := newViewport(data, s.Bounds)
	if vp.toChart.IsNaN() || vp.toChart.IsInf() {
		return nil, Viewport{}, fmt.Errorf("raster size %v leaves no room for the plotting area", size)
	}
	return c.Image(), vp, nil
}
