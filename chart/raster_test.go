package chart

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/grapher"
)

func TestRasterize(t *testing.T) {
	size := image.Pt(800, 600)
	img, vp, err := Rasterize(testScene(), ScreenProfile(), size, 96)
	require.NoError(t, err)
	assert.Equal(t, size, img.Bounds().Size())

	// The plotting area lies inside the image, inset by the axes.
	d := vp.Data
	assert.Greater(t, d.X0, 0.0)
	assert.Greater(t, d.Y0, 0.0)
	assert.Less(t, d.X1, 800.0)
	assert.Less(t, d.Y1, 600.0)

	tl := vp.ToChart(grapher.Pt(d.X0, d.Y0))
	br := vp.ToChart(grapher.Pt(d.X1, d.Y1))
	assert.InDelta(t, 0, tl.X, 1e-9)
	assert.InDelta(t, 10, tl.Y, 1e-9)
	assert.InDelta(t, 10, br.X, 1e-9)
	assert.InDelta(t, 0, br.Y, 1e-9)

	for _, pt := range []grapher.Point{grapher.Pt(2.5, 7), grapher.Pt(0, 0), grapher.Pt(9.9, 0.1)} {
		back := vp.ToChart(vp.ToPixel(pt))
		assert.InDelta(t, pt.X, back.X, 1e-9)
		assert.InDelta(t, pt.Y, back.Y, 1e-9)
	}

	assert.True(t, vp.Contains(vp.ToPixel(grapher.Pt(5, 5))))
	assert.False(t, vp.Contains(grapher.Pt(1, 1)))
}

func TestRasterizeMarker(t *testing.T) {
	c := grapher.NewCurve(0)
	c.Style.Color = grapher.Red
	c.Style.Marker = grapher.Square
	c.Points = []grapher.Point{grapher.Pt(5.5, 5.5)}
	params := grapher.DefaultChartParams()
	params.GridEnabled = false
	s := grapher.Render([]grapher.Curve{c}, params, "")

	img, vp, err := Rasterize(s, ScreenProfile(), image.Pt(800, 600), 96)
	require.NoError(t, err)

	px := vp.ToPixel(grapher.Pt(5.5, 5.5))
	got := color.NRGBAModel.Convert(img.At(int(math.Floor(px.X)), int(math.Floor(px.Y)))).(color.NRGBA)
	assert.Equal(t, grapher.Red.NRGBA(), got)

	// Away from the marker the background shows.
	px = vp.ToPixel(grapher.Pt(8, 2))
	got = color.NRGBAModel.Convert(img.At(int(px.X), int(px.Y))).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, got)
}

func TestRasterizeInvalid(t *testing.T) {
	_, _, err := Rasterize(testScene(), ScreenProfile(), image.Pt(0, 100), 96)
	assert.Error(t, err)
	_, _, err = Rasterize(testScene(), ScreenProfile(), image.Pt(100, 100), 0)
	assert.Error(t, err)
}
