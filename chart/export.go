package chart

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"honnef.co/go/grapher"
)

const mmPerInch = 25.4

// Options controls how a scene is written to a file.
type Options struct {
	Backend Backend
	Format  Format
	// Size is the page size in inches.
	Size grapher.Size
	// DPI is the resolution of PNG output.
	DPI     int
	Profile Profile
}

// ExportOptions returns the options for a 12×8 inch, 300 DPI file.
func ExportOptions(f Format) Options {
	return Options{
		Backend: Gonum,
		Format:  f,
		Size:    grapher.Sz(12, 8),
		DPI:     300,
		Profile: ExportProfile(),
	}
}

// PrintOptions returns the options for a printed 11×8.5 inch page.
func PrintOptions() Options {
	o := ExportOptions(PNG)
	o.Size = grapher.Sz(11, 8.5)
	return o
}

func (o Options) validate() error {
	if !o.Format.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, o.Format)
	}
	if o.Size.IsEmpty() || o.Size.IsNaN() || o.Size.IsInf() {
		return fmt.Errorf("%w: page size %s", grapher.ErrValidation, o.Size)
	}
	if o.Format == PNG && o.DPI <= 0 {
		return fmt.Errorf("%w: resolution %d dpi", grapher.ErrValidation, o.DPI)
	}
	return nil
}

// Export writes s to w.
func Export(w io.Writer, s grapher.Scene, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	p, err := Build(s, opts.Profile)
	if err != nil {
		return err
	}
	switch opts.Backend {
	case Gonum:
		return exportGonum(w, p, opts)
	case Canvas:
		return exportCanvas(w, p, opts)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}

type vgWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

func exportGonum(w io.Writer, p *plot.Plot, opts Options) error {
	width := vg.Length(opts.Size.Width) * vg.Inch
	height := vg.Length(opts.Size.Height) * vg.Inch

	var c vgWriter
	switch opts.Format {
	case PNG:
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(opts.DPI))}
	case SVG:
		c = vgsvg.New(width, height)
	case PDF:
		// vgpdf registers every face under an empty style and then asks
		// for "B" when drawing bold text, which it cannot find.
		p.Title.TextStyle.Font.Weight = xfont.WeightNormal
		c = vgpdf.New(width, height)
	}
	p.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

func exportCanvas(w io.Writer, p *plot.Plot, opts Options) error {
	c := canvas.New(opts.Size.Width*mmPerInch, opts.Size.Height*mmPerInch)
	p.Draw(renderers.NewGonumPlot(c))
	switch opts.Format {
	case PNG:
		return renderers.PNG(canvas.DPI(float64(opts.DPI)))(w, c)
	case SVG:
		return renderers.SVG()(w, c)
	case PDF:
		return renderers.PDF()(w, c)
	}
	return nil
}
