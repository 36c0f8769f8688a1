package grapher

import (
	"fmt"
	"image/color"
)

type Color int

const (
	Blue Color = iota + 1
	Red
	Green
	Black
	Orange
	Purple
	Brown
	Pink
	// Cyan is only reachable through [Palette]; it is not offered as a
	// user-selectable colour.
	Cyan
)

var colorNames = [...]string{
	Blue:   "blue",
	Red:    "red",
	Green:  "green",
	Black:  "black",
	Orange: "orange",
	Purple: "purple",
	Brown:  "brown",
	Pink:   "pink",
	Cyan:   "cyan",
}

// The CSS named colours, which is what the colour names mean in every
// plotting tool users are likely to know.
var colorValues = [...]color.NRGBA{
	Blue:   {0x00, 0x00, 0xff, 0xff},
	Red:    {0xff, 0x00, 0x00, 0xff},
	Green:  {0x00, 0x80, 0x00, 0xff},
	Black:  {0x00, 0x00, 0x00, 0xff},
	Orange: {0xff, 0xa5, 0x00, 0xff},
	Purple: {0x80, 0x00, 0x80, 0xff},
	Brown:  {0xa5, 0x2a, 0x2a, 0xff},
	Pink:   {0xff, 0xc0, 0xcb, 0xff},
	Cyan:   {0x00, 0xff, 0xff, 0xff},
}

// Palette is the sequence of default colours assigned to new curves.
var Palette = []Color{Blue, Red, Green, Orange, Purple, Brown, Pink, Cyan}

// SelectableColors are the colours a user may pick for a curve.
var SelectableColors = []Color{Blue, Red, Green, Black, Orange, Purple, Brown, Pink}

func (c Color) Valid() bool {
	return c >= Blue && c <= Cyan
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// NRGBA returns the colour's value. Invalid colours are transparent.
func (c Color) NRGBA() color.NRGBA {
	if !c.Valid() {
		return color.NRGBA{}
	}
	return colorValues[c]
}

func ParseColor(s string) (Color, error) {
	for c := Blue; c <= Cyan; c++ {
		if colorNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrValidation, s)
}

type LineStyle int

const (
	Solid LineStyle = iota + 1
	Dashed
	DashDot
	Dotted
)

var lineStyleNames = [...]string{
	Solid:   "solid",
	Dashed:  "dashed",
	DashDot: "dashdot",
	Dotted:  "dotted",
}

// On/off lengths in units of line width.
var lineStyleDashes = [...][]float64{
	Solid:   nil,
	Dashed:  {3.7, 1.6},
	DashDot: {6.4, 1.6, 1, 1.6},
	Dotted:  {1, 1.65},
}

var LineStyles = []LineStyle{Solid, Dashed, DashDot, Dotted}

func (ls LineStyle) Valid() bool {
	return ls >= Solid && ls <= Dotted
}

func (ls LineStyle) String() string {
	if !ls.Valid() {
		return fmt.Sprintf("LineStyle(%d)", int(ls))
	}
	return lineStyleNames[ls]
}

// Dashes returns the alternating on/off lengths of the style for a line of
// the given width. Solid lines return nil.
func (ls LineStyle) Dashes(width float64) []float64 {
	if !ls.Valid() {
		return nil
	}
	pattern := lineStyleDashes[ls]
	if pattern == nil {
		return nil
	}
	out := make([]float64, len(pattern))
	for i, v := range pattern {
		out[i] = v * width
	}
	return out
}

func ParseLineStyle(s string) (LineStyle, error) {
	for ls := Solid; ls <= Dotted; ls++ {
		if lineStyleNames[ls] == s {
			return ls, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line style %q", ErrValidation, s)
}

type Marker int

const (
	Circle Marker = iota + 1
	Square
	Triangle
	Diamond
	Star
	Cross
)

var markerNames = [...]string{
	Circle:   "circle",
	Square:   "square",
	Triangle: "triangle",
	Diamond:  "diamond",
	Star:     "star",
	Cross:    "cross",
}

var Markers = []Marker{Circle, Square, Triangle, Diamond, Star, Cross}

func (m Marker) Valid() bool {
	return m >= Circle && m <= Cross
}

func (m Marker) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Marker(%d)", int(m))
	}
	return markerNames[m]
}

// Filled reports whether the marker's outline is filled. Only the cross is
// drawn as strokes.
func (m Marker) Filled() bool {
	return m != Cross
}

func ParseMarker(s string) (Marker, error) {
	for m := Circle; m <= Cross; m++ {
		if markerNames[m] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown marker %q", ErrValidation, s)
}

// Style holds the display attributes of a curve.
type Style struct {
	Color      Color
	LineStyle  LineStyle
	Marker     Marker
	ShowPoints bool
}

// DefaultStyle returns the style of the i-th (0-based) curve created by
// [Editor.Create]: a solid line in the i-th palette colour with visible
// circle markers.
func DefaultStyle(i int) Style {
	return Style{
		Color:      Palette[i%len(Palette)],
		LineStyle:  Solid,
		Marker:     Circle,
		ShowPoints: true,
	}
}

// Validate reports an error if any enumerated attribute is outside its set.
func (s Style) Validate() error {
	switch {
	case !s.Color.Valid():
		return fmt.Errorf("%w: invalid color %d", ErrValidation, int(s.Color))
	case !s.LineStyle.Valid():
		return fmt.Errorf("%w: invalid line style %d", ErrValidation, int(s.LineStyle))
	case !s.Marker.Valid():
		return fmt.Errorf("%w: invalid marker %d", ErrValidation, int(s.Marker))
	}
	return nil
}
