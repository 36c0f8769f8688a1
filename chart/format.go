package chart

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an export file format.
type Format int

const (
	PNG Format = iota + 1
	SVG
	PDF
)

// Formats lists the export formats in the order they are offered.
var Formats = []Format{PNG, PDF, SVG}

var formatNames = [...]string{
	PNG: "png",
	SVG: "svg",
	PDF: "pdf",
}

func (f Format) Valid() bool {
	return f >= PNG && f <= PDF
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the file name extension, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses a format name such as "svg". Case is ignored, as is a
// leading dot.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	for _, f := range Formats {
		if formatNames[f] == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf returns the format implied by the extension of name.
func FormatOf(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

// WithExt returns name with the format's extension appended, unless name
// already ends in it.
func (f Format) WithExt(name string) string {
	if strings.EqualFold(filepath.Ext(name), f.Ext()) {
		return name
	}
	return name + f.Ext()
}

// Backend selects the library that renders exported files.
type Backend int

const (
	// Gonum renders with gonum/plot's own vg canvases.
	Gonum Backend = iota + 1
	// Canvas renders the same plot through tdewolff/canvas.
	Canvas
)

func (b Backend) String() string {
	switch b {
	case Gonum:
		return "gonum"
	case Canvas:
		return "canvas"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "gonum", "":
		return Gonum, nil
	case "canvas":
		return Canvas, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}
