package chart

import (
	"gonum.org/v1/plot/vg"
)

// Profile holds the typographic and stroke sizes of a rendering.
type Profile struct {
	// TitleSize of zero hides the title.
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length
	LineWidth  vg.Length
	// MarkerSize is the marker diameter.
	MarkerSize vg.Length
	GridWidth  vg.Length
}

// ScreenProfile is used for the interactive view.
func ScreenProfile() Profile {
	return Profile{
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
		LegendSize: vg.Points(10),
		LineWidth:  vg.Points(1.5),
		MarkerSize: vg.Points(8),
		GridWidth:  vg.Points(0.8),
	}
}

// ExportProfile is used for exported and printed files.
func ExportProfile() Profile {
	return Profile{
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(14),
		TickSize:   vg.Points(11),
		LegendSize: vg.Points(12),
		LineWidth:  vg.Points(2),
		MarkerSize: vg.Points(8),
		GridWidth:  vg.Points(0.8),
	}
}
