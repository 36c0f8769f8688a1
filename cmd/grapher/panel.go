package main

import (
	"fmt"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"honnef.co/go/grapher"
	"honnef.co/go/grapher/chart"
)

const panelWidth = 330

var modeLabels = map[grapher.Mode]string{
	grapher.ModeAdd:    "Add points",
	grapher.ModeDelete: "Delete points",
	grapher.ModeMove:   "Move points",
}

// layoutPanel lays out the scrollable control panel on the left.
func (a *App) layoutPanel(gtx C) D {
	w := gtx.Dp(panelWidth)
	gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w

	th := a.theme
	rows := []layout.Widget{
		a.heading("Chart"),
		a.field("Curves", &a.count),
		a.button(&a.create, "Create curves"),
		a.field("X label", &a.chartForm.xLabel),
		a.field("Y label", &a.chartForm.yLabel),
		a.field("X max", &a.chartForm.xMax),
		a.field("Y max", &a.chartForm.yMax),
		a.field("X grid step", &a.chartForm.stepX),
		a.field("Y grid step", &a.chartForm.stepY),
		material.CheckBox(th, &a.grid, "Show grid").Layout,
		a.button(&a.applyChart, "Apply settings"),

		a.heading("Curves"),
		a.layoutCurveList,

		a.heading("Curve settings"),
		a.field("Label", &a.label),
		a.button(&a.color, "Colour: "+a.style.Color.String()),
		a.button(&a.lineStyle, "Line style: "+a.style.LineStyle.String()),
		a.button(&a.marker, "Marker: "+a.style.Marker.String()),
		material.CheckBox(th, &a.showPoints, "Show points").Layout,
		a.button(&a.applyCurve, "Apply to curve"),

		a.heading("Mode"),
	}
	for _, m := range grapher.Modes {
		rows = append(rows, material.RadioButton(th, &a.mode, m.String(), modeLabels[m]).Layout)
	}
	rows = append(rows,
		a.button(&a.clear, "Clear curve"),
		a.button(&a.smooth, "Smooth curve"),

		a.heading("Formula"),
		a.field("y =", &a.formula),
		a.field("Points", &a.points),
		a.button(&a.build, "Build from formula"),

		a.heading("Output"),
	)
	for i, f := range chart.Formats {
		rows = append(rows, a.button(&a.export[i], "Export "+strings.ToUpper(f.String())))
	}
	rows = append(rows, a.button(&a.print, "Print"))

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return material.List(th, &a.panel).Layout(gtx, len(rows), func(gtx C, i int) D {
			return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, rows[i])
		})
	})
}

func (a *App) heading(s string) layout.Widget {
	return func(gtx C) D {
		return layout.Inset{Top: unit.Dp(10), Bottom: unit.Dp(2)}.Layout(gtx, material.Subtitle1(a.theme, s).Layout)
	}
}

func (a *App) field(label string, ed *widget.Editor) layout.Widget {
	return func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(90)
				return material.Body2(a.theme, label).Layout(gtx)
			}),
			layout.Flexed(1, func(gtx C) D {
				return widget.Border{
					Color:        a.theme.Palette.ContrastBg,
					CornerRadius: unit.Dp(2),
					Width:        unit.Dp(1),
				}.Layout(gtx, func(gtx C) D {
					return layout.UniformInset(unit.Dp(4)).Layout(gtx, material.Editor(a.theme, ed, "").Layout)
				})
			}),
		)
	}
}

func (a *App) button(c *widget.Clickable, label string) layout.Widget {
	return func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return material.Button(a.theme, c, label).Layout(gtx)
	}
}

func (a *App) layoutCurveList(gtx C) D {
	n := a.editor.Len()
	if n == 0 {
		return material.Body2(a.theme, "No curves yet.").Layout(gtx)
	}
	sel, _ := a.editor.Selected()
	gtx.Constraints.Max.Y = gtx.Dp(160)
	return material.List(a.theme, &a.curveList).Layout(gtx, n, func(gtx C, i int) D {
		sum, _ := a.editor.Summary(i)
		lbl := material.Body1(a.theme, sum)
		if i == sel {
			lbl.Font.Weight = font.Bold
			lbl.Color = a.theme.Palette.ContrastBg
		}
		return material.Clickable(gtx, &a.curveClicks[i], func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(3)).Layout(gtx, lbl.Layout)
		})
	})
}

func formatPoint(pt grapher.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", pt.X, pt.Y)
}
