package main

import (
	"fmt"
	"image"

	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/sgostarter/i/l"

	"honnef.co/go/grapher"
	"honnef.co/go/grapher/chart"
)

const tableWidth = 230

// plotView is the rasterised chart and the input area over it.
type plotView struct {
	img  paint.ImageOp
	vp   chart.Viewport
	size image.Point
	dpi  int
	// dirty forces a new raster on the next frame.
	dirty bool
	// Last pointer position inside the plotting area, in chart coordinates.
	hover    grapher.Point
	hovering bool
}

func (a *App) layoutMain(gtx C) D {
	return layout.Flex{}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Flexed(1, a.layoutPlot),
				layout.Rigid(a.layoutStatus),
			)
		}),
		layout.Rigid(a.layoutTable),
	)
}

func (a *App) layoutPlot(gtx C) D {
	v := &a.view
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Leave,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			a.routePointer(e)
		}
	}

	size := gtx.Constraints.Max
	dpi := int(96 * gtx.Metric.PxPerDp)
	if size.X <= 0 || size.Y <= 0 {
		return D{Size: size}
	}
	if v.dirty || size != v.size || dpi != v.dpi {
		img, vp, err := chart.Rasterize(a.editor.Render(""), chart.ScreenProfile(), size, dpi)
		if err != nil {
			a.logger.WithFields(l.ErrorField(err)).Error("rendering chart")
		} else {
			v.img = paint.NewImageOp(img)
			v.vp = vp
		}
		v.size, v.dpi, v.dirty = size, dpi, false
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, v)
	v.img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: size}
}

// routePointer passes e on unless a message is shown. The end of a gesture
// always reaches the editor, so a message that opens mid-drag does not leave
// a point attached to the pointer.
func (a *App) routePointer(e pointer.Event) {
	switch {
	case !a.modal.active():
		a.handlePointer(e)
	case e.Kind == pointer.Release, e.Kind == pointer.Cancel:
		a.editor.PointerUp()
	}
}

// handlePointer feeds pointer input to the editor. Presses outside the
// plotting area are ignored; drags and releases are passed on wherever they
// happen so that a point can be dragged off the chart.
func (a *App) handlePointer(e pointer.Event) {
	v := &a.view
	px := grapher.Pt(float64(e.Position.X), float64(e.Position.Y))
	pt := v.vp.ToChart(px)
	inside := v.vp.Contains(px)

	changed := false
	switch e.Kind {
	case pointer.Press:
		if !inside || e.Buttons != pointer.ButtonPrimary {
			return
		}
		if _, ok := a.editor.Selected(); !ok {
			a.modal.Info("Select a curve first.")
			return
		}
		changed = a.editor.PointerDown(pt)
	case pointer.Drag:
		changed = a.editor.PointerMove(pt)
	case pointer.Release, pointer.Cancel:
		a.editor.PointerUp()
	case pointer.Leave:
		inside = false
	}
	v.hover, v.hovering = pt, inside
	if changed {
		a.changed()
	}
}

func (a *App) layoutStatus(gtx C) D {
	mode := modeLabels[a.editor.Mode()]
	status := mode
	if i, ok := a.editor.Selected(); ok {
		if sum, ok := a.editor.Summary(i); ok {
			status = fmt.Sprintf("%s | %s", sum, mode)
		}
	}
	if i, ok := a.editor.Dragging(); ok {
		status += fmt.Sprintf(" | moving point %d", i+1)
	}
	if a.view.hovering {
		status += " | " + formatPoint(a.view.hover)
	}
	if a.busy {
		status += " | working…"
	}
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, material.Caption(a.theme, status).Layout)
}

func (a *App) layoutTable(gtx C) D {
	w := gtx.Dp(tableWidth)
	gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w
	th := a.theme

	var rows []grapher.TableRow
	title := "Coordinates"
	if i, ok := a.editor.Selected(); ok {
		c, _ := a.editor.Curve(i)
		rows = c.Table()
		title = c.Label
	}

	row := func(cells ...string) layout.Widget {
		return func(gtx C) D {
			children := make([]layout.FlexChild, len(cells))
			for i, s := range cells {
				children[i] = layout.Flexed(1, material.Body2(th, s).Layout)
			}
			return layout.Flex{}.Layout(gtx, children...)
		}
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				h := material.Subtitle1(th, title)
				h.Font.Weight = font.Bold
				return h.Layout(gtx)
			}),
			layout.Rigid(row("#", "X", "Y")),
			layout.Flexed(1, func(gtx C) D {
				return material.List(th, &a.table).Layout(gtx, len(rows), func(gtx C, i int) D {
					r := rows[i]
					return row(fmt.Sprint(r.Index), r.X, r.Y)(gtx)
				})
			}),
		)
	})
}
