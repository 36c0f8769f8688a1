package main

import (
	"errors"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"honnef.co/go/grapher"
)

// modal is a message box drawn over the window. While it is shown, the rest
// of the window receives no input apart from the release that ends a drag.
type modal struct {
	title   string
	msg     string
	confirm func()

	ok     widget.Clickable
	cancel widget.Clickable
}

func (m *modal) active() bool { return m.msg != "" }

func (m *modal) Info(msg string) {
	*m = modal{title: "Information", msg: msg}
}

func (m *modal) Error(err error) {
	title := "Error"
	switch {
	case errors.Is(err, grapher.ErrValidation), errors.Is(err, grapher.ErrNoSelection):
		title = "Invalid input"
	case errors.Is(err, grapher.ErrFormula):
		title = "Formula error"
	}
	*m = modal{title: title, msg: err.Error()}
}

// Confirm asks a yes/no question and calls fn if it is answered yes.
func (m *modal) Confirm(msg string, fn func()) {
	*m = modal{title: "Confirm", msg: msg, confirm: fn}
}

func (m *modal) Layout(gtx C, th *material.Theme) D {
	if !m.active() {
		return D{}
	}
	if m.ok.Clicked(gtx) {
		fn := m.confirm
		*m = modal{}
		if fn != nil {
			// fn may open a new message.
			fn()
		}
		return D{}
	}
	if m.cancel.Clicked(gtx) {
		*m = modal{}
		return D{}
	}

	size := gtx.Constraints.Max
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, m)
	paint.Fill(gtx.Ops, color.NRGBA{A: 0x60})
	area.Pop()

	return layout.Center.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(420))
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx C) D {
				rr := gtx.Dp(6)
				defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Push(gtx.Ops).Pop()
				paint.Fill(gtx.Ops, th.Palette.Bg)
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx C) D {
				return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(material.H6(th, m.title).Layout),
						layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
						layout.Rigid(material.Body1(th, m.msg).Layout),
						layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
						layout.Rigid(m.layoutButtons(th)),
					)
				})
			}),
		)
	})
}

func (m *modal) layoutButtons(th *material.Theme) layout.Widget {
	return func(gtx C) D {
		if m.confirm == nil {
			return material.Button(th, &m.ok, "OK").Layout(gtx)
		}
		return layout.Flex{}.Layout(gtx,
			layout.Rigid(material.Button(th, &m.ok, "Yes").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Button(th, &m.cancel, "No").Layout),
		)
	}
}
