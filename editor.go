package grapher

import (
	"fmt"
	"slices"

	"github.com/sgostarter/i/l"
)

// PickRadius is the distance, in chart units, within which a pointer press
// hits a point in delete and move mode.
const PickRadius = 0.5

// Editor owns the curves being edited and the interaction state. It is not
// safe for concurrent use; all calls are expected to come from the UI event
// loop.
//
// Every operation either succeeds completely or returns an error and leaves
// the editor unchanged.
type Editor struct {
	logger l.Wrapper

	params ChartParams
	curves []Curve
	// Index into curves, or -1.
	selected int
	mode     Mode
	// Index into the selected curve's points while a move gesture is in
	// progress, or -1.
	dragging int
}

// NewEditor returns an editor without curves, in add mode. A nil logger
// discards all log output.
func NewEditor(params ChartParams, logger l.Wrapper) (*Editor, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Editor{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "Editor")),
		params:   params,
		selected: -1,
		mode:     ModeAdd,
		dragging: -1,
	}, nil
}

func (e *Editor) Params() ChartParams { return e.params }

// SetChart replaces the chart parameters.
func (e *Editor) SetChart(params ChartParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	e.params = params
	return nil
}

// Create discards all curves and creates count new ones, see [NewCurve]. The
// selection is cleared.
func (e *Editor) Create(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: number of curves must be at least 1, got %d", ErrValidation, count)
	}
	curves := make([]Curve, count)
	for i := range curves {
		curves[i] = NewCurve(i)
	}
	e.curves = curves
	e.selected = -1
	e.dragging = -1
	e.logger.WithFields(l.IntField("count", count)).Info("created curves")
	return nil
}

// Len returns the number of curves.
func (e *Editor) Len() int { return len(e.curves) }

// Curve returns a copy of the i-th curve.
func (e *Editor) Curve(i int) (Curve, bool) {
	if i < 0 || i >= len(e.curves) {
		return Curve{}, false
	}
	return e.curves[i].Clone(), true
}

// Curves returns a copy of all curves in creation order.
func (e *Editor) Curves() []Curve {
	out := make([]Curve, len(e.curves))
	for i, c := range e.curves {
		out[i] = c.Clone()
	}
	return out
}

// Summary returns the curve list entry for the i-th curve, for example
// "1. Curve 1 (3 points)". It reports false if there is no such curve.
func (e *Editor) Summary(i int) (string, bool) {
	if i < 0 || i >= len(e.curves) {
		return "", false
	}
	c := e.curves[i]
	noun := "points"
	if len(c.Points) == 1 {
		noun = "point"
	}
	return fmt.Sprintf("%d. %s (%d %s)", i+1, c.Label, len(c.Points), noun), true
}

// Select makes the i-th curve the target of subsequent edits.
func (e *Editor) Select(i int) error {
	if i < 0 || i >= len(e.curves) {
		return fmt.Errorf("%w: curve index %d out of range [0, %d)", ErrValidation, i, len(e.curves))
	}
	if i != e.selected {
		e.dragging = -1
	}
	e.selected = i
	return nil
}

func (e *Editor) Deselect() {
	e.selected = -1
	e.dragging = -1
}

// Selected returns the index of the selected curve.
func (e *Editor) Selected() (int, bool) {
	return e.selected, e.selected >= 0
}

func (e *Editor) current() *Curve {
	if e.selected < 0 {
		return nil
	}
	return &e.curves[e.selected]
}

// ApplyCurveStyle overwrites the label and style of the selected curve.
func (e *Editor) ApplyCurveStyle(label string, style Style) error {
	c := e.current()
	if c == nil {
		return ErrNoSelection
	}
	if err := style.Validate(); err != nil {
		return err
	}
	c.Label = label
	c.Style = style
	return nil
}

func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches the interaction mode. Switching away from move mode ends
// any drag in progress.
func (e *Editor) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: invalid mode %d", ErrValidation, int(m))
	}
	if m != e.mode {
		e.dragging = -1
		e.logger.WithFields(l.StringField("mode", m.String())).Debug("mode changed")
	}
	e.mode = m
	return nil
}

// Dragging returns the index of the point being moved, if a move gesture is
// in progress.
func (e *Editor) Dragging() (int, bool) {
	return e.dragging, e.dragging >= 0
}

// PointerDown handles a press at pt, in chart coordinates. It reports
// whether the curves changed.
//
// Without a selected curve the press is ignored.
func (e *Editor) PointerDown(pt Point) bool {
	c := e.current()
	if c == nil {
		e.logger.Warn("pointer press ignored: no curve selected")
		return false
	}
	switch e.mode {
	case ModeAdd:
		c.Points = append(c.Points, pt)
		return true
	case ModeDelete:
		idx, dist := Nearest(c.Points, pt)
		if idx < 0 || dist >= PickRadius {
			return false
		}
		c.Points = slices.Delete(c.Points, idx, idx+1)
		return true
	case ModeMove:
		// Every press starts a new gesture, hit or miss.
		e.dragging = -1
		idx, dist := Nearest(c.Points, pt)
		if idx >= 0 && dist < PickRadius {
			e.dragging = idx
		}
		return false
	default:
		return false
	}
}

// PointerMove moves the dragged point to pt, if a move gesture is in
// progress. The point is not clamped to the chart bounds. It reports whether
// the curves changed.
func (e *Editor) PointerMove(pt Point) bool {
	c := e.current()
	if e.mode != ModeMove || c == nil || e.dragging < 0 || e.dragging >= len(c.Points) {
		return false
	}
	c.Points[e.dragging] = pt
	return true
}

// PointerUp ends any gesture in progress.
func (e *Editor) PointerUp() {
	e.dragging = -1
}

// Smooth replaces the selected curve's points with a resampled spline fit,
// see [SmoothPoints].
func (e *Editor) Smooth() error {
	c := e.current()
	if c == nil {
		return ErrNoSelection
	}
	pts, err := SmoothPoints(c.Points)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.StringField("curve", c.Label)).Error("smoothing failed")
		return err
	}
	c.Points = pts
	e.dragging = -1
	return nil
}

// BuildFromFormula replaces the selected curve's points with n samples of
// the formula src over [0, XMax], see [SampleFormula].
func (e *Editor) BuildFromFormula(src string, n int) error {
	c := e.current()
	if c == nil {
		return ErrNoSelection
	}
	pts, err := SampleFormula(src, e.params.XMax, n)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.StringField("formula", src)).Error("formula failed")
		return err
	}
	c.Points = pts
	e.dragging = -1
	return nil
}

// Clear removes all points of the selected curve and returns how many there
// were. Clearing an empty curve fails with [ErrEmptyCurve].
func (e *Editor) Clear() (int, error) {
	c := e.current()
	if c == nil {
		return 0, ErrNoSelection
	}
	n := len(c.Points)
	if n == 0 {
		return 0, ErrEmptyCurve
	}
	c.Points = nil
	e.dragging = -1
	return n, nil
}

// Render returns the scene for the current state, see [Render].
func (e *Editor) Render(title string) Scene {
	return Render(e.curves, e.params, title)
}
