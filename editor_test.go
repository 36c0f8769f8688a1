package grapher

import (
	"errors"
	"testing"
)

func newEditor(t *testing.T, curves int) *Editor {
	t.Helper()
	e, err := NewEditor(DefaultChartParams(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if curves > 0 {
		if err := e.Create(curves); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

// editorWith returns an editor with one selected curve holding pts.
func editorWith(t *testing.T, pts ...Point) *Editor {
	t.Helper()
	e := newEditor(t, 1)
	if err := e.Select(0); err != nil {
		t.Fatal(err)
	}
	for _, pt := range pts {
		e.PointerDown(pt)
	}
	return e
}

func points(t *testing.T, e *Editor) []Point {
	t.Helper()
	i, ok := e.Selected()
	if !ok {
		t.Fatal("no curve selected")
	}
	c, _ := e.Curve(i)
	return c.Points
}

func TestCreate(t *testing.T) {
	for _, n := range []int{1, 2, 9, 17} {
		e := newEditor(t, n)
		curves := e.Curves()
		if len(curves) != n {
			t.Fatalf("Create(%d): got %d curves", n, len(curves))
		}
		for i, c := range curves {
			if len(c.Points) != 0 {
				t.Errorf("Create(%d): curve %d has %d points", n, i, len(c.Points))
			}
			diff(t, NewCurve(i), c)
		}
	}

	e := newEditor(t, 0)
	if got := e.Curves(); len(got) != 0 {
		t.Errorf("new editor has %d curves", len(got))
	}
	c := NewCurve(2)
	if c.Label != "Curve 3" || c.Style.Color != Green {
		t.Errorf("got %+v", c)
	}
}

func TestCreateInvalid(t *testing.T) {
	e := editorWith(t, Pt(1, 1))
	for _, n := range []int{0, -3} {
		if err := e.Create(n); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%d): got %v, want ErrValidation", n, err)
		}
	}
	diff(t, []Point{Pt(1, 1)}, points(t, e))
}

func TestCreateReplacesCurves(t *testing.T) {
	e := newEditor(t, 3)
	if err := e.Select(2); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(Pt(1, 1))
	if err := e.Create(1); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.Selected(); ok {
		t.Error("selection survived Create")
	}
	diff(t, []Curve{NewCurve(0)}, e.Curves())
}

func TestSelect(t *testing.T) {
	e := newEditor(t, 2)
	if _, ok := e.Selected(); ok {
		t.Error("fresh curves must not be selected")
	}
	before := e.Curves()
	if err := e.Select(1); err != nil {
		t.Fatal(err)
	}
	if i, ok := e.Selected(); !ok || i != 1 {
		t.Errorf("Selected() = %d, %t", i, ok)
	}
	diff(t, before, e.Curves())

	for _, i := range []int{-1, 2} {
		if err := e.Select(i); !errors.Is(err, ErrValidation) {
			t.Errorf("Select(%d): got %v, want ErrValidation", i, err)
		}
	}
	if i, _ := e.Selected(); i != 1 {
		t.Errorf("failed Select changed the selection to %d", i)
	}

	e.Deselect()
	if _, ok := e.Selected(); ok {
		t.Error("Deselect kept the selection")
	}
}

func TestApplyCurveStyle(t *testing.T) {
	e := newEditor(t, 2)
	style := Style{Color: Black, LineStyle: DashDot, Marker: Star, ShowPoints: false}
	if err := e.ApplyCurveStyle("speed", style); !errors.Is(err, ErrNoSelection) {
		t.Errorf("got %v, want ErrNoSelection", err)
	}

	e.Select(1)
	if err := e.ApplyCurveStyle("speed", style); err != nil {
		t.Fatal(err)
	}
	c, _ := e.Curve(1)
	diff(t, Curve{Label: "speed", Style: style}, c)

	if err := e.ApplyCurveStyle("bad", Style{}); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	c, _ = e.Curve(1)
	diff(t, "speed", c.Label)

	c, _ = e.Curve(0)
	diff(t, NewCurve(0), c)
}

func TestPointerWithoutSelection(t *testing.T) {
	e := newEditor(t, 2)
	for _, m := range Modes {
		e.SetMode(m)
		if e.PointerDown(Pt(1, 1)) {
			t.Errorf("%s: PointerDown reported a change without a selection", m)
		}
		if e.PointerMove(Pt(2, 2)) {
			t.Errorf("%s: PointerMove reported a change without a selection", m)
		}
		e.PointerUp()
	}
	diff(t, []Curve{NewCurve(0), NewCurve(1)}, e.Curves())
}

func TestAddMode(t *testing.T) {
	e := editorWith(t)
	pts := []Point{Pt(1, 1), Pt(2, 4), Pt(3, 9), Pt(3, 9), Pt(-5, 42)}
	for i, pt := range pts {
		if !e.PointerDown(pt) {
			t.Errorf("PointerDown(%s) reported no change", pt)
		}
		if n := len(points(t, e)); n != i+1 {
			t.Fatalf("after %d presses, got %d points", i+1, n)
		}
	}
	diff(t, pts, points(t, e))
}

func TestDeleteMode(t *testing.T) {
	e := editorWith(t, Pt(0, 0), Pt(5, 5), Pt(1, 1))
	e.SetMode(ModeDelete)

	if !e.PointerDown(Pt(5.1, 4.9)) {
		t.Error("press near (5, 5) did not delete")
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, points(t, e))

	// Nothing within the pick radius.
	if e.PointerDown(Pt(3, 3)) {
		t.Error("press far from all points deleted one")
	}
	if e.PointerDown(Pt(1.5, 1)) {
		t.Error("press exactly at the pick radius deleted a point")
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, points(t, e))

	// At most one point per press, the first of several at equal distance.
	e = editorWith(t, Pt(1, 1), Pt(1, 1), Pt(1.2, 1))
	e.SetMode(ModeDelete)
	e.PointerDown(Pt(1.05, 1))
	diff(t, []Point{Pt(1, 1), Pt(1.2, 1)}, points(t, e))

	e = editorWith(t)
	e.SetMode(ModeDelete)
	if e.PointerDown(Pt(0, 0)) {
		t.Error("delete on an empty curve reported a change")
	}
}

func TestMoveMode(t *testing.T) {
	e := editorWith(t, Pt(0, 0), Pt(5, 5), Pt(1, 1))
	e.SetMode(ModeMove)

	if e.PointerDown(Pt(4.8, 5)) {
		t.Error("grabbing a point must not change the curve")
	}
	if i, ok := e.Dragging(); !ok || i != 1 {
		t.Fatalf("Dragging() = %d, %t; want 1, true", i, ok)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, 5), Pt(1, 1)}, points(t, e))

	// No clamping to the chart bounds.
	for _, pt := range []Point{Pt(6, 6), Pt(20, -3)} {
		if !e.PointerMove(pt) {
			t.Errorf("PointerMove(%s) reported no change", pt)
		}
	}
	diff(t, []Point{Pt(0, 0), Pt(20, -3), Pt(1, 1)}, points(t, e))

	e.PointerUp()
	if _, ok := e.Dragging(); ok {
		t.Error("PointerUp did not end the drag")
	}
	if e.PointerMove(Pt(0, 0)) {
		t.Error("PointerMove after PointerUp changed the curve")
	}

	// A miss starts no drag.
	e.PointerDown(Pt(10, 10))
	if _, ok := e.Dragging(); ok {
		t.Error("press far from all points started a drag")
	}
	e.PointerUp()
}

func TestMoveModeMissEndsDrag(t *testing.T) {
	e := editorWith(t, Pt(0, 0), Pt(5, 5))
	e.SetMode(ModeMove)

	// The release of this grab is never delivered.
	e.PointerDown(Pt(5, 5))
	if _, ok := e.Dragging(); !ok {
		t.Fatal("no drag started")
	}
	e.PointerDown(Pt(9, 1))
	if i, ok := e.Dragging(); ok {
		t.Errorf("missed press kept dragging point %d", i)
	}
	if e.PointerMove(Pt(2, 8)) {
		t.Error("PointerMove after a missed press changed the curve")
	}
	diff(t, []Point{Pt(0, 0), Pt(5, 5)}, points(t, e))
}

func TestModeTransitions(t *testing.T) {
	e := editorWith(t, Pt(1, 1))
	if m := e.Mode(); m != ModeAdd {
		t.Errorf("initial mode %s, want add", m)
	}
	e.SetMode(ModeMove)
	e.PointerDown(Pt(1, 1))
	if _, ok := e.Dragging(); !ok {
		t.Fatal("no drag started")
	}
	e.SetMode(ModeAdd)
	if _, ok := e.Dragging(); ok {
		t.Error("leaving move mode kept the drag")
	}
	if e.PointerMove(Pt(3, 3)) {
		t.Error("PointerMove in add mode changed the curve")
	}
	if err := e.SetMode(Mode(7)); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	if m := e.Mode(); m != ModeAdd {
		t.Errorf("invalid SetMode changed mode to %s", m)
	}

	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
}

func TestSmooth(t *testing.T) {
	e := newEditor(t, 1)
	if err := e.Smooth(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("got %v, want ErrNoSelection", err)
	}

	e = editorWith(t, Pt(0, 0), Pt(1, 1))
	if err := e.Smooth(); !errors.Is(err, ErrNotEnoughPoints) || !errors.Is(err, ErrSmoothing) {
		t.Errorf("got %v, want ErrNotEnoughPoints", err)
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, points(t, e))

	e = editorWith(t, Pt(3, 1), Pt(0, 0), Pt(2, 3), Pt(1, 2))
	if err := e.Smooth(); err != nil {
		t.Fatal(err)
	}
	pts := points(t, e)
	if len(pts) != SmoothSamples {
		t.Fatalf("got %d points, want %d", len(pts), SmoothSamples)
	}
	diff(t, Pt(0, 0), pts[0], approx)
	diff(t, Pt(3, 1), pts[len(pts)-1], approx)

	e = editorWith(t, Pt(1, 0), Pt(1, 1), Pt(2, 3))
	if err := e.Smooth(); !errors.Is(err, ErrSmoothing) {
		t.Errorf("duplicate x: got %v, want ErrSmoothing", err)
	}
	diff(t, []Point{Pt(1, 0), Pt(1, 1), Pt(2, 3)}, points(t, e))
}

func TestBuildFromFormula(t *testing.T) {
	e := newEditor(t, 1)
	if err := e.BuildFromFormula("x", 10); !errors.Is(err, ErrNoSelection) {
		t.Errorf("got %v, want ErrNoSelection", err)
	}

	e = editorWith(t, Pt(7, 7))
	if err := e.BuildFromFormula("x**2", 50); err != nil {
		t.Fatal(err)
	}
	pts := points(t, e)
	if len(pts) != 50 {
		t.Fatalf("got %d points, want 50", len(pts))
	}
	for i, pt := range pts {
		x := 10 * float64(i) / 49
		diff(t, Pt(x, x*x), pt, approx)
	}

	before := points(t, e)
	for _, tt := range []struct {
		src  string
		n    int
		want error
	}{
		{"bogus_name", 10, ErrFormula},
		{"1 / x", 10, ErrFormula},
		{"log(x - 20)", 10, ErrFormula},
		{"x", 1, ErrValidation},
	} {
		if err := e.BuildFromFormula(tt.src, tt.n); !errors.Is(err, tt.want) {
			t.Errorf("BuildFromFormula(%q, %d): got %v, want %v", tt.src, tt.n, err, tt.want)
		}
	}
	diff(t, before, points(t, e))
}

func TestClear(t *testing.T) {
	e := newEditor(t, 1)
	if _, err := e.Clear(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("got %v, want ErrNoSelection", err)
	}
	e = editorWith(t, Pt(1, 1), Pt(2, 2))
	n, err := e.Clear()
	if err != nil || n != 2 {
		t.Errorf("Clear() = %d, %v; want 2, nil", n, err)
	}
	if got := points(t, e); len(got) != 0 {
		t.Errorf("got %d points after Clear", len(got))
	}
	if _, err := e.Clear(); !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("got %v, want ErrEmptyCurve", err)
	}
}

func TestSummary(t *testing.T) {
	e := editorWith(t, Pt(1, 1))
	sum, ok := e.Summary(0)
	diff(t, "1. Curve 1 (1 point)", sum)
	diff(t, true, ok)
	e.PointerDown(Pt(2, 2))
	sum, _ = e.Summary(0)
	diff(t, "1. Curve 1 (2 points)", sum)

	for _, i := range []int{-1, 1} {
		if sum, ok := e.Summary(i); ok || sum != "" {
			t.Errorf("Summary(%d) = %q, %t; want \"\", false", i, sum, ok)
		}
	}
}

func TestSetChart(t *testing.T) {
	e := newEditor(t, 0)
	p := DefaultChartParams()
	p.XMax = 20
	if err := e.SetChart(p); err != nil {
		t.Fatal(err)
	}
	diff(t, p, e.Params())

	bad := p
	bad.GridStepY = 0
	if err := e.SetChart(bad); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	diff(t, p, e.Params())

	if _, err := NewEditor(bad, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("NewEditor: got %v, want ErrValidation", err)
	}
}

func TestCurvesAreCopies(t *testing.T) {
	e := editorWith(t, Pt(1, 1))
	c, _ := e.Curve(0)
	c.Points[0] = Pt(9, 9)
	all := e.Curves()
	all[0].Points[0] = Pt(8, 8)
	diff(t, []Point{Pt(1, 1)}, points(t, e))
}
