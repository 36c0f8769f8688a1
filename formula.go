package grapher

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"honnef.co/go/grapher/expr"
)

// SampleFormula evaluates the formula src at n equally spaced x values over
// [0, xMax] and returns the resulting points. A formula that does not
// mention x produces a flat line.
//
// Parse and evaluation failures are returned wrapped in [ErrFormula]; the
// underlying *[expr.SyntaxError] or *[expr.EvalError] remains reachable
// with errors.As.
func SampleFormula(src string, xMax float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: number of points must be at least 2, got %d", ErrValidation, n)
	}
	if !(xMax > 0) {
		return nil, fmt.Errorf("%w: x maximum must be positive, got %g", ErrValidation, xMax)
	}
	e, err := expr.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormula, err)
	}
	xs := floats.Span(make([]float64, n), 0, xMax)
	ys, err := expr.Eval(e, xs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormula, err)
	}
	pts := make([]Point, n)
	for i := range xs {
		pts[i] = Pt(xs[i], ys[i])
	}
	return pts, nil
}
