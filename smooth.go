package grapher

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// SmoothSamples is the number of points a smoothed curve consists of.
const SmoothSamples = 100

// SmoothPoints fits an interpolating cubic spline through pts, sorted by x,
// and samples it at [SmoothSamples] equally spaced x values spanning the
// original x range. pts is not modified.
//
// Four or more points use a not-a-knot cubic spline. Three points, too few
// for the not-a-knot conditions, use a natural cubic spline. Fewer than three
// points fail with [ErrNotEnoughPoints]; repeated x values cannot be
// interpolated and fail with [ErrSmoothing].
func SmoothPoints(pts []Point) ([]Point, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: need at least 3, have %d", ErrNotEnoughPoints, len(pts))
	}
	sorted := SortByX(pts)
	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, pt := range sorted {
		if !pt.IsFinite() {
			return nil, fmt.Errorf("%w: point %s is not finite", ErrSmoothing, pt)
		}
		if i > 0 && pt.X == xs[i-1] {
			return nil, fmt.Errorf("%w: several points share x = %g", ErrSmoothing, pt.X)
		}
		xs[i], ys[i] = pt.X, pt.Y
	}

	var spline interp.FittablePredictor
	if len(pts) == 3 {
		spline = &interp.NaturalCubic{}
	} else {
		spline = &interp.NotAKnotCubic{}
	}
	if err := spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSmoothing, err)
	}

	sx := floats.Span(make([]float64, SmoothSamples), xs[0], xs[len(xs)-1])
	out := make([]Point, len(sx))
	for i, x := range sx {
		y := spline.Predict(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: spline is not finite at x = %g", ErrSmoothing, x)
		}
		out[i] = Pt(x, y)
	}
	return out, nil
}
