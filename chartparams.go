package grapher

import (
	"fmt"
	"math"
)

// maxTicks bounds the number of grid lines per axis. A grid step that is tiny
// relative to the axis maximum is almost certainly a typo, and honouring it
// would stall rendering.
const maxTicks = 1000

// ChartParams are the global chart settings shared by every curve.
type ChartParams struct {
	XLabel      string
	YLabel      string
	XMax        float64
	YMax        float64
	GridStepX   float64
	GridStepY   float64
	GridEnabled bool
}

// DefaultChartParams returns a 10×10 chart with unit grid steps.
func DefaultChartParams() ChartParams {
	return ChartParams{
		XLabel:      "X",
		YLabel:      "Y",
		XMax:        10,
		YMax:        10,
		GridStepX:   1,
		GridStepY:   1,
		GridEnabled: true,
	}
}

func (p ChartParams) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"x maximum", p.XMax},
		{"y maximum", p.YMax},
		{"x grid step", p.GridStepX},
		{"y grid step", p.GridStepY},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be a positive number, got %g", ErrValidation, f.name, f.v)
		}
	}
	if p.XMax/p.GridStepX > maxTicks {
		return fmt.Errorf("%w: x grid step %g is too small for maximum %g", ErrValidation, p.GridStepX, p.XMax)
	}
	if p.YMax/p.GridStepY > maxTicks {
		return fmt.Errorf("%w: y grid step %g is too small for maximum %g", ErrValidation, p.GridStepY, p.YMax)
	}
	return nil
}

// Bounds returns the visible chart area, [0, XMax]×[0, YMax].
func (p ChartParams) Bounds() Rect {
	return Rect{0, 0, p.XMax, p.YMax}
}

// Ticks returns the multiples of step in [0, limit]. The last tick tolerates
// accumulated rounding error, so Ticks(1, 0.1) ends at 1.
func Ticks(limit, step float64) []float64 {
	if !(step > 0) || !(limit >= 0) || limit/step > maxTicks {
		return nil
	}
	n := int(math.Floor(limit/step + 1e-9))
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
