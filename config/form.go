package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/grapher"
)

// ParseCount parses a positive integer typed into the form field named
// field.
func ParseCount(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	// cast treats a leading zero as an octal prefix.
	if t := strings.TrimLeft(s, "0"); t != "" {
		s = t
	}
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a whole number", grapher.ErrValidation, field, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1, got %d", grapher.ErrValidation, field, n)
	}
	return n, nil
}

// ParsePositive parses a positive, finite number typed into the form field
// named field.
func ParsePositive(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := cast.ToFloat64E(s)
	if err != nil || s == "" {
		return 0, fmt.Errorf("%w: %s: %q is not a number", grapher.ErrValidation, field, s)
	}
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a positive number, got %g", grapher.ErrValidation, field, v)
	}
	return v, nil
}

// ChartForm is the chart settings form as typed.
type ChartForm struct {
	XLabel    string
	YLabel    string
	XMax      string
	YMax      string
	GridStepX string
	GridStepY string
	Grid      bool
}

// FormOf fills a form with p.
func FormOf(p grapher.ChartParams) ChartForm {
	format := func(v float64) string { return cast.ToString(v) }
	return ChartForm{
		XLabel:    p.XLabel,
		YLabel:    p.YLabel,
		XMax:      format(p.XMax),
		YMax:      format(p.YMax),
		GridStepX: format(p.GridStepX),
		GridStepY: format(p.GridStepY),
		Grid:      p.GridEnabled,
	}
}

// Params parses the form. The first invalid field is reported.
func (f ChartForm) Params() (grapher.ChartParams, error) {
	p := grapher.ChartParams{
		XLabel:      f.XLabel,
		YLabel:      f.YLabel,
		GridEnabled: f.Grid,
	}
	fields := []struct {
		name string
		src  string
		dst  *float64
	}{
		{"X max", f.XMax, &p.XMax},
		{"Y max", f.YMax, &p.YMax},
		{"X grid step", f.GridStepX, &p.GridStepX},
		{"Y grid step", f.GridStepY, &p.GridStepY},
	}
	for _, fl := range fields {
		v, err := ParsePositive(fl.name, fl.src)
		if err != nil {
			return grapher.ChartParams{}, err
		}
		*fl.dst = v
	}
	if err := p.Validate(); err != nil {
		return grapher.ChartParams{}, err
	}
	return p, nil
}
