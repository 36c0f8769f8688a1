package grapher

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for malformed user input: a non-positive
	// curve count, bad chart parameters, unknown enumeration names.
	ErrValidation = errors.New("invalid input")
	// ErrNoSelection is returned by operations that need a selected curve.
	ErrNoSelection = errors.New("no curve selected")
	ErrEmptyCurve  = errors.New("curve has no points")
	// ErrFormula wraps parse and evaluation failures of formulas.
	ErrFormula   = errors.New("formula error")
	ErrSmoothing = errors.New("smoothing failed")
	// ErrNotEnoughPoints is returned when smoothing fewer than three points.
	// It matches ErrSmoothing.
	ErrNotEnoughPoints = fmt.Errorf("%w: not enough points", ErrSmoothing)
)
