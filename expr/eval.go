package expr

// Constant reports whether e does not depend on x.
func Constant(e Expr) bool {
	return !e.usesX()
}

// Eval evaluates e for every value in xs. A constant expression is evaluated
// once and broadcast, so a constant formula yields a flat line even for an
// x where evaluating it would be meaningless.
//
// Evaluation stops at the first failure, which is returned as an
// *[EvalError].
func Eval(e Expr, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	if Constant(e) {
		v, err := e.At(0)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = v
		}
		return out, nil
	}
	for i, x := range xs {
		v, err := e.At(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
