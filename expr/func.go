package expr

import (
	"fmt"
	"math"
)

// Func is one of the built-in functions.
type Func int

const (
	Sin Func = iota + 1
	Cos
	Tan
	Exp
	Log
	Log10
	Sqrt
	Abs
)

var funcNames = [...]string{
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Exp:   "exp",
	Log:   "log",
	Log10: "log10",
	Sqrt:  "sqrt",
	Abs:   "abs",
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func (f Func) String() string {
	if f < Sin || f > Abs {
		return fmt.Sprintf("Func(%d)", int(f))
	}
	return funcNames[f]
}

func lookupFunc(name string) (Func, bool) {
	for f := Sin; f <= Abs; f++ {
		if funcNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

func (f Func) apply(x, v float64) (float64, error) {
	var r float64
	switch f {
	case Sin:
		r = math.Sin(v)
	case Cos:
		r = math.Cos(v)
	case Tan:
		r = math.Tan(v)
	case Exp:
		r = math.Exp(v)
	case Log, Log10:
		if v <= 0 {
			return 0, &EvalError{Op: f.String(), X: x, Msg: fmt.Sprintf("logarithm of non-positive number %g", v)}
		}
		if f == Log {
			r = math.Log(v)
		} else {
			r = math.Log10(v)
		}
	case Sqrt:
		if v < 0 {
			return 0, &EvalError{Op: f.String(), X: x, Msg: fmt.Sprintf("square root of negative number %g", v)}
		}
		r = math.Sqrt(v)
	case Abs:
		r = math.Abs(v)
	default:
		panic(fmt.Sprintf("unreachable: %s", f))
	}
	return check(f.String(), x, r)
}
