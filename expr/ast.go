package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Expr is a node of a parsed formula. The set of node types is closed.
type Expr interface {
	fmt.Stringer
	// At evaluates the expression for a single value of x.
	At(x float64) (float64, error)
	usesX() bool
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Var is the variable x.
type Var struct{}

// Const is a named constant.
type Const struct {
	Name  string
	Value float64
}

// Unary is a prefix sign.
type Unary struct {
	Op byte // '-' or '+'
	X  Expr
}

type BinaryOp byte

const (
	Add BinaryOp = '+'
	Sub BinaryOp = '-'
	Mul BinaryOp = '*'
	Div BinaryOp = '/'
	Pow BinaryOp = '^'
)

func (op BinaryOp) String() string {
	if op == Pow {
		return "**"
	}
	return string(op)
}

type Binary struct {
	Op   BinaryOp
	L, R Expr
}

// Call is the application of a built-in function to one argument.
type Call struct {
	Func Func
	Arg  Expr
}

var (
	_ Expr = Num{}
	_ Expr = Var{}
	_ Expr = Const{}
	_ Expr = Unary{}
	_ Expr = Binary{}
	_ Expr = Call{}
)

func (n Num) String() string   { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (Var) String() string     { return "x" }
func (c Const) String() string { return c.Name }
func (u Unary) String() string { return fmt.Sprintf("(%c%s)", u.Op, u.X) }
func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.L, b.Op, b.R)
}
func (c Call) String() string { return fmt.Sprintf("%s(%s)", c.Func, c.Arg) }

func (Num) usesX() bool      { return false }
func (Var) usesX() bool      { return true }
func (Const) usesX() bool    { return false }
func (u Unary) usesX() bool  { return u.X.usesX() }
func (b Binary) usesX() bool { return b.L.usesX() || b.R.usesX() }
func (c Call) usesX() bool   { return c.Arg.usesX() }

func (n Num) At(float64) (float64, error)   { return n.Value, nil }
func (Var) At(x float64) (float64, error)   { return x, nil }
func (c Const) At(float64) (float64, error) { return c.Value, nil }

func (u Unary) At(x float64) (float64, error) {
	v, err := u.X.At(x)
	if err != nil {
		return 0, err
	}
	if u.Op == '-' {
		return -v, nil
	}
	return v, nil
}

func (b Binary) At(x float64) (float64, error) {
	l, err := b.L.At(x)
	if err != nil {
		return 0, err
	}
	r, err := b.R.At(x)
	if err != nil {
		return 0, err
	}
	var v float64
	switch b.Op {
	case Add:
		v = l + r
	case Sub:
		v = l - r
	case Mul:
		v = l * r
	case Div:
		if r == 0 {
			return 0, &EvalError{Op: "/", X: x, Msg: "division by zero"}
		}
		v = l / r
	case Pow:
		if l == 0 && r < 0 {
			return 0, &EvalError{Op: "**", X: x, Msg: "division by zero"}
		}
		v = math.Pow(l, r)
	default:
		panic(fmt.Sprintf("unreachable: binary operator %q", byte(b.Op)))
	}
	return check(b.Op.String(), x, v)
}

func (c Call) At(x float64) (float64, error) {
	v, err := c.Arg.At(x)
	if err != nil {
		return 0, err
	}
	return c.Func.apply(x, v)
}

// check turns non-finite intermediate results into errors.
func check(op string, x, v float64) (float64, error) {
	switch {
	case math.IsNaN(v):
		return 0, &EvalError{Op: op, X: x, Msg: "result is not a real number"}
	case math.IsInf(v, 0):
		return 0, &EvalError{Op: op, X: x, Msg: "overflow"}
	}
	return v, nil
}
