package expr

import "fmt"

// SyntaxError reports malformed input or an unknown name.
type SyntaxError struct {
	// Pos is the byte offset into the source.
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// EvalError reports a failure to evaluate a formula at some x.
type EvalError struct {
	Op  string
	X   float64
	Msg string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at x=%g: %s", e.Op, e.X, e.Msg)
}
