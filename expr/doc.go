// Package expr implements the formula language used to generate curve
// points.
//
// A formula is an arithmetic expression in one variable, x:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("-" | "+") unary | power
//	power   = primary [ ("**" | "^") unary ]
//	primary = number | "x" | "pi" | "e" | func "(" expr ")" | "(" expr ")"
//	func    = "sin" | "cos" | "tan" | "exp" | "log" | "log10" | "sqrt" | "abs"
//
// Exponentiation binds tighter than unary minus and is right associative, so
// -x**2 is -(x²) and 2**3**2 is 2⁹. log is the natural logarithm.
//
// The grammar is closed: no other identifiers exist, and there is no
// assignment, attribute access or call of anything but the listed functions.
// An unknown name is a [SyntaxError], found before any evaluation happens.
//
// Evaluation is strict about the real line. Division by zero, logarithms of
// non-positive numbers, square roots of negative numbers, non-real powers and
// overflow are reported as [EvalError]s instead of producing NaN or ±Inf.
package expr
