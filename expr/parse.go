package expr

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

const tokPow = -100 // "**"; scanner reserves negative runes for token classes

type parser struct {
	s    scanner.Scanner
	tok  rune
	text string
	pos  int
	err  *SyntaxError
}

// Parse parses src as a formula.
func Parse(src string) (Expr, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanFloats
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.fail(s.Position.Offset, msg)
	}
	p.next()
	if p.tok == scanner.EOF && p.err == nil {
		return nil, &SyntaxError{Pos: 0, Msg: "empty formula"}
	}
	e := p.expr()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail(p.pos, fmt.Sprintf("unexpected %s", p.describe()))
	}
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// fail records the first error. Parsing continues with placeholder nodes
// until the caller checks p.err, which keeps the productions free of error
// plumbing.
func (p *parser) fail(pos int, msg string) {
	if p.err == nil {
		p.err = &SyntaxError{Pos: pos, Msg: msg}
	}
}

func (p *parser) next() {
	p.tok = p.s.Scan()
	p.text = p.s.TokenText()
	p.pos = p.s.Position.Offset
	if p.tok == '*' && p.s.Peek() == '*' {
		p.s.Next()
		p.tok = tokPow
		p.text = "**"
	}
}

func (p *parser) describe() string {
	switch p.tok {
	case scanner.EOF:
		return "end of formula"
	case scanner.Ident:
		return fmt.Sprintf("name %q", p.text)
	case scanner.Int, scanner.Float:
		return fmt.Sprintf("number %s", p.text)
	default:
		return fmt.Sprintf("%q", p.text)
	}
}

func (p *parser) expect(tok rune, what string) {
	if p.tok != tok {
		p.fail(p.pos, fmt.Sprintf("expected %s, found %s", what, p.describe()))
		return
	}
	p.next()
}

func (p *parser) expr() Expr {
	e := p.term()
	for p.err == nil && (p.tok == '+' || p.tok == '-') {
		op := BinaryOp(p.tok)
		p.next()
		e = Binary{Op: op, L: e, R: p.term()}
	}
	return e
}

func (p *parser) term() Expr {
	e := p.unary()
	for p.err == nil && (p.tok == '*' || p.tok == '/') {
		op := BinaryOp(p.tok)
		p.next()
		e = Binary{Op: op, L: e, R: p.unary()}
	}
	return e
}

func (p *parser) unary() Expr {
	if p.tok == '-' || p.tok == '+' {
		op := byte(p.tok)
		p.next()
		return Unary{Op: op, X: p.unary()}
	}
	return p.power()
}

func (p *parser) power() Expr {
	e := p.primary()
	if p.err == nil && (p.tok == tokPow || p.tok == '^') {
		p.next()
		// Right associative, and the exponent may carry a sign: 2**-x.
		e = Binary{Op: Pow, L: e, R: p.unary()}
	}
	return e
}

func (p *parser) primary() Expr {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.text, 64)
		if err != nil {
			p.fail(p.pos, fmt.Sprintf("invalid number %s", p.text))
		}
		p.next()
		return Num{Value: v}
	case scanner.Ident:
		return p.ident()
	case '(':
		p.next()
		e := p.expr()
		p.expect(')', `")"`)
		return e
	default:
		p.fail(p.pos, fmt.Sprintf("unexpected %s", p.describe()))
		return Num{}
	}
}

func (p *parser) ident() Expr {
	name, pos := p.text, p.pos
	p.next()
	if name == "x" {
		return Var{}
	}
	if v, ok := constants[name]; ok {
		return Const{Name: name, Value: v}
	}
	f, ok := lookupFunc(name)
	if !ok {
		p.fail(pos, fmt.Sprintf("unknown name %q", name))
		return Num{}
	}
	if p.tok != '(' {
		p.fail(pos, fmt.Sprintf("function %s must be called", name))
		return Num{}
	}
	p.next()
	arg := p.expr()
	p.expect(')', `")"`)
	return Call{Func: f, Arg: arg}
}
