package syntax

import "fmt"

// Syntax error messages.
const (
	msgCloseParen    = "Expected close parenthesis."
	msgExpectNumber  = "Expect number."
	msgSemicolon     = "Semicolon expected."
	msgAssignTarget  = "Invalid assignment target."
	msgTooManyLocals = "Too many local variables."
)

// SyntaxError represents a syntax error. Index is the index of the token at
// which the expectation failed; callers resolve it to a source position via
// the token sequence.
type SyntaxError struct {
	Index int
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("token %d: %s", e.Index, e.Msg)
}

// Parser performs syntax analysis over a token sequence.
// Parsing stops at the first error; there is no recovery.
type Parser struct {
	toks []Token
	head int // index of the current token

	locals scope
}

// NewParser creates a Parser for toks, which must end with an EOF token.
func NewParser(toks []Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != EOF {
		panic("syntax: token sequence not terminated by EOF")
	}
	return &Parser{toks: toks}
}

// Parse parses a complete token sequence into a Program.
func Parse(toks []Token) (*Program, error) {
	return NewParser(toks).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// tok returns the current token.
func (p *Parser) tok() Token {
	return p.toks[p.head]
}

// got reports whether the current token is the reserved symbol sym.
// If so, it consumes the token.
func (p *Parser) got(sym string) bool {
	if p.tok().Is(sym) {
		p.head++
		return true
	}
	return false
}

// want consumes the reserved symbol sym or fails with msg.
func (p *Parser) want(sym, msg string) error {
	if !p.got(sym) {
		return p.errorf(msg)
	}
	return nil
}

// errorf returns a syntax error at the current token.
func (p *Parser) errorf(msg string) error {
	return &SyntaxError{Index: p.head, Msg: msg}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses statements until end of input.
//
//	program = stmt*
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for p.tok().Kind != EOF {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
	}
	prog.Locals = append([]string(nil), p.locals.names...)
	return prog, nil
}

// stmt parses an expression statement.
//
//	stmt = expr ";"
func (p *Parser) stmt() (Expr, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.want(";", msgSemicolon); err != nil {
		return nil, err
	}
	return x, nil
}

// ----------------------------------------------------------------------------
// Expressions
//
// One function per precedence level, lowest first. Left-associative levels
// fold iteratively; assignment is right-associative and recurses.

// expr parses an expression.
func (p *Parser) expr() (Expr, error) {
	return p.assign()
}

// assign parses an assignment. The target must be addressable.
//
//	assign = equality ("=" assign)?
func (p *Parser) assign() (Expr, error) {
	x, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.tok().Is("=") {
		return x, nil
	}
	if !IsAddressable(x) {
		return nil, p.errorf(msgAssignTarget)
	}
	p.head++

	y, err := p.assign()
	if err != nil {
		return nil, err
	}
	return newBinary(Assign, x, y, x.Pos()), nil
}

// equality parses equality comparisons.
//
//	equality = relational ("==" relational | "!=" relational)*
func (p *Parser) equality() (Expr, error) {
	x, err := p.relational()
	if err != nil {
		return nil, err
	}

	for {
		var op Operator
		switch {
		case p.got("=="):
			op = Eql
		case p.got("!="):
			op = Neq
		default:
			return x, nil
		}

		y, err := p.relational()
		if err != nil {
			return nil, err
		}
		x = newBinary(op, x, y, x.Pos())
	}
}

// relational parses ordered comparisons. "a > b" is built as "b < a" and
// "a >= b" as "b <= a", so only < and <= reach the code generator.
//
//	relational = add ("<" add | "<=" add | ">" add | ">=" add)*
func (p *Parser) relational() (Expr, error) {
	x, err := p.add()
	if err != nil {
		return nil, err
	}

	for {
		var op Operator
		swap := false
		switch {
		case p.got("<"):
			op = Lss
		case p.got("<="):
			op = Leq
		case p.got(">"):
			op, swap = Lss, true
		case p.got(">="):
			op, swap = Leq, true
		default:
			return x, nil
		}

		y, err := p.add()
		if err != nil {
			return nil, err
		}
		if swap {
			x = newBinary(op, y, x, x.Pos())
		} else {
			x = newBinary(op, x, y, x.Pos())
		}
	}
}

// add parses additive expressions.
//
//	add = mul ("+" mul | "-" mul)*
func (p *Parser) add() (Expr, error) {
	x, err := p.mul()
	if err != nil {
		return nil, err
	}

	for {
		var op Operator
		switch {
		case p.got("+"):
			op = Add
		case p.got("-"):
			op = Sub
		default:
			return x, nil
		}

		y, err := p.mul()
		if err != nil {
			return nil, err
		}
		x = newBinary(op, x, y, x.Pos())
	}
}

// mul parses multiplicative expressions.
//
//	mul = unary ("*" unary | "/" unary)*
func (p *Parser) mul() (Expr, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		var op Operator
		switch {
		case p.got("*"):
			op = Mul
		case p.got("/"):
			op = Div
		default:
			return x, nil
		}

		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = newBinary(op, x, y, x.Pos())
	}
}

// unary parses an optionally signed primary. Negation lowers to "0 - x".
//
//	unary = ("+" | "-")? primary
func (p *Parser) unary() (Expr, error) {
	pos := p.tok().Pos
	switch {
	case p.got("+"):
		return p.primary()

	case p.got("-"):
		x, err := p.primary()
		if err != nil {
			return nil, err
		}
		zero := &NumberLit{Value: 0}
		zero.pos = pos
		return newBinary(Sub, zero, x, pos), nil
	}
	return p.primary()
}

// primary parses a parenthesized expression, a variable or a number.
//
//	primary = "(" expr ")" | ident | num
func (p *Parser) primary() (Expr, error) {
	tok := p.tok()

	if p.got("(") {
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.want(")", msgCloseParen); err != nil {
			return nil, err
		}
		return x, nil
	}

	switch tok.Kind {
	case Ident:
		off, ok := p.locals.lookup(tok.Lit)
		if !ok {
			return nil, p.errorf(msgTooManyLocals)
		}
		p.head++
		v := &Variable{Name: tok.Lit, Offset: off}
		v.pos = tok.Pos
		return v, nil

	case Number:
		p.head++
		n := &NumberLit{Value: tok.Val}
		n.pos = tok.Pos
		return n, nil
	}

	return nil, p.errorf(msgExpectNumber)
}

// newBinary creates a BinaryExpr positioned at pos.
func newBinary(op Operator, x, y Expr, pos Pos) *BinaryExpr {
	b := &BinaryExpr{Op: op, X: x, Y: y}
	b.pos = pos
	return b
}
