package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual tree representation of prog to w.
func Fprint(w io.Writer, prog *Program) {
	p := &printer{w: w}
	p.printf("Program\n")
	p.indent++
	if len(prog.Locals) > 0 {
		p.printf("Locals:\n")
		p.indent++
		for i, name := range prog.Locals {
			p.printf("%s [rbp-%d]\n", name, (i+1)*SlotSize)
		}
		p.indent--
	}
	for i, s := range prog.Stmts {
		p.printf("Stmt %d\n", i)
		p.indent++
		p.print(s)
		p.indent--
	}
	p.indent--
}

// FprintNode writes a textual tree representation of a single node to w.
func FprintNode(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *NumberLit:
		p.printf("NumberLit %s %d\n", n.pos, n.Value)

	case *Variable:
		p.printf("Variable %s %q offset=%d\n", n.pos, n.Name, n.Offset)

	case *BinaryExpr:
		p.printf("BinaryOp %s %s\n", n.pos, n.Op)
		p.indent++
		p.printf("X:\n")
		p.indent++
		p.print(n.X)
		p.indent--
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent--
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a compact prefix form of x, such as "(+ 1 (* 2 3))".
// Variables print as their name followed by the slot offset: "a@8".
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *NumberLit:
		b.WriteString(strconv.FormatInt(x.Value, 10))
	case *Variable:
		b.WriteString(x.Name)
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(x.Offset))
	case *BinaryExpr:
		b.WriteByte('(')
		b.WriteString(x.Op.String())
		b.WriteByte(' ')
		writeExpr(b, x.X)
		b.WriteByte(' ')
		writeExpr(b, x.Y)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}
