// Package codegen translates a parsed program into x86-64 assembly (Intel
// syntax) for a single main procedure.
//
// Code is generated for a stack machine: every value is pushed onto the
// machine stack, and every binary operation pops its two operands and pushes
// one result. No registers are allocated across expressions.
package codegen

import (
	"fmt"
	"io"
	"strconv"

	"github.com/you-not-fish/llcc/internal/syntax"
)

// Frame layout. Locals live below rbp at multiples of SlotSize.
const (
	SlotSize  = syntax.SlotSize
	MaxLocals = syntax.MaxLocals
	FrameSize = syntax.FrameSize
)

type generator struct {
	e emitter
}

// Generate writes the assembly for prog to w and returns the first write
// error, if any.
func Generate(w io.Writer, prog *syntax.Program) error {
	g := &generator{e: emitter{w: w}}
	g.lowerProgram(prog)
	return g.e.err
}

// lowerProgram emits the main entry point: prologue, statements, epilogue.
func (g *generator) lowerProgram(prog *syntax.Program) {
	g.e.emit(".intel_syntax noprefix")
	g.e.emit(".globl main")
	g.e.emitLabel("main")

	// Prologue: save the caller's frame and reserve the locals area.
	g.e.emitInst("push rbp")
	g.e.emitInst("mov rbp, rsp")
	g.e.emitInst("sub rsp, %d", FrameSize)

	for _, s := range prog.Stmts {
		g.lowerStmt(s)
	}

	// Epilogue. rax holds the last statement's value.
	g.e.emitInst("mov rsp, rbp")
	g.e.emitInst("pop rbp")
	g.e.emitInst("ret")
}

// lowerStmt evaluates x and discards its value.
func (g *generator) lowerStmt(x syntax.Expr) {
	g.lowerValue(x)
	g.e.pop("rax")
	if g.e.depth != 0 {
		panic(fmt.Sprintf("codegen: operand stack depth %d after statement", g.e.depth))
	}
}

// lowerAddr pushes the address of an addressable expression.
func (g *generator) lowerAddr(x syntax.Expr) {
	v, ok := x.(*syntax.Variable)
	if !ok {
		panic(fmt.Sprintf("codegen: %T is not addressable", x))
	}
	g.e.emitInst("mov rax, rbp")
	g.e.emitInst("sub rax, %d", v.Offset)
	g.e.push("rax")
}

// lowerValue pushes the value of x.
func (g *generator) lowerValue(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.NumberLit:
		g.e.push(strconv.FormatInt(x.Value, 10))

	case *syntax.Variable:
		g.lowerAddr(x)
		g.e.pop("rax")
		g.e.emitInst("mov rax, [rax]")
		g.e.push("rax")

	case *syntax.BinaryExpr:
		if x.Op == syntax.Assign {
			g.lowerAssign(x)
			return
		}
		g.lowerValue(x.X)
		g.lowerValue(x.Y)
		g.e.pop("rdi")
		g.e.pop("rax")
		g.emitBinOp(x.Op)
		g.e.push("rax")

	default:
		panic(fmt.Sprintf("codegen: unexpected node %T", x))
	}
}

// lowerAssign stores the value of x.Y at the address of x.X and leaves the
// stored value on the stack.
func (g *generator) lowerAssign(x *syntax.BinaryExpr) {
	g.lowerAddr(x.X)
	g.lowerValue(x.Y)
	g.e.pop("rdi")
	g.e.pop("rax")
	g.e.emitInst("mov [rax], rdi")
	g.e.push("rdi")
}

// emitBinOp emits op applied to rax (left) and rdi (right), leaving the
// result in rax.
func (g *generator) emitBinOp(op syntax.Operator) {
	switch op {
	case syntax.Add:
		g.e.emitInst("add rax, rdi")
	case syntax.Sub:
		g.e.emitInst("sub rax, rdi")
	case syntax.Mul:
		g.e.emitInst("imul rax, rdi")
	case syntax.Div:
		g.e.emitInst("cqo")
		g.e.emitInst("idiv rdi")
	case syntax.Eql:
		g.emitCmp("sete")
	case syntax.Neq:
		g.emitCmp("setne")
	case syntax.Lss:
		g.emitCmp("setl")
	case syntax.Leq:
		g.emitCmp("setle")
	default:
		panic(fmt.Sprintf("codegen: unexpected operator %s", op))
	}
}

// emitCmp compares rax with rdi and sets rax to 0 or 1.
func (g *generator) emitCmp(set string) {
	g.e.emitInst("cmp rax, rdi")
	g.e.emitInst("%s al", set)
	g.e.emitInst("movzb rax, al")
}
