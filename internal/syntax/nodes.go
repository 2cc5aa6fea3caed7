package syntax

import "fmt"

// ----------------------------------------------------------------------------
// Interfaces
//
// The AST is a closed set of expression nodes. Every statement is an
// expression evaluated for its side effect.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes:
// *NumberLit, *Variable and *BinaryExpr.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Program

// Program is the parsed compilation unit. Statements execute in order.
type Program struct {
	Stmts  []Expr
	Locals []string // variable names in slot order; Locals[i] lives at offset (i+1)*SlotSize
}

// ----------------------------------------------------------------------------
// Expressions

// NumberLit is an integer literal.
type NumberLit struct {
	expr
	Value int64
}

// Variable is a reference to a local variable. Offset is the distance in
// bytes below the frame base where the variable is stored.
type Variable struct {
	expr
	Name   string
	Offset int
}

// BinaryExpr is a binary operation, assignment included.
type BinaryExpr struct {
	expr
	Op Operator
	X  Expr // left operand (assignment target for Assign)
	Y  Expr // right operand
}

// Operator is a binary operator.
type Operator uint8

const (
	Add Operator = iota // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Lss                 // <
	Leq                 // <=
	Eql                 // ==
	Neq                 // !=
	Assign              // =

	operatorCount
)

var operatorNames = [...]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Lss:    "<",
	Leq:    "<=",
	Eql:    "==",
	Neq:    "!=",
	Assign: "=",
}

// String returns the operator's source symbol.
func (op Operator) String() string {
	if op < operatorCount {
		return operatorNames[op]
	}
	return fmt.Sprintf("op(%d)", op)
}

// IsComparison reports whether op yields a 0/1 truth value.
func (op Operator) IsComparison() bool {
	switch op {
	case Lss, Leq, Eql, Neq:
		return true
	}
	return false
}

// IsAddressable reports whether x denotes storage and may be assigned to.
func IsAddressable(x Expr) bool {
	_, ok := x.(*Variable)
	return ok
}
