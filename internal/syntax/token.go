// Package syntax implements lexical and syntactic analysis for the llcc
// expression language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind is the kind of a lexical token.
type Kind uint8

const (
	EOF      Kind = iota // end of input
	Reserved             // operator or punctuation: + - * / ( ) < > ; = == != <= >=
	Ident                // identifier: a, foo
	Number               // integer literal: 123

	kindCount
)

var kindNames = [...]string{
	EOF:      "EOF",
	Reserved: "RESERVED",
	Ident:    "IDENT",
	Number:   "NUMBER",
}

// String returns the name of the token kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Token is a single lexical token. Tokens are immutable once scanned.
type Token struct {
	Kind Kind
	Lit  string // source text: symbol for Reserved, name for Ident, digits for Number
	Val  int64  // value of a Number token
	Pos  Pos    // offset of the token's first byte
}

// String returns a short description of the token for listings and errors.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Number:
		return strconv.FormatInt(t.Val, 10)
	}
	return t.Lit
}

// Is reports whether t is the reserved symbol sym.
func (t Token) Is(sym string) bool {
	return t.Kind == Reserved && t.Lit == sym
}

// twoCharOps lists the two-character operators. They are matched before any
// single-character operator.
var twoCharOps = [...]string{"==", "!=", "<=", ">="}

// isSingleCharOp reports whether b is a single-character operator or
// punctuation symbol.
func isSingleCharOp(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '(', ')', '<', '>', ';', '=':
		return true
	}
	return false
}

// keywords maps keyword spellings to their token kind.
// The expression subset has no active keywords; statement forms such as
// "return" register here when they are added to the grammar.
var keywords = map[string]Kind{}

// LookupKeyword returns the token kind for the given identifier text.
// If the text is a keyword it returns the keyword's kind, otherwise Ident.
func LookupKeyword(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Ident
}
