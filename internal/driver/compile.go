// Package driver runs the compilation pipeline: source text to tokens, tokens
// to a program, program to assembly.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you-not-fish/llcc/internal/codegen"
	"github.com/you-not-fish/llcc/internal/syntax"
)

// ErrorKind classifies a compilation error.
type ErrorKind uint8

const (
	LexicalError ErrorKind = iota
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a compilation error resolved to a byte offset in the source.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}

// Tokenize scans src. Errors are returned as *Error.
func Tokenize(src string) ([]syntax.Token, error) {
	toks, err := syntax.Tokenize(src)
	if err != nil {
		return nil, normalize(err, toks)
	}
	return toks, nil
}

// Parse scans and parses src. Errors are returned as *Error.
func Parse(src string) (*syntax.Program, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	prog, err := syntax.Parse(toks)
	if err != nil {
		return nil, normalize(err, toks)
	}
	return prog, nil
}

// Compile translates src into assembly text. On failure no assembly is
// returned and compilation errors are *Error.
func Compile(src string) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := codegen.Generate(&b, prog); err != nil {
		return "", fmt.Errorf("generating assembly: %w", err)
	}
	return b.String(), nil
}

// normalize converts a scanner or parser error into an *Error. Syntax error
// token indexes are resolved through toks.
func normalize(err error, toks []syntax.Token) error {
	var lerr *syntax.LexError
	if errors.As(err, &lerr) {
		return &Error{Kind: LexicalError, Pos: lerr.Pos, Msg: lerr.Msg}
	}

	var serr *syntax.SyntaxError
	if errors.As(err, &serr) {
		pos := syntax.NoPos
		if serr.Index >= 0 && serr.Index < len(toks) {
			pos = toks[serr.Index].Pos
		}
		return &Error{Kind: SyntaxError, Pos: pos, Msg: serr.Msg}
	}
	return err
}
