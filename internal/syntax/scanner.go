package syntax

import "strconv"

// Lexical error messages.
const (
	msgFailedToParse = "Failed to parse."
	msgInvalidNumber = "Invalid number."
)

// LexError is a lexical error: an unrecognized character or a malformed
// numeric literal. Pos is the byte offset of the offending text.
type LexError struct {
	Src string
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Scanner performs lexical analysis on llcc source code.
// Scanning stops at the first error; every later call to Next returns it again.
type Scanner struct {
	source // embedded character reader

	err *LexError
}

// NewScanner creates a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	s := &Scanner{}
	s.source.init(src)
	return s
}

// Tokenize scans all of src. On success the returned sequence ends with a
// single EOF token whose position is len(src).
func Tokenize(src string) ([]Token, error) {
	s := NewScanner(src)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next scans and returns the next token.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	s.skipWhitespace()

	pos := s.pos()
	switch {
	case s.ch < 0:
		return Token{Kind: EOF, Pos: pos}, nil

	case isLetter(s.ch):
		return s.scanIdent(), nil
	}

	if tok, ok := s.scanOperator(); ok {
		return tok, nil
	}

	if isDigit(s.ch) {
		return s.scanNumber()
	}

	return Token{}, s.errorf(pos, msgFailedToParse)
}

// errorf records the first lexical error and returns it.
func (s *Scanner) errorf(pos Pos, msg string) error {
	s.err = &LexError{Src: s.buf, Pos: pos, Msg: msg}
	return s.err
}

// skipWhitespace skips all white space, newlines included.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanIdent scans a maximal run of letters.
func (s *Scanner) scanIdent() Token {
	start := s.offs
	for isLetter(s.ch) {
		s.nextch()
	}
	lit := s.buf[start:s.offs]
	return Token{Kind: LookupKeyword(lit), Lit: lit, Pos: Pos(start)}
}

// scanOperator scans an operator or punctuation symbol. Two-character
// operators take priority over a single-character prefix.
func (s *Scanner) scanOperator() (Token, bool) {
	pos := s.pos()
	for _, op := range twoCharOps {
		if s.lookingAt(op) {
			s.nextch()
			s.nextch()
			return Token{Kind: Reserved, Lit: op, Pos: pos}, true
		}
	}

	if s.ch < 0x80 && isSingleCharOp(byte(s.ch)) {
		lit := string(s.ch)
		s.nextch()
		return Token{Kind: Reserved, Lit: lit, Pos: pos}, true
	}
	return Token{}, false
}

// scanNumber scans a maximal run of decimal digits. The value must fit in a
// signed 32-bit immediate.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.offs
	for isDigit(s.ch) {
		s.nextch()
	}
	lit := s.buf[start:s.offs]

	val, err := strconv.ParseInt(lit, 10, 32)
	if err != nil {
		return Token{}, s.errorf(Pos(start), msgInvalidNumber)
	}
	return Token{Kind: Number, Lit: lit, Val: val, Pos: Pos(start)}, nil
}
