package syntax

import (
	"unicode"
	"unicode/utf8"
)

// source is a character reader over an in-memory program text.
// Positions are byte offsets; characters are decoded as UTF-8.
type source struct {
	buf string // entire source text

	ch    rune // current character, -1 at end of input
	offs  int  // byte offset of ch
	width int  // byte width of ch, 0 at end of input
}

// init positions the reader at the first character of buf.
func (s *source) init(buf string) {
	s.buf = buf
	s.offs = 0
	s.width = 0
	s.nextch()
}

// nextch advances to the next character. At end of input ch is -1 and offs
// equals len(buf).
func (s *source) nextch() {
	s.offs += s.width
	if s.offs >= len(s.buf) {
		s.offs = len(s.buf)
		s.ch = -1
		s.width = 0
		return
	}

	r, w := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.width = w
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return Pos(s.offs)
}

// lookingAt reports whether the unread input starting at the current
// character begins with text.
func (s *source) lookingAt(text string) bool {
	return len(s.buf)-s.offs >= len(text) && s.buf[s.offs:s.offs+len(text)] == text
}

// Character classification helpers

// isLetter reports whether r is alphabetic. Identifiers are letters only;
// digits and underscores end an identifier.
func isLetter(r rune) bool {
	return r >= 0 && unicode.IsLetter(r)
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is white space, newlines included.
func isWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}
