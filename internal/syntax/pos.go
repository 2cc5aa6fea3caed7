package syntax

import "strconv"

// Pos is a zero-based byte offset into the source text.
type Pos int

// NoPos is the position of things that have no place in the source.
const NoPos Pos = -1

// String returns the decimal byte offset, or "-" for an invalid position.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(int(p))
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p >= 0
}

// Offset returns the byte offset as an int.
func (p Pos) Offset() int {
	return int(p)
}

// LineCol resolves p against src and returns the 1-based line number and the
// 1-based column (byte offset in line). Positions past the end of src resolve
// to the column just after the last character.
func (p Pos) LineCol(src string) (line, col int) {
	line, col = 1, 1
	if !p.IsValid() {
		return 0, 0
	}
	for i := 0; i < len(src) && i < int(p); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
