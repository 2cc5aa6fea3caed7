// Package diag renders compiler diagnostics against the program source.
package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render writes an error report for msg at byte offset pos in src:
//
//	Error:
//	1 | a = 1 +;
//	  |        ^ Expect number.
//
// The report shows the line containing pos. An offset at the end of a line
// (including the end of input) points just past its last character.
func Render(w io.Writer, src string, pos int, msg string) error {
	lineNo, start := 1, 0
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			lineNo++
			start = i + 1
		}
	}
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	line := strings.TrimSuffix(src[start:end], "\r")

	col := pos - start
	if col < 0 {
		col = 0
	}
	num := strconv.Itoa(lineNo)

	_, err := fmt.Fprintf(w, "Error:\n%s | %s\n%s | %s^ %s\n",
		num, line,
		strings.Repeat(" ", len(num)), strings.Repeat(" ", col), msg)
	return err
}
