package syntax

import "testing"

func TestSourceBasic(t *testing.T) {
	var src source
	src.init("abc")

	want := []struct {
		ch   rune
		offs int
	}{
		{'a', 0},
		{'b', 1},
		{'c', 2},
		{-1, 3},
	}

	for i, w := range want {
		if src.ch != w.ch || src.offs != w.offs {
			t.Fatalf("step %d: got ch=%q offs=%d, want ch=%q offs=%d", i, src.ch, src.offs, w.ch, w.offs)
		}
		src.nextch()
	}

	// Advancing past the end stays at the end.
	src.nextch()
	if src.ch != -1 || src.offs != 3 {
		t.Errorf("after EOF: ch=%q offs=%d, want EOF at 3", src.ch, src.offs)
	}
}

func TestSourceEmpty(t *testing.T) {
	var src source
	src.init("")
	if src.ch != -1 {
		t.Errorf("ch = %q, want -1 (EOF)", src.ch)
	}
	if src.pos() != 0 {
		t.Errorf("pos = %d, want 0", src.pos())
	}
}

func TestSourceMultiByte(t *testing.T) {
	var src source
	src.init("é=1")

	if src.ch != 'é' || src.width != 2 {
		t.Fatalf("got ch=%q width=%d, want 'é' width 2", src.ch, src.width)
	}
	src.nextch()
	if src.ch != '=' || src.pos() != 2 {
		t.Errorf("got ch=%q pos=%d, want '=' at byte offset 2", src.ch, src.pos())
	}
}

func TestSourceLookingAt(t *testing.T) {
	var src source
	src.init("a<=b")
	src.nextch()

	if !src.lookingAt("<=") {
		t.Error(`lookingAt("<=") = false`)
	}
	if src.lookingAt("<=b1") {
		t.Error("lookingAt matched past end of input")
	}
	if src.lookingAt("==") {
		t.Error(`lookingAt("==") = true`)
	}
}

func TestCharClasses(t *testing.T) {
	tests := []struct {
		r                    rune
		letter, digit, space bool
	}{
		{'a', true, false, false},
		{'Z', true, false, false},
		{'λ', true, false, false},
		{'_', false, false, false},
		{'7', false, true, false},
		{' ', false, false, true},
		{'\n', false, false, true},
		{'\t', false, false, true},
		{';', false, false, false},
		{-1, false, false, false},
	}

	for _, tt := range tests {
		if got := isLetter(tt.r); got != tt.letter {
			t.Errorf("isLetter(%q) = %v, want %v", tt.r, got, tt.letter)
		}
		if got := isDigit(tt.r); got != tt.digit {
			t.Errorf("isDigit(%q) = %v, want %v", tt.r, got, tt.digit)
		}
		if got := isWhitespace(tt.r); got != tt.space {
			t.Errorf("isWhitespace(%q) = %v, want %v", tt.r, got, tt.space)
		}
	}
}
