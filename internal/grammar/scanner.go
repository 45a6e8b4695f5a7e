package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner walks the source text one rune at a time and tracks positions.
// It deliberately has no generic whitespace skipping: skipSpaces consumes
// the literal space character and nothing else, so tabs and other
// whitespace-like runes stay visible to the grammar as ordinary text.
type scanner struct {
	src  string
	off  int
	line int
	col  int
}

// mark is a saved scanner position for local backtracking.
type mark struct {
	off  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) pos() Pos {
	return Pos{Offset: s.off, Line: s.line, Col: s.col}
}

func (s *scanner) mark() mark {
	return mark{off: s.off, line: s.line, col: s.col}
}

func (s *scanner) reset(m mark) {
	s.off, s.line, s.col = m.off, m.line, m.col
}

// peek returns the next byte without consuming it, or 0 at end of input.
// Structural characters in the grammar are all ASCII, so a byte is enough
// for dispatch; use peekRune for character classes.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) peekRune() rune {
	if s.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return r
}

// next consumes and returns one rune, updating the line and column.
func (s *scanner) next() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// eat consumes b if it is the next byte.
func (s *scanner) eat(b byte) bool {
	if s.peek() != b {
		return false
	}
	s.next()
	return true
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.off:], p)
}

// skipSpaces consumes literal spaces only and returns how many it ate.
func (s *scanner) skipSpaces() int {
	n := 0
	for s.peek() == ' ' {
		s.next()
		n++
	}
	return n
}

// skipToNextLine advances past the next newline. Used by the lenient
// parser to resynchronize after a quarantined line.
func (s *scanner) skipToNextLine() {
	for !s.eof() {
		if s.next() == '\n' {
			return
		}
	}
}

// word consumes a run of letters and digits. The grammar is ASCII-centric
// but accepting any Unicode letter or digit is a strict superset that
// keeps real recipe words intact.
func (s *scanner) word() string {
	start := s.off
	for !s.eof() {
		r := s.peekRune()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.next()
	}
	return s.src[start:s.off]
}

// digits consumes a run of ASCII decimal digits.
func (s *scanner) digits() string {
	start := s.off
	for s.peek() >= '0' && s.peek() <= '9' {
		s.next()
	}
	return s.src[start:s.off]
}
