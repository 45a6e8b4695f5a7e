package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipSpacesIsSpaceOnly(t *testing.T) {
	s := newScanner("  \tx")
	assert.Equal(t, 2, s.skipSpaces())
	// The tab must survive: it is ordinary text, not skippable whitespace.
	assert.Equal(t, byte('\t'), s.peek())
}

func TestPositionTracking(t *testing.T) {
	s := newScanner("ab\ncd")
	s.next()
	s.next()
	assert.Equal(t, Pos{Offset: 2, Line: 1, Col: 3}, s.pos())
	s.next() // newline
	assert.Equal(t, Pos{Offset: 3, Line: 2, Col: 1}, s.pos())
	s.next()
	assert.Equal(t, Pos{Offset: 4, Line: 2, Col: 2}, s.pos())
}

func TestMarkReset(t *testing.T) {
	s := newScanner("one\ntwo")
	m := s.mark()
	s.skipToNextLine()
	assert.Equal(t, byte('t'), s.peek())
	s.reset(m)
	assert.Equal(t, byte('o'), s.peek())
	assert.Equal(t, 1, s.line)
}

func TestWordAcceptsUnicodeLetters(t *testing.T) {
	s := newScanner("café!")
	assert.Equal(t, "café", s.word())
	assert.Equal(t, byte('!'), s.peek())
}

func TestDigits(t *testing.T) {
	s := newScanner("42x")
	assert.Equal(t, "42", s.digits())
	assert.Equal(t, "", s.digits())
	assert.Equal(t, byte('x'), s.peek())
}
