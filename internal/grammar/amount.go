package grammar

import (
	"strconv"
	"strings"
	"unicode"
)

// parseAmount parses the contents of a non-empty bracket: a number,
// optionally chained into alternatives with '|', then an optional
// scaling marker '*' and an optional '%unit' suffix. The grammar's
// alternative rule is recursive and right-associative; parsing it as a
// loop yields the same flat, ordered list the domain model wants.
func (p *Parser) parseAmount(s *scanner) (*Amount, error) {
	amt := &Amount{}
	q, err := p.parseNumber(s)
	if err != nil {
		return nil, err
	}
	amt.Quantities = append(amt.Quantities, q)
	for {
		m := s.mark()
		s.skipSpaces()
		if !s.eat('|') {
			s.reset(m)
			break
		}
		s.skipSpaces()
		q, err := p.parseNumber(s)
		if err != nil {
			return nil, err
		}
		amt.Quantities = append(amt.Quantities, q)
	}

	m := s.mark()
	s.skipSpaces()
	if s.eat('*') {
		amt.Scalable = true
	} else {
		s.reset(m)
	}

	m = s.mark()
	s.skipSpaces()
	if s.eat('%') {
		s.skipSpaces()
		unit := scanUnit(s)
		if unit == "" {
			return nil, errAt(s.pos(), ErrMalformedAmount, "missing unit after '%'")
		}
		amt.Unit = unit
	} else {
		s.reset(m)
	}
	return amt, nil
}

// parseNumber parses one quantity: a digit run followed by zero or more
// /-introduced denominator components. A '/' with no digits on either
// side is malformed.
func (p *Parser) parseNumber(s *scanner) (Quantity, error) {
	var q Quantity
	c, err := parseComponent(s)
	if err != nil {
		return q, err
	}
	q.Components = append(q.Components, c)
	for {
		m := s.mark()
		s.skipSpaces()
		if !s.eat('/') {
			s.reset(m)
			return q, nil
		}
		s.skipSpaces()
		c, err := parseComponent(s)
		if err != nil {
			return q, err
		}
		q.Components = append(q.Components, c)
	}
}

func parseComponent(s *scanner) (int, error) {
	pos := s.pos()
	d := s.digits()
	if d == "" {
		return 0, errAt(pos, ErrMalformedAmount, "expected a number", "digits")
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return 0, errAt(pos, ErrMalformedAmount, "number out of range")
	}
	return n, nil
}

// scanUnit reads a free-form unit: letters, digits and interior spaces.
// Trailing spaces before the closing brace are not part of the unit.
func scanUnit(s *scanner) string {
	start := s.off
	for !s.eof() {
		r := s.peekRune()
		if r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.next()
	}
	return strings.TrimRight(s.src[start:s.off], " ")
}

// amountValue reparses a metadata value through the amount resolver.
// Only values that begin with a digit and consume fully qualify;
// everything else stays a bare name.
func (p *Parser) amountValue(v string) (*Amount, bool) {
	s := newScanner(v)
	if c := s.peek(); c < '0' || c > '9' {
		return nil, false
	}
	amt, err := p.parseAmount(s)
	if err != nil {
		return nil, false
	}
	s.skipSpaces()
	if !s.eof() {
		return nil, false
	}
	return amt, true
}

// ParseAmount applies the amount mini-grammar to a standalone string.
// Used for metadata-like values that arrive outside a bracket.
func ParseAmount(v string) (*Amount, bool) {
	return New(nil).amountValue(v)
}
