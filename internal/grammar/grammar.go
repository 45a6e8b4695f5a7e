// Package grammar implements the CookLang grammar as a hand-written
// recursive-descent parser. It turns raw source text into a parse tree
// (Document) of steps, properties and inline tokens; translation into
// the public recipe model happens in the root package.
//
// Two deliberate quirks of the grammar are preserved here rather than
// hidden behind generic lexer defaults: only the literal space character
// is ever implicitly skipped (tabs are prose), and backtracking is
// confined to token-local decisions such as where an ingredient's
// descriptive words end and its bracket begins.
package grammar

import (
	"strings"

	"github.com/hammamikhairi/cooklang/internal/logger"
)

// Parser is the grammar engine. It holds no per-parse state, so a single
// Parser may be shared across goroutines; every call owns its own
// scanner.
type Parser struct {
	log *logger.Logger
}

// New creates a grammar engine. A nil logger disables tracing.
func New(log *logger.Logger) *Parser {
	if log == nil {
		log = logger.New(logger.LevelOff, nil)
	}
	return &Parser{log: log}
}

// Parse consumes the whole source or fails on the first grammar
// violation. There is no partial result on error.
func (p *Parser) Parse(src string) (*Document, error) {
	doc, _, err := p.parse(src, false)
	return doc, err
}

// ParseLenient parses line by line, quarantining lines that fail and
// resynchronizing at the next line break. The returned document holds
// everything that did parse.
func (p *Parser) ParseLenient(src string) (*Document, []LineError) {
	doc, errs, _ := p.parse(src, true)
	return doc, errs
}

func (p *Parser) parse(src string, lenient bool) (*Document, []LineError, error) {
	s := newScanner(src)
	doc := &Document{}
	var errs []LineError
	for !s.eof() {
		line := s.line
		if err := p.parseLineUnit(s, doc); err != nil {
			if !lenient {
				return nil, nil, err
			}
			errs = append(errs, LineError{Line: line, Err: err})
			s.skipToNextLine()
		}
	}
	p.log.Debug("parsed document: %d steps, %d properties, %d quarantined",
		len(doc.Steps), len(doc.Properties), len(errs))
	return doc, errs, nil
}

// parseLineUnit dispatches one line-wrapper unit: blank line, standalone
// comment, metadata line or content line.
func (p *Parser) parseLineUnit(s *scanner, doc *Document) error {
	m := s.mark()
	s.skipSpaces()
	switch {
	case s.eof():
		return nil
	case s.eat('\n'): // blank lines collapse to no step
		return nil
	case s.hasPrefix("//"):
		skipComment(s)
		s.eat('\n')
		return nil
	case s.hasPrefix(">>"):
		prop, err := p.parseProperty(s)
		if err != nil {
			return err
		}
		doc.Properties = append(doc.Properties, prop)
		return nil
	default:
		s.reset(m) // leading spaces belong to the step text
		step, err := p.parseStep(s)
		if err != nil {
			return err
		}
		if step != nil {
			doc.Steps = append(doc.Steps, step)
		}
		return nil
	}
}

// parseProperty parses a ">> key: value" line. Spaces around the colon
// are insignificant; the value runs to the end of line with any trailing
// comment stripped.
func (p *Parser) parseProperty(s *scanner) (*Property, error) {
	pos := s.pos()
	s.next() // '>'
	s.next() // '>'
	s.skipSpaces()
	key := s.word()
	if key == "" {
		return nil, errAt(s.pos(), nil, "missing metadata key", "name")
	}
	s.skipSpaces()
	if !s.eat(':') {
		return nil, errAt(s.pos(), nil, "malformed metadata line", ":")
	}
	s.skipSpaces()
	start := s.off
	for !s.eof() && s.peek() != '\n' && !s.hasPrefix("//") {
		s.next()
	}
	value := strings.TrimRight(s.src[start:s.off], " ")
	if s.hasPrefix("//") {
		skipComment(s)
	}
	s.eat('\n')

	prop := &Property{Pos: pos, Key: key}
	if amt, ok := p.amountValue(value); ok {
		prop.Amount = amt
	} else {
		prop.Text = value
	}
	p.log.Debug("property %q = %q", key, value)
	return prop, nil
}

// parseStep consumes one content line. Structured tokens become their
// own segments; everything else accumulates into coalesced text
// segments that never merge across a token boundary.
func (p *Parser) parseStep(s *scanner) (*Step, error) {
	step := &Step{Pos: s.pos()}
	var text strings.Builder
	var textPos Pos

	flush := func(atLineEnd bool) {
		if text.Len() == 0 {
			return
		}
		v := text.String()
		if atLineEnd {
			v = strings.TrimRight(v, " ")
		}
		if v != "" {
			step.Segments = append(step.Segments, Text{Pos: textPos, Value: v})
		}
		text.Reset()
	}

	for !s.eof() {
		c := s.peek()
		if c == '\n' {
			s.next()
			break
		}
		if c == '/' && s.hasPrefix("//") {
			skipComment(s)
			continue
		}
		var (
			seg Segment
			err error
		)
		switch c {
		case '@':
			var ing *Ingredient
			if ing, err = p.parseIngredient(s); ing != nil {
				seg = ing
			}
		case '#':
			var cw *Cookware
			if cw, err = p.parseCookware(s); cw != nil {
				seg = cw
			}
		case '~':
			var tm *Timer
			if tm, err = p.parseTimer(s); tm != nil {
				seg = tm
			}
		}
		if err != nil {
			return nil, err
		}
		if seg != nil {
			flush(false)
			step.Segments = append(step.Segments, seg)
			continue
		}
		if text.Len() == 0 {
			textPos = s.pos()
		}
		text.WriteRune(s.next())
	}
	flush(true)
	if len(step.Segments) == 0 {
		return nil, nil
	}
	return step, nil
}

// parseIngredient parses an @-token. A lone '@' with no name is not a
// token; the caller keeps it as prose.
func (p *Parser) parseIngredient(s *scanner) (*Ingredient, error) {
	pos := s.pos()
	m := s.mark()
	s.next() // '@'
	name := s.word()
	if name == "" {
		s.reset(m)
		return nil, nil
	}
	ing := &Ingredient{Pos: pos, Name: name}
	if detail, ok := scanBracketWords(s); ok {
		ing.Detail = detail
		amt, err := p.parseBracket(s)
		if err != nil {
			return nil, err
		}
		ing.Amount = amt
	}
	if s.peek() == '(' {
		if note, ok := scanNote(s); ok {
			ing.Note = note
		}
	}
	p.log.Debug("ingredient %q detail=%q line=%d", ing.Name, ing.Detail, pos.Line)
	return ing, nil
}

// parseCookware parses a #-token. The bracket is optional; an empty
// bracket means the item is used as-is.
func (p *Parser) parseCookware(s *scanner) (*Cookware, error) {
	pos := s.pos()
	m := s.mark()
	s.next() // '#'
	name := s.word()
	if name == "" {
		s.reset(m)
		return nil, nil
	}
	cw := &Cookware{Pos: pos, Name: name}
	if detail, ok := scanBracketWords(s); ok {
		cw.Detail = detail
		amt, err := p.parseBracket(s)
		if err != nil {
			return nil, err
		}
		cw.Amount = amt
	}
	p.log.Debug("cookware %q detail=%q line=%d", cw.Name, cw.Detail, pos.Line)
	return cw, nil
}

// parseTimer parses a ~-token. Timers have no name and the amount is
// mandatory: the bracket grammar alone cannot express "non-empty", so
// the check lives here.
func (p *Parser) parseTimer(s *scanner) (*Timer, error) {
	pos := s.pos()
	m := s.mark()
	s.next() // '~'
	if s.peek() != '{' {
		s.reset(m)
		return nil, nil
	}
	bracketPos := s.pos()
	amt, err := p.parseBracket(s)
	if err != nil {
		return nil, err
	}
	if amt == nil {
		return nil, errAt(bracketPos, ErrEmptyTimerAmount, "timer requires an amount")
	}
	p.log.Debug("timer line=%d", pos.Line)
	return &Timer{Pos: pos, Amount: amt}, nil
}

// parseBracket parses "{...}" and returns nil for the empty bracket.
func (p *Parser) parseBracket(s *scanner) (*Amount, error) {
	s.next() // '{'
	s.skipSpaces()
	if s.eat('}') {
		return nil, nil
	}
	amt, err := p.parseAmount(s)
	if err != nil {
		return nil, err
	}
	s.skipSpaces()
	if !s.eat('}') {
		return nil, errAt(s.pos(), nil, "unterminated amount bracket", "}")
	}
	return amt, nil
}

// scanBracketWords decides whether the token continues with descriptive
// words up to a '{' bracket. It succeeds only when a bracket is actually
// ahead; otherwise the scanner rewinds and the token is just its name.
// This is the one place the grammar backtracks over more than a single
// character.
func scanBracketWords(s *scanner) (string, bool) {
	m := s.mark()
	var words []string
	for {
		if s.peek() == '{' {
			return strings.Join(words, " "), true
		}
		if s.skipSpaces() == 0 {
			break
		}
		if s.peek() == '{' {
			return strings.Join(words, " "), true
		}
		w := s.word()
		if w == "" {
			break
		}
		words = append(words, w)
	}
	s.reset(m)
	return "", false
}

// scanNote reads a parenthesized annotation. The note must close on the
// same line; otherwise the '(' stays prose.
func scanNote(s *scanner) (string, bool) {
	m := s.mark()
	s.next() // '('
	start := s.off
	for !s.eof() && s.peek() != ')' && s.peek() != '\n' {
		s.next()
	}
	if s.peek() != ')' {
		s.reset(m)
		return "", false
	}
	note := s.src[start:s.off]
	s.next() // ')'
	return note, true
}

// skipComment consumes "//" and everything up to, but not including,
// the line break.
func skipComment(s *scanner) {
	for !s.eof() && s.peek() != '\n' {
		s.next()
	}
}
