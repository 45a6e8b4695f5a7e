// Package cooklang parses CookLang recipe markup into structured
// recipes. CookLang embeds ingredients (@), cookware (#), timers (~) and
// metadata (>>) in otherwise free-form prose; everything not explicitly
// marked stays opaque text.
//
// The parser is a pure transformation: text in, *Recipe or error out.
// It keeps no state between calls and performs no I/O, so a single
// Parser is safe to use from any number of goroutines on independent
// inputs.
//
// One grammar quirk worth knowing: only the literal space character is
// ever skipped implicitly. Tabs and every other whitespace-like rune are
// ordinary prose.
package cooklang

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/hammamikhairi/cooklang/internal/grammar"
	"github.com/hammamikhairi/cooklang/internal/logger"
)

// DuplicatePolicy decides which value survives when the same metadata
// key appears more than once. The grammar leaves this open; the default
// matches what most consumers expect from repeated assignment.
type DuplicatePolicy int

const (
	// LastKeyWins keeps the value of the last occurrence (default).
	LastKeyWins DuplicatePolicy = iota
	// FirstKeyWins keeps the value of the first occurrence.
	FirstKeyWins
)

// Option configures a Parser.
type Option func(*Parser)

// WithDuplicatePolicy sets how repeated metadata keys resolve.
func WithDuplicatePolicy(dp DuplicatePolicy) Option {
	return func(p *Parser) {
		p.dup = dp
	}
}

// WithDebugLog enables grammar trace output to w. The parser is silent
// without it.
func WithDebugLog(w io.Writer) Option {
	return func(p *Parser) {
		p.log = logger.New(logger.LevelDebug, w)
	}
}

// DisableFrontMatter turns off recognition of a leading YAML front
// matter block; the fence lines then parse as ordinary content.
func DisableFrontMatter() Option {
	return func(p *Parser) {
		p.frontMatter = false
	}
}

// Parser turns CookLang text into recipes. A single Parser is safe for
// concurrent use; the package-level Parse covers the default
// configuration.
type Parser struct {
	dup         DuplicatePolicy
	frontMatter bool
	log         *logger.Logger
	grammar     *grammar.Parser
}

// NewParser creates a parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		dup:         LastKeyWins,
		frontMatter: true,
		log:         logger.New(logger.LevelOff, nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.grammar = grammar.New(p.log)
	return p
}

// Parse parses text with a default parser.
func Parse(text string) (*Recipe, error) {
	return NewParser().Parse(text)
}

// Parse parses one CookLang document. The whole parse either succeeds or
// fails: any input the grammar cannot consume up to end of input returns
// a *SyntaxError locating the violation, and no partial Recipe.
func (p *Parser) Parse(text string) (*Recipe, error) {
	body, fm, lineOff, byteOff, err := p.splitFrontMatter(text)
	if err != nil {
		return nil, err
	}
	doc, gerr := p.grammar.Parse(body)
	if gerr != nil {
		return nil, convertError(gerr, lineOff, byteOff)
	}
	return p.assemble(text, doc, fm), nil
}

// ParseLenient parses line by line instead of all-or-nothing: lines that
// violate the grammar are quarantined and reported, and everything else
// still lands in the Recipe. The error slice is nil when the input is
// fully valid.
func (p *Parser) ParseLenient(text string) (*Recipe, []LineError) {
	var errs []LineError
	body, fm, lineOff, byteOff, err := p.splitFrontMatter(text)
	if err != nil {
		line := 1
		var se *SyntaxError
		if errors.As(err, &se) && se.Line > 0 {
			line = se.Line
		}
		errs = append(errs, LineError{Line: line, Err: err})
	}
	doc, gerrs := p.grammar.ParseLenient(body)
	for _, ge := range gerrs {
		errs = append(errs, LineError{
			Line: ge.Line + lineOff,
			Err:  convertError(ge.Err, lineOff, byteOff),
		})
	}
	return p.assemble(text, doc, fm), errs
}

// assemble translates the parse tree into the public recipe model:
// steps keep their segment order, metadata resolves duplicates per the
// configured policy, and every ingredient occurrence gets a fresh ID.
func (p *Parser) assemble(source string, doc *grammar.Document, fm []frontMatterEntry) *Recipe {
	r := &Recipe{Source: source, Metadata: make(map[string]Value)}
	for _, e := range fm {
		v := Value{Text: e.value}
		if amt, ok := grammar.ParseAmount(e.value); ok {
			v = Value{Amount: convertAmount(amt)}
		}
		p.setMetadata(r, e.key, v)
	}
	for _, prop := range doc.Properties {
		v := Value{Text: prop.Text}
		if prop.Amount != nil {
			v = Value{Amount: convertAmount(prop.Amount)}
		}
		p.setMetadata(r, prop.Key, v)
	}
	for _, st := range doc.Steps {
		step := Step{Segments: make([]Segment, 0, len(st.Segments))}
		for _, seg := range st.Segments {
			step.Segments = append(step.Segments, convertSegment(seg))
		}
		r.Steps = append(r.Steps, step)
	}
	return r
}

func (p *Parser) setMetadata(r *Recipe, key string, v Value) {
	if p.dup == FirstKeyWins {
		if _, ok := r.Metadata[key]; ok {
			return
		}
	}
	r.Metadata[key] = v
}

func convertSegment(seg grammar.Segment) Segment {
	switch t := seg.(type) {
	case grammar.Text:
		return Text(t.Value)
	case *grammar.Ingredient:
		return &Ingredient{
			ID:     uuid.New(),
			Name:   t.Name,
			Detail: t.Detail,
			Note:   t.Note,
			Amount: convertAmount(t.Amount),
		}
	case *grammar.Cookware:
		return &Cookware{
			Name:   t.Name,
			Detail: t.Detail,
			Amount: convertAmount(t.Amount),
		}
	case *grammar.Timer:
		return &Timer{Amount: *convertAmount(t.Amount)}
	}
	panic("cooklang: unknown segment type")
}

func convertAmount(a *grammar.Amount) *Amount {
	if a == nil {
		return nil
	}
	out := &Amount{
		Quantities: make([]Quantity, 0, len(a.Quantities)),
		Scalable:   a.Scalable,
		Unit:       a.Unit,
	}
	for _, q := range a.Quantities {
		out.Quantities = append(out.Quantities, Quantity{
			Components: append([]int(nil), q.Components...),
		})
	}
	return out
}
