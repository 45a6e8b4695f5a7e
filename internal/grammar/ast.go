package grammar

// Pos locates a token in the source text. Line and Col are 1-based;
// Offset is a byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Document is the parse tree for one CookLang source text. Steps and
// Properties each keep document order; the grammar allows them to
// interleave freely.
type Document struct {
	Steps      []*Step
	Properties []*Property
}

// Step is one content line: structured tokens interleaved with prose.
type Step struct {
	Pos      Pos
	Segments []Segment
}

// Segment is one ordered piece of a step. Implemented by Text,
// *Ingredient, *Cookware and *Timer.
type Segment interface {
	segment()
}

// Text is a run of literal characters. Consecutive literal characters
// coalesce into a single Text segment; a structured token always starts
// a new one.
type Text struct {
	Pos   Pos
	Value string
}

// Ingredient is an @-token. Name is the leading alphanumeric word,
// Detail holds any further words that appeared before the amount
// bracket, Note the trailing parenthesized annotation.
type Ingredient struct {
	Pos    Pos
	Name   string
	Detail string
	Note   string
	Amount *Amount
}

// Cookware is a #-token. A nil Amount means the item is used as-is.
type Cookware struct {
	Pos    Pos
	Name   string
	Detail string
	Amount *Amount
}

// Timer is a ~-token. The amount is mandatory; an empty bracket is
// rejected during parsing.
type Timer struct {
	Pos    Pos
	Amount *Amount
}

// Amount is the contents of a non-empty {...} bracket. Alternatives are
// flattened into an ordered Quantities list; the recursive shape of the
// grammar rule never surfaces here.
type Amount struct {
	Quantities []Quantity
	Scalable   bool
	Unit       string
}

// Quantity is a chained fraction: one leading integer followed by zero
// or more /-introduced denominators.
type Quantity struct {
	Components []int
}

// Property is a >>-line. Exactly one of Amount and Text carries the
// value: Amount when the value parses as an amount expression, Text
// otherwise.
type Property struct {
	Pos    Pos
	Key    string
	Amount *Amount
	Text   string
}

func (Text) segment()        {}
func (*Ingredient) segment() {}
func (*Cookware) segment()   {}
func (*Timer) segment()      {}
