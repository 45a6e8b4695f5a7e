package cooklang

import (
	"strconv"
	"strings"
)

// Amount is a quantity expression from a {...} bracket: one or more
// alternative quantities, an optional scaling flag and an optional unit.
// The grammar's recursive alternative rule is flattened here; Quantities
// keeps the alternatives in source order.
type Amount struct {
	Quantities []Quantity `json:"quantities"`
	Scalable   bool       `json:"scalable,omitempty"`
	Unit       string     `json:"unit,omitempty"`
}

// Quantity is a single numeric value, possibly a chained fraction.
// Components holds the digit runs in order: "1/2" is [1 2].
type Quantity struct {
	Components []int `json:"components"`
}

// Value resolves the chained fraction by folding division left to right:
// components [3 4] yield 0.75, [1 2 2] yield 0.25. A zero denominator
// propagates as infinity; the grammar does not forbid it.
func (q Quantity) Value() float64 {
	if len(q.Components) == 0 {
		return 0
	}
	v := float64(q.Components[0])
	for _, c := range q.Components[1:] {
		v /= float64(c)
	}
	return v
}

// String renders the quantity in source form, e.g. "1/2".
func (q Quantity) String() string {
	parts := make([]string, len(q.Components))
	for i, c := range q.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, "/")
}

// String renders the amount in source form, e.g. "1/2|3/4*%g".
func (a Amount) String() string {
	var b strings.Builder
	for i, q := range a.Quantities {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(q.String())
	}
	if a.Scalable {
		b.WriteByte('*')
	}
	if a.Unit != "" {
		b.WriteByte('%')
		b.WriteString(a.Unit)
	}
	return b.String()
}

// Value is a metadata property value: an Amount when the raw value
// parses as an amount expression, a bare text string otherwise. Exactly
// one of the two fields is set.
type Value struct {
	Amount *Amount `json:"amount,omitempty"`
	Text   string  `json:"text,omitempty"`
}

func (v Value) String() string {
	if v.Amount != nil {
		return v.Amount.String()
	}
	return v.Text
}
