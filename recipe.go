package cooklang

import (
	"fmt"

	"github.com/google/uuid"
)

// Recipe is the structured form of one CookLang document: ordered steps
// plus document-level metadata. A Recipe is built once per parse and is
// not modified afterwards; treat it as read-only.
type Recipe struct {
	// Source is the raw text the recipe was parsed from.
	Source string `json:"source"`
	// Metadata holds the ">>" properties (and any front matter keys).
	// Map order is insignificant; duplicate keys resolve per the
	// parser's DuplicatePolicy.
	Metadata map[string]Value `json:"metadata,omitempty"`
	// Steps in document order.
	Steps []Step `json:"steps"`
}

// Step is one recipe line: literal prose interleaved with ingredient,
// cookware and timer tokens. Segment order is insertion order and
// reconstructs the line when concatenated.
type Step struct {
	Segments []Segment `json:"segments"`
}

// Segment is one ordered piece of a Step: literal text or a structured
// token. The concrete types are Text, *Ingredient, *Cookware and
// *Timer; String renders the segment back to minimal source form.
type Segment interface {
	fmt.Stringer
	segment()
}

// Text is a run of literal prose between tokens.
type Text string

// Ingredient is an @-token occurrence. Name is the leading alphanumeric
// word; Detail holds any descriptive words that appeared before the
// amount bracket; Note is the trailing parenthesized annotation.
type Ingredient struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Detail string    `json:"detail,omitempty"`
	Note   string    `json:"note,omitempty"`
	Amount *Amount   `json:"amount,omitempty"`
}

// Cookware is a #-token occurrence. A nil Amount means the item is used
// as-is rather than in a counted quantity.
type Cookware struct {
	Name   string  `json:"name"`
	Detail string  `json:"detail,omitempty"`
	Amount *Amount `json:"amount,omitempty"`
}

// Timer is a ~-token occurrence. Timers carry only an amount.
type Timer struct {
	Amount Amount `json:"amount"`
}

func (Text) segment()        {}
func (*Ingredient) segment() {}
func (*Cookware) segment()   {}
func (*Timer) segment()      {}

// DisplayName is the full human name: the name token plus any
// descriptive words.
func (i *Ingredient) DisplayName() string {
	if i.Detail == "" {
		return i.Name
	}
	return i.Name + " " + i.Detail
}

// DisplayName is the full human name of the cookware item.
func (c *Cookware) DisplayName() string {
	if c.Detail == "" {
		return c.Name
	}
	return c.Name + " " + c.Detail
}

// Ingredients returns every ingredient occurrence in document order.
func (r *Recipe) Ingredients() []*Ingredient {
	var out []*Ingredient
	for _, st := range r.Steps {
		for _, seg := range st.Segments {
			if ing, ok := seg.(*Ingredient); ok {
				out = append(out, ing)
			}
		}
	}
	return out
}

// Cookware returns every cookware occurrence in document order.
func (r *Recipe) Cookware() []*Cookware {
	var out []*Cookware
	for _, st := range r.Steps {
		for _, seg := range st.Segments {
			if cw, ok := seg.(*Cookware); ok {
				out = append(out, cw)
			}
		}
	}
	return out
}

// Timers returns every timer occurrence in document order.
func (r *Recipe) Timers() []*Timer {
	var out []*Timer
	for _, st := range r.Steps {
		for _, seg := range st.Segments {
			if tm, ok := seg.(*Timer); ok {
				out = append(out, tm)
			}
		}
	}
	return out
}

// IngredientTotal is the aggregate of every occurrence of one
// ingredient, merged by display name. Values holds one summed value per
// alternative quantity; nil means no occurrence carried an amount.
type IngredientTotal struct {
	Name     string    `json:"name"`
	Values   []float64 `json:"values,omitempty"`
	Scalable bool      `json:"scalable,omitempty"`
	Unit     string    `json:"unit,omitempty"`
}

// IngredientTotals merges ingredient occurrences by display name, in
// order of first appearance, summing amounts pairwise across
// alternatives. Occurrences without an amount contribute nothing to the
// sum. An ingredient whose occurrences mix units, scaling flags or
// alternative counts returns ErrInconsistentAmount naming it.
func (r *Recipe) IngredientTotals() ([]IngredientTotal, error) {
	var order []string
	totals := make(map[string]*IngredientTotal)
	for _, ing := range r.Ingredients() {
		name := ing.DisplayName()
		tot, ok := totals[name]
		if !ok {
			tot = &IngredientTotal{Name: name}
			totals[name] = tot
			order = append(order, name)
		}
		if ing.Amount == nil {
			continue
		}
		values := make([]float64, len(ing.Amount.Quantities))
		for i, q := range ing.Amount.Quantities {
			values[i] = q.Value()
		}
		if tot.Values == nil {
			tot.Values = values
			tot.Scalable = ing.Amount.Scalable
			tot.Unit = ing.Amount.Unit
			continue
		}
		if len(values) != len(tot.Values) ||
			ing.Amount.Scalable != tot.Scalable ||
			ing.Amount.Unit != tot.Unit {
			return nil, fmt.Errorf("%s: %w", name, ErrInconsistentAmount)
		}
		for i, v := range values {
			tot.Values[i] += v
		}
	}
	out := make([]IngredientTotal, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	return out, nil
}

// Servings returns the numeric alternatives of the "servings" metadata
// key: ">> servings: 1|2|3" yields [1 2 3]. The second return is false
// when the key is absent or not numeric.
func (r *Recipe) Servings() ([]int, bool) {
	v, ok := r.Metadata["servings"]
	if !ok || v.Amount == nil {
		return nil, false
	}
	out := make([]int, 0, len(v.Amount.Quantities))
	for _, q := range v.Amount.Quantities {
		out = append(out, int(q.Value()))
	}
	return out, true
}
