package cooklang

import (
	"fmt"
	"sort"
	"strings"
)

// Render writes the recipe back as minimal CookLang text: metadata lines
// first (sorted by key for determinism), then one line per step.
// Re-parsing the output yields an equivalent recipe; comments from the
// original source are gone by then, having been stripped at parse time.
func (r *Recipe) Render() string {
	var b strings.Builder
	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, ">> %s: %s\n", k, r.Metadata[k])
	}
	for _, st := range r.Steps {
		b.WriteString(st.Text())
		b.WriteByte('\n')
	}
	return b.String()
}

// Text renders the step by concatenating its segments in order.
func (s Step) Text() string {
	var b strings.Builder
	for _, seg := range s.Segments {
		b.WriteString(seg.String())
	}
	return b.String()
}

func (t Text) String() string { return string(t) }

// String renders the ingredient in minimal source form: "@name" when
// nothing else is attached, with the bracket restored whenever the
// token carries descriptive words or an amount.
func (i *Ingredient) String() string {
	var b strings.Builder
	b.WriteByte('@')
	b.WriteString(i.Name)
	if i.Detail != "" {
		b.WriteByte(' ')
		b.WriteString(i.Detail)
	}
	if i.Detail != "" || i.Amount != nil {
		b.WriteByte('{')
		if i.Amount != nil {
			b.WriteString(i.Amount.String())
		}
		b.WriteByte('}')
	}
	if i.Note != "" {
		b.WriteByte('(')
		b.WriteString(i.Note)
		b.WriteByte(')')
	}
	return b.String()
}

// String renders the cookware token in minimal source form.
func (c *Cookware) String() string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(c.Name)
	if c.Detail != "" {
		b.WriteByte(' ')
		b.WriteString(c.Detail)
	}
	if c.Detail != "" || c.Amount != nil {
		b.WriteByte('{')
		if c.Amount != nil {
			b.WriteString(c.Amount.String())
		}
		b.WriteByte('}')
	}
	return b.String()
}

// String renders the timer token in source form.
func (t *Timer) String() string {
	return "~{" + t.Amount.String() + "}"
}
