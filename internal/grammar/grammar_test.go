package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDocument(t *testing.T) {
	doc, err := New(nil).Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Steps)
	assert.Empty(t, doc.Properties)
}

func TestBlankAndCommentLinesCollapse(t *testing.T) {
	src := "\n\n// a comment line\n   \n// another\n\n"
	doc, err := New(nil).Parse(src)
	require.NoError(t, err)
	assert.Empty(t, doc.Steps)
	assert.Empty(t, doc.Properties)
}

func TestProseOnlyStep(t *testing.T) {
	doc, err := New(nil).Parse("Preheat the oven.\n")
	require.NoError(t, err)
	require.Len(t, doc.Steps, 1)
	require.Len(t, doc.Steps[0].Segments, 1)
	assert.Equal(t, "Preheat the oven.", doc.Steps[0].Segments[0].(Text).Value)
}

func TestIngredientForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Ingredient
		rest string // trailing text segment, "" for none
	}{
		{
			name: "bare name",
			src:  "Add @salt to taste.",
			want: Ingredient{Name: "salt"},
			rest: " to taste.",
		},
		{
			name: "amount with unit",
			src:  "Add @flour{200%g}",
			want: Ingredient{Name: "flour", Amount: &Amount{
				Quantities: []Quantity{{Components: []int{200}}},
				Unit:       "g",
			}},
		},
		{
			name: "descriptive words before bracket",
			src:  "Add @flour plain{200%g}",
			want: Ingredient{Name: "flour", Detail: "plain", Amount: &Amount{
				Quantities: []Quantity{{Components: []int{200}}},
				Unit:       "g",
			}},
		},
		{
			name: "empty bracket",
			src:  "Add @salt{}",
			want: Ingredient{Name: "salt"},
		},
		{
			name: "note without bracket",
			src:  "Add @eggs(beaten)",
			want: Ingredient{Name: "eggs", Note: "beaten"},
		},
		{
			name: "scalable fraction with note",
			src:  "Get @fruit salat ananas{1/2*}(washed)",
			want: Ingredient{Name: "fruit", Detail: "salat ananas", Note: "washed", Amount: &Amount{
				Quantities: []Quantity{{Components: []int{1, 2}}},
				Scalable:   true,
			}},
		},
		{
			name: "space before bracket",
			src:  "Add @flour {200%g}",
			want: Ingredient{Name: "flour", Amount: &Amount{
				Quantities: []Quantity{{Components: []int{200}}},
				Unit:       "g",
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New(nil).Parse(tt.src + "\n")
			require.NoError(t, err)
			require.Len(t, doc.Steps, 1)
			segs := doc.Steps[0].Segments

			ing, ok := segs[1].(*Ingredient)
			require.True(t, ok, "second segment should be the ingredient")
			assert.Equal(t, tt.want.Name, ing.Name)
			assert.Equal(t, tt.want.Detail, ing.Detail)
			assert.Equal(t, tt.want.Note, ing.Note)
			assert.Equal(t, tt.want.Amount, ing.Amount)

			if tt.rest == "" {
				assert.Len(t, segs, 2)
			} else {
				require.Len(t, segs, 3)
				assert.Equal(t, tt.rest, segs[2].(Text).Value)
			}
		})
	}
}

func TestCookwareForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Cookware
	}{
		{"bare", "Use the #pan", Cookware{Name: "pan"}},
		{"empty bracket", "Use the #stove{}", Cookware{Name: "stove"}},
		{
			"multiword with empty bracket",
			"Use the #big potato masher{}",
			Cookware{Name: "big", Detail: "potato masher"},
		},
		{
			"quantified",
			"Use the #skewer{4}",
			Cookware{Name: "skewer", Amount: &Amount{Quantities: []Quantity{{Components: []int{4}}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New(nil).Parse(tt.src + "\n")
			require.NoError(t, err)
			require.Len(t, doc.Steps, 1)
			cw, ok := doc.Steps[0].Segments[1].(*Cookware)
			require.True(t, ok)
			assert.Equal(t, tt.want.Name, cw.Name)
			assert.Equal(t, tt.want.Detail, cw.Detail)
			assert.Equal(t, tt.want.Amount, cw.Amount)
		})
	}
}

func TestTimer(t *testing.T) {
	doc, err := New(nil).Parse("Start the timer ~{10%minutes}\n")
	require.NoError(t, err)
	require.Len(t, doc.Steps, 1)
	tm, ok := doc.Steps[0].Segments[1].(*Timer)
	require.True(t, ok)
	assert.Equal(t, []Quantity{{Components: []int{10}}}, tm.Amount.Quantities)
	assert.Equal(t, "minutes", tm.Amount.Unit)
}

func TestEmptyTimerBracketIsError(t *testing.T) {
	_, err := New(nil).Parse("wait ~{}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTimerAmount)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 1, ge.Pos.Line)
	assert.Equal(t, 7, ge.Pos.Col)
}

func TestLoneMarkersStayProse(t *testing.T) {
	doc, err := New(nil).Parse("email me @ home ~ now # ok\n")
	require.NoError(t, err)
	require.Len(t, doc.Steps, 1)
	require.Len(t, doc.Steps[0].Segments, 1)
	assert.Equal(t, "email me @ home ~ now # ok", doc.Steps[0].Segments[0].(Text).Value)
}

func TestTabsAreNotSkipped(t *testing.T) {
	doc, err := New(nil).Parse("a\tb\n")
	require.NoError(t, err)
	assert.Equal(t, "a\tb", doc.Steps[0].Segments[0].(Text).Value)
}

func TestTrailingCommentStripped(t *testing.T) {
	doc, err := New(nil).Parse("#pan // non-stick\n")
	require.NoError(t, err)
	require.Len(t, doc.Steps, 1)
	require.Len(t, doc.Steps[0].Segments, 1)
	cw, ok := doc.Steps[0].Segments[0].(*Cookware)
	require.True(t, ok)
	assert.Equal(t, "pan", cw.Name)
}

func TestProperties(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		key        string
		wantText   string
		wantAmount *Amount
	}{
		{
			name:       "numeric value",
			src:        ">> servings: 4\n",
			key:        "servings",
			wantAmount: &Amount{Quantities: []Quantity{{Components: []int{4}}}},
		},
		{
			name: "alternatives",
			src:  ">> servings: 1|2|3\n",
			key:  "servings",
			wantAmount: &Amount{Quantities: []Quantity{
				{Components: []int{1}},
				{Components: []int{2}},
				{Components: []int{3}},
			}},
		},
		{
			name:     "bare name value",
			src:      ">> source: grandma\n",
			key:      "source",
			wantText: "grandma",
		},
		{
			name:     "trailing comment stripped",
			src:      ">> value: key // This is a comment\n",
			key:      "value",
			wantText: "key",
		},
		{
			name:     "spaces around colon",
			src:      ">>  cuisine  :  french riviera\n",
			key:      "cuisine",
			wantText: "french riviera",
		},
		{
			name:     "mixed value stays text",
			src:      ">> time: 45 minutes\n",
			key:      "time",
			wantText: "45 minutes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New(nil).Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, doc.Properties, 1)
			prop := doc.Properties[0]
			assert.Equal(t, tt.key, prop.Key)
			assert.Equal(t, tt.wantText, prop.Text)
			assert.Equal(t, tt.wantAmount, prop.Amount)
		})
	}
}

func TestPropertiesInterleaveWithSteps(t *testing.T) {
	src := "Mix the @batter{}\n>> servings: 2\nBake it\n"
	doc, err := New(nil).Parse(src)
	require.NoError(t, err)
	assert.Len(t, doc.Steps, 2)
	assert.Len(t, doc.Properties, 1)
}

func TestMalformedProperty(t *testing.T) {
	_, err := New(nil).Parse(">> key value\n")
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Contains(t, ge.Expected, ":")
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := New(nil).Parse("ok line\n@flour{/2}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedAmount)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 2, ge.Pos.Line)
	assert.Equal(t, 8, ge.Pos.Col)
}

func TestParseLenientQuarantinesBadLines(t *testing.T) {
	src := "good @egg\nwait ~{}\nalso fine\n"
	doc, errs := New(nil).ParseLenient(src)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
	assert.ErrorIs(t, errs[0].Err, ErrEmptyTimerAmount)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "also fine", doc.Steps[1].Segments[0].(Text).Value)
}

func TestParseLenientAllValid(t *testing.T) {
	doc, errs := New(nil).ParseLenient("just prose\n")
	assert.Empty(t, errs)
	assert.Len(t, doc.Steps, 1)
}

func TestStrictParseIsAllOrNothing(t *testing.T) {
	doc, err := New(nil).Parse("fine\n@bad{%g}\nfine too\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAmount))
	assert.Nil(t, doc)
}

func TestOriginalCorpusDocument(t *testing.T) {
	src := ">> value: key // This is a comment\n" +
		"// A comment line\n" +
		">> servings: 1|2|3\n" +
		"Get some @fruit salat ananas{1/2*}(washed) and pull it\n" +
		"Use the #big potato masher{}\n" +
		"Start the timer ~{10%minutes}\n"
	doc, err := New(nil).Parse(src)
	require.NoError(t, err)
	assert.Len(t, doc.Properties, 2)
	require.Len(t, doc.Steps, 3)

	ing := doc.Steps[0].Segments[1].(*Ingredient)
	assert.Equal(t, "fruit", ing.Name)
	assert.Equal(t, "salat ananas", ing.Detail)
	assert.Equal(t, "washed", ing.Note)
	assert.True(t, ing.Amount.Scalable)

	cw := doc.Steps[1].Segments[1].(*Cookware)
	assert.Equal(t, "big", cw.Name)
	assert.Equal(t, "potato masher", cw.Detail)
	assert.Nil(t, cw.Amount)

	tm := doc.Steps[2].Segments[1].(*Timer)
	assert.Equal(t, "minutes", tm.Amount.Unit)
}

func TestNoTrailingNewline(t *testing.T) {
	doc, err := New(nil).Parse("Add @salt")
	require.NoError(t, err)
	require.Len(t, doc.Steps, 1)
	ing := doc.Steps[0].Segments[1].(*Ingredient)
	assert.Equal(t, "salt", ing.Name)
}
