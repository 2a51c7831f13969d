package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skishore/fantasy-sub001/template"
)

func TestParsePlainLiterals(t *testing.T) {
	t.Parallel()

	v, err := Parse("[1, 2, 3]")
	assert.NoError(t, err)
	assert.True(t, Equal(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}), v))

	v, err = Parse(`{a: 1, "b": 2}`)
	assert.NoError(t, err)
	assert.True(t, Equal(NewDict(map[string]Value{"a": NewNumber(1), "b": NewNumber(2)}), v))

	v, err = Parse("null")
	assert.NoError(t, err)
	assert.True(t, IsNull(v))

	v, err = Parse("'it''s fine'")
	assert.Error(t, err)
	_ = v
}

func TestParseTemplateMergeAndSplit(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate("[$0, ...$1]")
	assert.NoError(t, err)

	merged := tmpl.Merge(template.Arguments[Value]{
		0: NewNumber(1),
		1: NewList([]Value{NewNumber(2), NewNumber(3)}),
	})
	assert.True(t, Equal(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}), merged))

	splits := tmpl.Split(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}))
	found := false
	for _, s := range splits {
		if Equal(s[0], NewNumber(1)) && Equal(s[1], NewList([]Value{NewNumber(2), NewNumber(3)})) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseTemplateMalformedInputRaisesDiagnostic(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("[1, ")
	assert.Error(t, err)
}

func TestGrammarAcceptsSingleQuotedStrings(t *testing.T) {
	t.Parallel()

	v, err := Parse(`'hello "world"'`)
	assert.NoError(t, err)
	assert.True(t, Equal(NewString(`hello "world"`), v))
}
