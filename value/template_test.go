package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skishore/fantasy-sub001/template"
)

func TestPrimitiveMergeAndSplit(t *testing.T) {
	t.Parallel()

	p := Primitive(NewNumber(3))
	assert.True(t, Equal(NewNumber(3), p.Merge(template.Arguments[Value]{})))

	splits := p.Split(NewNumber(3))
	assert.Len(t, splits, 1)
	assert.Empty(t, splits[0])

	assert.Empty(t, p.Split(NewNumber(4)))
}

func TestVariableMergeAndSplit(t *testing.T) {
	t.Parallel()

	v := Variable(0)
	assert.True(t, IsNull(v.Merge(template.Arguments[Value]{})))
	assert.True(t, Equal(NewNumber(5), v.Merge(template.Arguments[Value]{0: NewNumber(5)})))

	splits := v.Split(NewNumber(7))
	assert.Len(t, splits, 1)
	assert.True(t, Equal(NewNumber(7), splits[0][0]))
}

func TestSingletonDropsNullAndRejectsLongLists(t *testing.T) {
	t.Parallel()

	s := Singleton(Variable(0))
	assert.True(t, IsNull(s.Merge(template.Arguments[Value]{})))
	assert.True(t, Equal(NewList([]Value{NewNumber(1)}), s.Merge(template.Arguments[Value]{0: NewNumber(1)})))

	assert.Empty(t, s.Split(NewList([]Value{NewNumber(1), NewNumber(2)})))

	splits := s.Split(NewList([]Value{NewNumber(9)}))
	assert.Len(t, splits, 1)
	assert.True(t, Equal(NewNumber(9), splits[0][0]))
}

func TestConcatMergeAndSplit(t *testing.T) {
	t.Parallel()

	c := Concat(Variable(0), Variable(1))
	merged := c.Merge(template.Arguments[Value]{
		0: NewList([]Value{NewNumber(1)}),
		1: NewList([]Value{NewNumber(2), NewNumber(3)}),
	})
	assert.True(t, Equal(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}), merged))

	splits := c.Split(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}))
	// Every partition point 0..3 produces one cross-combined candidate.
	assert.Len(t, splits, 4)
}

func TestOverlaySplitEnumeratesBipartitions(t *testing.T) {
	t.Parallel()

	m := Overlay(Variable(0), Variable(1))
	merged := m.Merge(template.Arguments[Value]{
		0: NewDict(map[string]Value{"a": NewNumber(1)}),
		1: NewDict(map[string]Value{"a": NewNumber(2), "b": NewNumber(3)}),
	})
	assert.True(t, Equal(NewDict(map[string]Value{"a": NewNumber(2), "b": NewNumber(3)}), merged))

	splits := m.Split(NewDict(map[string]Value{"a": NewNumber(1), "b": NewNumber(2)}))
	assert.Len(t, splits, 4) // 2^2 bipartitions
}

func TestSchemaMergeDropsNullFieldsAndSplitRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	s := Schema(map[string]Template{"a": Variable(0), "b": Variable(1)})

	merged := s.Merge(template.Arguments[Value]{0: NewNumber(1)})
	assert.True(t, Equal(NewDict(map[string]Value{"a": NewNumber(1)}), merged))

	assert.Empty(t, s.Split(NewDict(map[string]Value{"c": NewNumber(1)})))

	splits := s.Split(NewDict(map[string]Value{"a": NewNumber(1), "b": NewNumber(2)}))
	assert.Len(t, splits, 1)
}

func TestListTemplateMergeAndSplit(t *testing.T) {
	t.Parallel()

	l := List([]Template{Singleton(Variable(0)), ListSpread(1)})
	merged := l.Merge(template.Arguments[Value]{
		0: NewNumber(1),
		1: NewList([]Value{NewNumber(2), NewNumber(3)}),
	})
	assert.True(t, Equal(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}), merged))

	splits := l.Split(NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)}))
	assert.NotEmpty(t, splits)

	found := false
	for _, s := range splits {
		if Equal(s[0], NewNumber(1)) && Equal(s[1], NewList([]Value{NewNumber(2), NewNumber(3)})) {
			found = true
		}
	}
	assert.True(t, found)

	assert.Empty(t, l.Split(Null))
}

func TestDictTemplateRejectsEmptyAndNonDict(t *testing.T) {
	t.Parallel()

	d := Dict([]Template{Schema(map[string]Template{"a": Variable(0)})})
	assert.Empty(t, d.Split(Null))
	assert.Empty(t, d.Split(NewList([]Value{NewNumber(1)})))
}
