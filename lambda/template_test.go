package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleTemplateMergeAndSplit(t *testing.T) {
	t.Parallel()

	s := Single("a")
	assert.True(t, Equal(MakeSingle("a"), s.Merge(Arguments{})))

	assert.NotEmpty(t, s.Split(MakeSingle("a")))
	assert.Empty(t, s.Split(MakeSingle("b")))
}

func TestVariableTemplateMergeAndSplit(t *testing.T) {
	t.Parallel()

	v := Variable(0)
	assert.True(t, IsNull(v.Merge(Arguments{})))
	assert.True(t, Equal(MakeSingle("x"), v.Merge(Arguments{0: MakeSingle("x")})))

	splits := v.Split(MakeSingle("y"))
	assert.Len(t, splits, 1)
	assert.True(t, Equal(MakeSingle("y"), splits[0][0]))
}

func TestUnaryTemplateAppliesInvolution(t *testing.T) {
	t.Parallel()

	u := Unary(Variable(0), OpDual)
	merged := u.Merge(Arguments{0: MakeSingle("a")})
	assert.Equal(t, "~a", Stringify(merged))

	splits := u.Split(MakeUnary(OpDual, MakeSingle("a")))
	assert.Len(t, splits, 1)
	assert.True(t, Equal(MakeSingle("a"), splits[0][0]))
}

func TestCustomTemplateRequiresAllChildrenNonNull(t *testing.T) {
	t.Parallel()

	c := Custom([]Template{Variable(0), Variable(1)}, "f")

	assert.True(t, IsNull(c.Merge(Arguments{0: MakeSingle("a")})))

	merged := c.Merge(Arguments{0: MakeSingle("a"), 1: MakeSingle("b")})
	assert.Equal(t, "f(a, b)", Stringify(merged))

	splits := c.Split(MakeCustom("f", []Lambda{MakeSingle("a"), MakeSingle("b")}))
	assert.Len(t, splits, 1)

	assert.Empty(t, c.Split(MakeCustom("g", []Lambda{MakeSingle("a"), MakeSingle("b")})))
}

func TestBinaryTemplateFlattensAndCollapses(t *testing.T) {
	t.Parallel()

	b := Binary([]Template{Variable(0), Variable(1), Variable(2)}, OpAnd)

	merged := b.Merge(Arguments{
		0: MakeSingle("a"),
		1: MakeSingle("b"),
		2: MakeSingle("c"),
	})
	assert.Equal(t, "a & b & c", Stringify(merged))
}

func TestBinaryTemplateNonCommutativeAbortsToNull(t *testing.T) {
	t.Parallel()

	b := Binary([]Template{Variable(0), Variable(1)}, OpDot)

	assert.True(t, IsNull(b.Merge(Arguments{0: MakeSingle("a")})))

	merged := b.Merge(Arguments{0: MakeSingle("a"), 1: MakeSingle("b")})
	assert.Equal(t, "a.b", Stringify(merged))
}

func TestBinaryTemplateSplitCommutativeEnumeratesSubsets(t *testing.T) {
	t.Parallel()

	b := Binary([]Template{Variable(0), Variable(1)}, OpAnd)

	splits := b.Split(MakeBinary(OpAnd, []Lambda{MakeSingle("a"), MakeSingle("b")}))
	assert.NotEmpty(t, splits)

	found := false
	for _, s := range splits {
		if Equal(s[0], MakeSingle("a")) && Equal(s[1], MakeSingle("b")) {
			found = true
		}
	}
	assert.True(t, found)
}
