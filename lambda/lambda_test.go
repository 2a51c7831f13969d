package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUnaryCollapsesInvolution(t *testing.T) {
	t.Parallel()

	a := MakeSingle("a")
	once := MakeUnary(OpDual, a)
	twice := MakeUnary(OpDual, once)

	assert.True(t, Equal(a, twice))
}

func TestMakeUnaryOfNullIsNull(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNull(MakeUnary(OpDual, Null)))
}

func TestFlattenBinaryInlinesSameOpChildren(t *testing.T) {
	t.Parallel()

	a, b, c := MakeSingle("a"), MakeSingle("b"), MakeSingle("c")
	ab := MakeBinary(OpAnd, []Lambda{a, b})
	abc := MakeBinary(OpAnd, []Lambda{ab, c})

	assert.Equal(t, KindBinary, abc.Kind)
	assert.Len(t, abc.Base, 3)
}

func TestCollapseBinaryArity(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNull(CollapseBinary(OpAnd, nil)))

	a := MakeSingle("a")
	assert.True(t, Equal(a, CollapseBinary(OpAnd, []Lambda{a})))

	assert.Equal(t, KindBinary, CollapseBinary(OpAnd, []Lambda{a, MakeSingle("b")}).Kind)
}

func TestEqualDistinguishesKinds(t *testing.T) {
	t.Parallel()

	assert.False(t, Equal(MakeSingle("a"), Null))
	assert.True(t, Equal(Null, Null))
}

func TestPrecedenceTable(t *testing.T) {
	t.Parallel()

	assert.Less(t, Precedence(OpDot), Precedence(OpDual))
	assert.Less(t, Precedence(OpDual), Precedence(OpAnd))
	assert.Less(t, Precedence(OpAnd), Precedence(OpBang))
	assert.True(t, Commutes(OpAnd))
	assert.True(t, Commutes(OpOr))
	assert.False(t, Commutes(OpDot))
}
