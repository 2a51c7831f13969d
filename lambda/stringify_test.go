package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringifyFlattenedAndSorted(t *testing.T) {
	t.Parallel()

	a, b, c := MakeSingle("a"), MakeSingle("b"), MakeSingle("c")
	x := MakeBinary(OpAnd, []Lambda{c, a, b})

	assert.Equal(t, "a & b & c", Stringify(x))
}

func TestStringifyNonCommutativeKeepsOrder(t *testing.T) {
	t.Parallel()

	a, b := MakeSingle("a"), MakeSingle("b")
	x := MakeBinary(OpDot, []Lambda{b, a})

	assert.Equal(t, "b.a", Stringify(x))
}

func TestStringifyBangPrintsRBrackets(t *testing.T) {
	t.Parallel()

	x := MakeUnary(OpBang, MakeSingle("a"))
	assert.Equal(t, "R[a]", Stringify(x))
}

func TestStringifyWrapsLooserChildInsideTighterParent(t *testing.T) {
	t.Parallel()

	a, b, c := MakeSingle("a"), MakeSingle("b"), MakeSingle("c")
	and := MakeBinary(OpAnd, []Lambda{a, b})
	dot := MakeBinary(OpDot, []Lambda{and, c})

	assert.Equal(t, "(a & b).c", Stringify(dot))
}

func TestStringifyDotInsideAndNeedsNoParens(t *testing.T) {
	t.Parallel()

	a, b, c, d := MakeSingle("a"), MakeSingle("b"), MakeSingle("c"), MakeSingle("d")
	ab := MakeBinary(OpDot, []Lambda{a, b})
	cd := MakeBinary(OpDot, []Lambda{c, d})
	and := MakeBinary(OpAnd, []Lambda{ab, cd})

	assert.Equal(t, "a.b & c.d", Stringify(and))
}

func TestStringifyNull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", Stringify(Null))
}
