/*
* Copyright (c) 2020 Ashley Jeffs
*
* Permission is hereby granted, free of charge, to any person obtaining a copy
* of this software and associated documentation files (the "Software"), to deal
* in the Software without restriction, including without limitation the rights
* to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
* copies of the Software, and to permit persons to whom the Software is
* furnished to do so, subject to the following conditions:
*
* The above copyright notice and this permission notice shall be included in
* all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
* IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
* FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
* AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
* LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
* OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
* THE SOFTWARE.
 */

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// variable is a minimal int-domain template, standing in for
// value.Variable/lambda.Variable in these domain-agnostic tests: it merges
// to args[i] (0 if absent) and splits unconditionally to [{i: input}].
func variable(i int) Template[int] {
	return Func[int]{
		MergeFn: func(args Arguments[int]) int {
			return args[i]
		},
		SplitFn: func(value int) []Arguments[int] {
			return []Arguments[int]{{i: value}}
		},
	}
}

func TestArgumentsCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := Arguments[int]{0: 1, 1: 2}
	clone := a.Clone()
	clone[0] = 99

	assert.Equal(t, 1, a[0])
	assert.Equal(t, 99, clone[0])
}

func TestCrossProducesPairwiseUnion(t *testing.T) {
	t.Parallel()

	xs := []Arguments[int]{{0: 1}, {0: 2}}
	ys := []Arguments[int]{{1: 10}, {1: 20}}

	got := Cross(xs, ys)

	assert.ElementsMatch(t, []Arguments[int]{
		{0: 1, 1: 10},
		{0: 1, 1: 20},
		{0: 2, 1: 10},
		{0: 2, 1: 20},
	}, got)
}

func TestCrossOverridesOnKeyConflict(t *testing.T) {
	t.Parallel()

	xs := []Arguments[int]{{0: 1}}
	ys := []Arguments[int]{{0: 2}}

	got := Cross(xs, ys)

	assert.Equal(t, []Arguments[int]{{0: 2}}, got)
}

func TestFuncAdaptsPlainFunctions(t *testing.T) {
	t.Parallel()

	var tmpl Template[int] = Func[int]{
		MergeFn: func(args Arguments[int]) int { return args[0] + args[1] },
		SplitFn: func(value int) []Arguments[int] { return []Arguments[int]{{0: value}} },
	}

	assert.Equal(t, 3, tmpl.Merge(Arguments[int]{0: 1, 1: 2}))
	assert.Equal(t, []Arguments[int]{{0: 5}}, tmpl.Split(5))
}

func intDataType() DataType[int] {
	return DataType[int]{
		IsBase:    func(int) bool { return true },
		IsNull:    func(v int) bool { return v == 0 },
		MakeBase:  func(v any) int { return v.(int) },
		MakeNull:  func() int { return 0 },
		Parse:     func(s string) (int, error) { return 0, nil },
		Stringify: func(v int) string { return "" },
	}
}

func TestReindexMergeRebuildsInternalSlots(t *testing.T) {
	t.Parallel()

	inner := variable(0)
	slots := []Slot{{ExternalIndex: 5}}
	r := Reindex(intDataType(), slots, inner)

	assert.Equal(t, 7, r.Merge(Arguments[int]{5: 7}))
}

func TestReindexMergeLeavesInternalOnlySlotEmpty(t *testing.T) {
	t.Parallel()

	// Two slots feeding a sum; slot 0 is internal-only (ExternalIndex < 0)
	// and must always read as absent from outer Arguments.
	inner := Func[int]{
		MergeFn: func(args Arguments[int]) int { return args[0] + args[1] },
		SplitFn: func(value int) []Arguments[int] { return []Arguments[int]{{0: 0, 1: value}} },
	}
	slots := []Slot{{ExternalIndex: -1}, {ExternalIndex: 3}}
	r := Reindex(intDataType(), slots, inner)

	assert.Equal(t, 9, r.Merge(Arguments[int]{3: 9}))
}

func TestReindexSplitRewritesKeysAndDropsInternal(t *testing.T) {
	t.Parallel()

	inner := Func[int]{
		MergeFn: func(Arguments[int]) int { return 0 },
		SplitFn: func(value int) []Arguments[int] {
			return []Arguments[int]{{0: 0, 1: value}}
		},
	}
	slots := []Slot{{ExternalIndex: -1}, {ExternalIndex: 4}}
	r := Reindex(intDataType(), slots, inner)

	assert.Equal(t, []Arguments[int]{{4: 7}}, r.Split(7))
}

func TestReindexSplitRejectsNonNullInternalOnlySlot(t *testing.T) {
	t.Parallel()

	inner := Func[int]{
		MergeFn: func(Arguments[int]) int { return 0 },
		SplitFn: func(value int) []Arguments[int] {
			return []Arguments[int]{{0: value}}
		},
	}
	slots := []Slot{{ExternalIndex: -1}}
	r := Reindex(intDataType(), slots, inner)

	assert.Empty(t, r.Split(7))
}

func TestReindexSplitRejectsNullInNonOptionalSlot(t *testing.T) {
	t.Parallel()

	inner := Func[int]{
		MergeFn: func(Arguments[int]) int { return 0 },
		SplitFn: func(value int) []Arguments[int] {
			return []Arguments[int]{{0: 0}}
		},
	}
	slots := []Slot{{ExternalIndex: 2, Optional: false}}
	r := Reindex(intDataType(), slots, inner)

	assert.Empty(t, r.Split(1))
}

func TestReindexSplitAcceptsNullInOptionalSlot(t *testing.T) {
	t.Parallel()

	inner := Func[int]{
		MergeFn: func(Arguments[int]) int { return 0 },
		SplitFn: func(value int) []Arguments[int] {
			return []Arguments[int]{{0: 0}}
		},
	}
	slots := []Slot{{ExternalIndex: 2, Optional: true}}
	r := Reindex(intDataType(), slots, inner)

	assert.Equal(t, []Arguments[int]{{2: 0}}, r.Split(1))
}
