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

package lambda

import (
	"github.com/skishore/fantasy-sub001/internal/base"
	"github.com/skishore/fantasy-sub001/template"
)

// Arguments is the lambda-domain instantiation of the generic template
// Arguments type.
type Arguments = template.Arguments[Lambda]

// Template is the lambda-domain instantiation of the generic Template
// interface.
type Template = template.Template[Lambda]

// Single merges to Single{name}; split succeeds iff the input is
// Single{name}.
func Single(name string) Template {
	want := MakeSingle(name)

	return template.Func[Lambda]{
		MergeFn: func(template.Arguments[Lambda]) Lambda { return want },
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			if Equal(input, want) {
				return []template.Arguments[Lambda]{{}}
			}
			return nil
		},
	}
}

// Variable merges to args[i] (absent -> Null) and splits unconditionally
// to [{i: input}].
func Variable(i int) Template {
	return template.Func[Lambda]{
		MergeFn: func(args template.Arguments[Lambda]) Lambda {
			if v, ok := args[i]; ok {
				return v
			}
			return Null
		},
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			return []template.Arguments[Lambda]{{i: input}}
		},
	}
}

// Unary applies the involution op to t's merge; split inverts by applying
// the same involution to the input before delegating to t.Split. This
// only works for involutions (op(op(x)) = x). Null inputs/outputs stay
// null.
func Unary(t Template, op string) Template {
	return template.Func[Lambda]{
		MergeFn: func(args template.Arguments[Lambda]) Lambda {
			return MakeUnary(op, t.Merge(args))
		},
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			if IsNull(input) {
				return t.Split(Null)
			}

			return t.Split(MakeUnary(op, input))
		},
	}
}

// Custom builds Custom{op, base} only if every child merges non-null
// (otherwise the whole thing merges to Null). Split requires the input to
// be Custom{op} of matching arity when non-null, zipping children against
// the input's base and cross-combining; for a null input it flattens the
// childwise split(null) results.
func Custom(children []Template, op string) Template {
	return template.Func[Lambda]{
		MergeFn: func(args template.Arguments[Lambda]) Lambda {
			built := make([]Lambda, len(children))

			for i, c := range children {
				v := c.Merge(args)
				if IsNull(v) {
					return Null
				}
				built[i] = v
			}

			return MakeCustom(op, built)
		},
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			if IsNull(input) {
				out := make([][]template.Arguments[Lambda], len(children))
				for i, c := range children {
					out[i] = c.Split(Null)
				}
				return base.Flatten(out)
			}

			if input.Kind != KindCustom || input.Op != op || len(input.Base) != len(children) {
				return nil
			}

			results := []template.Arguments[Lambda]{{}}
			for i, c := range children {
				results = template.Cross(results, c.Split(input.Base[i]))
			}

			return results
		},
	}
}

// Binary is constructed by a left fold of concat(_, _, op) over children,
// starting from the first child, so a single node models the whole
// associative operator. An empty children list merges to Null.
func Binary(children []Template, op string) Template {
	var acc Template = template.Func[Lambda]{
		MergeFn: func(template.Arguments[Lambda]) Lambda { return Null },
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			if IsNull(input) {
				return []template.Arguments[Lambda]{{}}
			}
			return nil
		},
	}

	if len(children) > 0 {
		acc = children[0]
		for _, c := range children[1:] {
			acc = binaryConcat(acc, c, op)
		}
	}

	return acc
}

// expandForOp inlines x's operands if x is itself a Binary{op} node, drops
// x entirely if it is Null, and otherwise treats x as a single operand.
func expandForOp(op string, x Lambda) []Lambda {
	if IsNull(x) {
		return nil
	}

	if x.Kind == KindBinary && x.Op == op {
		return x.Base
	}

	return []Lambda{x}
}

func binaryConcat(a, b Template, op string) Template {
	return template.Func[Lambda]{
		MergeFn: func(args template.Arguments[Lambda]) Lambda {
			left := a.Merge(args)
			right := b.Merge(args)

			if !Commutes(op) && (IsNull(left) || IsNull(right)) {
				return Null
			}

			operands := make([]Lambda, 0, 2)
			operands = append(operands, expandForOp(op, left)...)
			operands = append(operands, expandForOp(op, right)...)

			return CollapseBinary(op, operands)
		},
		SplitFn: func(input Lambda) []template.Arguments[Lambda] {
			operands := expandForOp(op, input)

			if !Commutes(op) && len(operands) == 0 {
				return base.Flatten([][]template.Arguments[Lambda]{a.Split(Null), b.Split(Null)})
			}

			var out []template.Arguments[Lambda]

			for _, mask := range binaryPartitions(op, len(operands)) {
				left := collapseMasked(op, operands, mask, true)
				right := collapseMasked(op, operands, mask, false)

				out = append(out, template.Cross(a.Split(left), b.Split(right))...)
			}

			return out
		},
	}
}

// binaryPartitions enumerates the bit masks describing how to split a
// base operand list of length n into a (leftBits, rightBits) pair: every
// 2^n subset when op commutes, or only the n-1 contiguous order-preserving
// splits (1<<(k+1))-1 for k in [0, n-1) when it doesn't.
func binaryPartitions(op string, n int) []int {
	if Commutes(op) {
		return base.Range(1 << n)
	}

	if n == 0 {
		return nil
	}

	masks := make([]int, 0, n-1)
	for k := 0; k < n-1; k++ {
		masks = append(masks, (1<<(k+1))-1)
	}

	return masks
}

func collapseMasked(op string, operands []Lambda, mask int, wantSet bool) Lambda {
	picked := make([]Lambda, 0, len(operands))

	for i, x := range operands {
		bit := mask&(1<<i) != 0
		if bit == wantSet {
			picked = append(picked, x)
		}
	}

	return CollapseBinary(op, picked)
}
