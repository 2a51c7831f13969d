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

// Package lambda implements the lambda expression domain: a tree of
// associative binary operators, self-inverse unary operators, atomic
// identifiers and named n-ary function applications, plus the
// precedence-aware pretty-printer, template constructors and grammar that
// bind it to the template algebra.
package lambda

// Kind discriminates the variants of Lambda. Single, Unary, Binary and
// Custom are the four non-null shapes; KindNull hosts the parseable and
// printable "-" sentinel needed at the textual-format boundary, mirroring
// value.KindNull alongside value's own four JSON shapes.
type Kind int

const (
	KindNull Kind = iota
	KindSingle
	KindUnary
	KindBinary
	KindCustom
)

// The fixed set of operator symbols: three binary, two unary.
const (
	OpDot  = "."
	OpDual = "~"
	OpAnd  = "&"
	OpOr   = "|"
	OpBang = "!"
)

// Commutes reports whether op's binary operands may be freely permuted.
func Commutes(op string) bool {
	return op == OpAnd || op == OpOr
}

// Precedence returns op's precedence number; a lower number binds
// tighter: the grammar parses '.' chains innermost and '&'/'|' outermost,
// and Stringify parenthesizes a child whose number is at least its
// parent's. Only relevant to printing and to the surface grammar:
// algebraic operations act on the normalized tree regardless of
// precedence.
func Precedence(op string) int {
	switch op {
	case OpDot:
		return 0
	case OpDual:
		return 1
	case OpAnd, OpOr:
		return 2
	case OpBang:
		return 3
	default:
		return 0
	}
}

// Lambda is the recursive lambda-expression sum.
type Lambda struct {
	Kind Kind
	Name string   // Single
	Op   string   // Unary, Binary, Custom
	Base []Lambda // Unary: exactly one element; Binary/Custom: the operand/argument list
}

// Null is the canonical "no lambda" sentinel, printed and parsed as "-".
var Null = Lambda{Kind: KindNull}

// IsNull reports whether x is the Null sentinel.
func IsNull(x Lambda) bool {
	return x.Kind == KindNull
}

// MakeSingle builds an atom.
func MakeSingle(name string) Lambda {
	return Lambda{Kind: KindSingle, Name: name}
}

// MakeCustom builds a named n-ary function application.
func MakeCustom(op string, args []Lambda) Lambda {
	return Lambda{Kind: KindCustom, Op: op, Base: args}
}

// MakeUnary applies the involution op to base, normalizing
// Unary{op, Unary{op, x}} down to x. Applying a unary to Null yields Null.
func MakeUnary(op string, base Lambda) Lambda {
	if IsNull(base) {
		return Null
	}

	if base.Kind == KindUnary && base.Op == op {
		return base.Base[0]
	}

	return Lambda{Kind: KindUnary, Op: op, Base: []Lambda{base}}
}

// FlattenBinary inlines any operand that is itself a Binary node of the
// same op into the returned operand list, so no Binary{op} ever nests a
// child Binary{op}.
func FlattenBinary(op string, operands []Lambda) []Lambda {
	out := make([]Lambda, 0, len(operands))

	for _, o := range operands {
		if o.Kind == KindBinary && o.Op == op {
			out = append(out, o.Base...)
			continue
		}

		out = append(out, o)
	}

	return out
}

// CollapseBinary normalizes a flattened operand list: zero operands
// collapses to Null, one operand collapses to itself, otherwise it's
// wrapped as Binary{op, operands}.
func CollapseBinary(op string, operands []Lambda) Lambda {
	switch len(operands) {
	case 0:
		return Null
	case 1:
		return operands[0]
	default:
		return Lambda{Kind: KindBinary, Op: op, Base: operands}
	}
}

// MakeBinary flattens then collapses operands under op: the smart
// constructor every binary-tree-building site should go through to keep
// the flatten and collapse invariants intact.
func MakeBinary(op string, operands []Lambda) Lambda {
	return CollapseBinary(op, FlattenBinary(op, operands))
}

// Equal reports structural equality: two Binary nodes with the same
// (unordered, for commutative ops) multiset of operands compare equal
// only if constructed in the same normalized shape — callers that need
// permutation-insensitive comparison should compare Stringify output
// instead, since commutative printing already canonicalizes operand order.
func Equal(a, b Lambda) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindSingle:
		return a.Name == b.Name
	case KindUnary:
		return a.Op == b.Op && Equal(a.Base[0], b.Base[0])
	case KindBinary, KindCustom:
		if a.Op != b.Op || len(a.Base) != len(b.Base) {
			return false
		}
		for i := range a.Base {
			if !Equal(a.Base[i], b.Base[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
