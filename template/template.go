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

// Package template defines the invertible template algebra: a Template[T]
// is a pair of pure functions, Merge and Split, over a value domain T. The
// value and lambda packages each bind a concrete T (and a DataType[T]
// grammar) to this abstraction.
package template

// Arguments is a sparse mapping from a non-negative integer slot index to
// a domain value. Absence of a key is distinct from a key mapped to the
// domain's own null value.
type Arguments[T any] map[int]T

// Clone returns a shallow copy of a, safe to mutate independently.
func (a Arguments[T]) Clone() Arguments[T] {
	out := make(Arguments[T], len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Template is an invertible function pair over a value domain T. Merge is
// total over well-shaped arguments. Split may return an empty sequence
// when the value has no preimage under this template.
type Template[T any] interface {
	Merge(args Arguments[T]) T
	Split(value T) []Arguments[T]
}

// Func adapts a pair of plain functions into a Template, for constructors
// that don't need any other method or state.
type Func[T any] struct {
	MergeFn func(Arguments[T]) T
	SplitFn func(T) []Arguments[T]
}

func (f Func[T]) Merge(args Arguments[T]) T {
	return f.MergeFn(args)
}

func (f Func[T]) Split(value T) []Arguments[T] {
	return f.SplitFn(value)
}

// DataType binds a value domain to its template grammar.
type DataType[T any] struct {
	IsBase    func(T) bool
	IsNull    func(T) bool
	MakeBase  func(any) T
	MakeNull  func() T
	Parse     func(string) (T, error)
	Stringify func(T) string
	Template  func(string) (Template[T], error)
}

// Cross produces the pairwise union of two argument-assignment lists: the
// Cartesian product in which each output mapping is the union of one
// mapping from xs with one mapping from ys. It is the associative
// combinator used to compose Split over sequenced sub-templates.
func Cross[T any](xs, ys []Arguments[T]) []Arguments[T] {
	out := make([]Arguments[T], 0, len(xs)*len(ys))

	for _, x := range xs {
		for _, y := range ys {
			combined := x.Clone()
			for k, v := range y {
				combined[k] = v
			}

			out = append(out, combined)
		}
	}

	return out
}

// Slot describes one externally-numbered argument of a Reindex-ed
// template. A negative ExternalIndex marks an internal slot that must
// stay empty (absent, or bound to null) in any accepted split, whatever
// its Optional flag.
type Slot struct {
	ExternalIndex int
	Optional      bool
}

// Reindex adapts inner, which addresses slots 0..len(slots)-1, to operate
// against externally numbered, possibly-optional slots.
func Reindex[T any](dt DataType[T], slots []Slot, inner Template[T]) Template[T] {
	return Func[T]{
		MergeFn: func(external Arguments[T]) T {
			internal := make(Arguments[T], len(slots))

			for i, slot := range slots {
				if slot.ExternalIndex < 0 {
					continue
				}

				if v, ok := external[slot.ExternalIndex]; ok {
					internal[i] = v
				}
			}

			return inner.Merge(internal)
		},
		SplitFn: func(value T) []Arguments[T] {
			candidates := inner.Split(value)
			out := make([]Arguments[T], 0, len(candidates))

			for _, internal := range candidates {
				if !acceptsSlots(dt, slots, internal) {
					continue
				}

				out = append(out, rewriteSlots(slots, internal))
			}

			return out
		},
	}
}

func acceptsSlots[T any](dt DataType[T], slots []Slot, internal Arguments[T]) bool {
	for i, slot := range slots {
		v, bound := internal[i]

		if slot.ExternalIndex < 0 {
			if bound && !dt.IsNull(v) {
				return false
			}

			continue
		}

		if !slot.Optional && bound && dt.IsNull(v) {
			return false
		}
	}

	return true
}

func rewriteSlots[T any](slots []Slot, internal Arguments[T]) Arguments[T] {
	external := make(Arguments[T], len(slots))

	for i, slot := range slots {
		if slot.ExternalIndex < 0 {
			continue
		}

		if v, ok := internal[i]; ok {
			external[slot.ExternalIndex] = v
		}
	}

	return external
}
