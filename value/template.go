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

package value

import (
	"fmt"
	"sort"

	"github.com/skishore/fantasy-sub001/internal/base"
	"github.com/skishore/fantasy-sub001/template"
)

// Arguments is the value-domain instantiation of the generic template
// Arguments type.
type Arguments = template.Arguments[Value]

// Template is the value-domain instantiation of the generic Template
// interface.
type Template = template.Template[Value]

// ShapeError is raised by template coercion when a value is neither Null
// nor the expected container kind. It is a programmer error: the core
// never catches it internally.
type ShapeError struct {
	Want string
	Got  Value
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("value: expected %s or null, got %v", e.Want, Stringify(e.Got))
}

func coerceList(v Value) []Value {
	switch v.Kind {
	case KindNull:
		return nil
	case KindList:
		return v.List
	default:
		panic(ShapeError{Want: "list", Got: v})
	}
}

func coerceDict(v Value) map[string]Value {
	switch v.Kind {
	case KindNull:
		return nil
	case KindDict:
		return v.Dict
	default:
		panic(ShapeError{Want: "dict", Got: v})
	}
}

// Primitive merges to v unconditionally and splits to a single empty
// Arguments iff the input equals v, else to no splits.
func Primitive(v Value) Template {
	return template.Func[Value]{
		MergeFn: func(template.Arguments[Value]) Value { return v },
		SplitFn: func(input Value) []template.Arguments[Value] {
			if Equal(input, v) {
				return []template.Arguments[Value]{{}}
			}
			return nil
		},
	}
}

// Variable merges to args[i] (absent -> Null) and splits unconditionally
// to [{i: input}].
func Variable(i int) Template {
	return template.Func[Value]{
		MergeFn: func(args template.Arguments[Value]) Value {
			if v, ok := args[i]; ok {
				return v
			}
			return Null
		},
		SplitFn: func(input Value) []template.Arguments[Value] {
			return []template.Arguments[Value]{{i: input}}
		},
	}
}

// Singleton wraps t in an outer list of length 0 or 1, dropping a Null
// merge result rather than producing a one-element list containing Null.
func Singleton(t Template) Template {
	return template.Func[Value]{
		MergeFn: func(args template.Arguments[Value]) Value {
			inner := t.Merge(args)
			if IsNull(inner) {
				return Null
			}
			return NewList([]Value{inner})
		},
		SplitFn: func(input Value) []template.Arguments[Value] {
			xs := coerceList(input)
			if len(xs) > 1 {
				return nil
			}

			elem := Null
			if len(xs) == 1 {
				elem = xs[0]
			}

			return t.Split(elem)
		},
	}
}

// Concat is list concatenation: merge concatenates the coerced lists of
// a and b; split tries every partition point of the input list and
// cross-combines the two halves' splits.
func Concat(a, b Template) Template {
	return template.Func[Value]{
		MergeFn: func(args template.Arguments[Value]) Value {
			left := coerceList(a.Merge(args))
			right := coerceList(b.Merge(args))

			out := make([]Value, 0, len(left)+len(right))
			out = append(out, left...)
			out = append(out, right...)

			return NewList(out)
		},
		SplitFn: func(input Value) []template.Arguments[Value] {
			xs := coerceList(input)
			out := make([]template.Arguments[Value], 0)

			for i := 0; i <= len(xs); i++ {
				left := Normalize(NewList(append([]Value{}, xs[:i]...)))
				right := Normalize(NewList(append([]Value{}, xs[i:]...)))

				out = append(out, template.Cross(a.Split(left), b.Split(right))...)
			}

			return out
		},
	}
}

// Overlay is dict merge: at merge time b overrides a on key conflict;
// split enumerates every bipartition of the input's keys and
// cross-combines the two halves' splits.
func Overlay(a, b Template) Template {
	return template.Func[Value]{
		MergeFn: func(args template.Arguments[Value]) Value {
			left := coerceDict(a.Merge(args))
			right := coerceDict(b.Merge(args))

			out := make(map[string]Value, len(left)+len(right))
			for k, v := range left {
				out[k] = v
			}
			for k, v := range right {
				out[k] = v
			}

			return NewDict(out)
		},
		SplitFn: func(input Value) []template.Arguments[Value] {
			d := coerceDict(input)
			keys := SortedKeys(d)
			out := make([]template.Arguments[Value], 0)

			for mask := 0; mask < (1 << len(keys)); mask++ {
				sub := make(map[string]Value, len(keys))
				complement := make(map[string]Value, len(keys))

				for idx, k := range keys {
					if mask&(1<<idx) != 0 {
						sub[k] = d[k]
					} else {
						complement[k] = d[k]
					}
				}

				out = append(out, template.Cross(a.Split(NewDict(sub)), b.Split(NewDict(complement)))...)
			}

			return out
		},
	}
}

// Schema is the template for a fixed set of named fields: merge builds a
// dict including only keys whose child merges to a non-null value; split
// rejects any input key outside the schema, then cross-combines each
// schema key's split (sorted, absent input treated as Null).
func Schema(fields map[string]Template) Template {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return template.Func[Value]{
		MergeFn: func(args template.Arguments[Value]) Value {
			out := make(map[string]Value, len(fields))
			for _, k := range keys {
				field, ok := fields[k]
				v := base.MustPresent(field, ok, k).Merge(args)
				if !IsNull(v) {
					out[k] = v
				}
			}

			return NewDict(out)
		},
		SplitFn: func(input Value) []template.Arguments[Value] {
			d := coerceDict(input)
			for k := range d {
				if _, ok := fields[k]; !ok {
					return nil
				}
			}

			results := []template.Arguments[Value]{{}}
			for _, k := range keys {
				v, ok := d[k]
				if !ok {
					v = Null
				}

				field, ok := fields[k]
				results = template.Cross(results, base.MustPresent(field, ok, k).Split(v))
			}

			return results
		},
	}
}

// DictSpread is a spread operand `...$n` inside a dict literal: it
// contributes the whole variable value, which must itself be a dict.
func DictSpread(i int) Template {
	return Variable(i)
}

// Dict composes a sequence of dict items (fixed key/value groups or
// DictSpread placeholders) by folding Overlay over them in order, later
// items overriding earlier ones on key conflict. Split rejects empty or
// non-dict inputs.
func Dict(items []Template) Template {
	return rejectEmptyOrWrongShape(fold(items, Primitive(Null), Overlay), KindDict)
}

// ListSpread is a spread operand `...$n` inside a list literal: it
// contributes the whole variable value, which must itself be a list.
func ListSpread(i int) Template {
	return Variable(i)
}

// List composes a sequence of list items (each either Singleton-wrapped
// or a ListSpread placeholder) by folding Concat over them in order.
// Split rejects empty or non-list inputs.
func List(items []Template) Template {
	return rejectEmptyOrWrongShape(fold(items, Primitive(Null), Concat), KindList)
}

func fold(items []Template, zero Template, combine func(a, b Template) Template) Template {
	acc := zero
	for _, item := range items {
		acc = combine(acc, item)
	}

	return acc
}

func rejectEmptyOrWrongShape(inner Template, kind Kind) Template {
	return template.Func[Value]{
		MergeFn: inner.Merge,
		SplitFn: func(input Value) []template.Arguments[Value] {
			if IsEmpty(input) || input.Kind != kind {
				return nil
			}

			return inner.Split(input)
		},
	}
}
