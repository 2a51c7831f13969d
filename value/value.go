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

// Package value implements the JSON-like value domain: booleans, nulls,
// numbers, strings, ordered lists and keyed maps, plus the template
// constructors and grammar that let a piece of that syntax describe an
// invertible merge/split over it.
package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindDict
)

// Value is the recursive JSON-like sum: Null | Bool | Number | String |
// List<Value> | Dict<String,Value>.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	List   []Value
	Dict   map[string]Value
}

// Null is the shared zero value of the domain.
var Null = Value{Kind: KindNull}

// NewBool wraps b as a Value.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NewNumber wraps n as a Value.
func NewNumber(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// NewString wraps s as a Value.
func NewString(s string) Value { return Value{Kind: KindString, Str: s} }

// NewList wraps xs as a Value, normalizing an empty list to Null.
func NewList(xs []Value) Value {
	if len(xs) == 0 {
		return Null
	}

	return Value{Kind: KindList, List: xs}
}

// NewDict wraps m as a Value, normalizing an empty dict to Null.
func NewDict(m map[string]Value) Value {
	if len(m) == 0 {
		return Null
	}

	return Value{Kind: KindDict, Dict: m}
}

// IsNull reports whether v is the Null variant (not list/dict emptiness).
func IsNull(v Value) bool {
	return v.Kind == KindNull
}

// IsEmpty reports whether v is Null, an empty list, or an empty dict: the
// three shapes that are normalized to Null at template boundaries.
func IsEmpty(v Value) bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindList:
		return len(v.List) == 0
	case KindDict:
		return len(v.Dict) == 0
	default:
		return false
	}
}

// Normalize maps an empty list or empty dict to Null; every other value is
// returned unchanged.
func Normalize(v Value) Value {
	if IsEmpty(v) {
		return Null
	}

	return v
}

// SortedKeys returns m's keys in sorted order, used to get a deterministic
// enumeration for Split (dict key order is not semantically significant).
func SortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Equal reports deep, order-sensitive-for-lists equality between a and b.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		// Empty list and empty dict are equivalent to Null at comparison
		// time, matching the domain's own boundary normalization.
		return IsEmpty(a) && IsEmpty(b)
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(a.Dict) != len(b.Dict) {
			return false
		}
		for k, av := range a.Dict {
			bv, ok := b.Dict[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Stringify renders v as JSON-like text: "null", "true"/"false", a
// shortest-round-trip number, a quoted string, "[e1, e2, ...]" or
// `{"k1": v1, "k2": v2, ...}"` with keys in sorted order.
func Stringify(v Value) string {
	var b strings.Builder
	stringify(&b, v)

	return b.String()
}

func stringify(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindList:
		b.WriteByte('[')
		for i, item := range v.List {
			if i > 0 {
				b.WriteString(", ")
			}
			stringify(b, item)
		}
		b.WriteByte(']')
	case KindDict:
		b.WriteByte('{')
		keys := SortedKeys(v.Dict)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			stringify(b, v.Dict[k])
		}
		b.WriteByte('}')
	}
}
