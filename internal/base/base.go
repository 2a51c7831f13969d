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

// Package base collects the handful of generic helpers shared by the
// parser, template, value and lambda packages: nothing here knows about
// grammars or template algebra.
package base

import "strings"

// Flatten concatenates a sequence of sequences into one, preserving order.
func Flatten[T any](xss [][]T) []T {
	total := 0
	for _, xs := range xss {
		total += len(xs)
	}

	out := make([]T, 0, total)
	for _, xs := range xss {
		out = append(out, xs...)
	}

	return out
}

// Range returns the integers [0, n) in order.
func Range(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// SwapQuotes exchanges every single and double quote character in s,
// used to move a single-quoted literal into double-quoted form (and back)
// without touching any other character.
func SwapQuotes(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'':
			return '"'
		case '"':
			return '\''
		default:
			return r
		}
	}, s)
}

// QuoteLiteral renders lit as a quoted string suitable for an "expected"
// diagnostic, swapping the quote style when lit itself carries a double
// quote so the result never needs escaping.
func QuoteLiteral(lit string) string {
	if strings.ContainsRune(lit, '"') {
		return "'" + SwapQuotes(lit) + "'"
	}

	return `"` + lit + `"`
}

// MustPresent asserts that a nullable lookup actually found something,
// panicking with name otherwise. It exists so call sites that already know
// a key must be present (by construction) don't have to re-check err styles.
func MustPresent[T any](value T, ok bool, name string) T {
	if !ok {
		panic("base: required value absent: " + name)
	}

	return value
}
