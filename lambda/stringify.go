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
	"sort"
	"strings"
)

// infinitePrecedence is the printing context passed to a node's children
// when nothing above it could ever require parentheses (the root call,
// and anything already delimited by its own brackets or parens).
const infinitePrecedence = 1 << 30

// Stringify renders x in canonical textual form. For commutative
// operators, the printed operand pieces are sorted lexicographically so
// that distinct-but-equivalent trees stringify identically.
func Stringify(x Lambda) string {
	return stringify(x, infinitePrecedence)
}

func stringify(x Lambda, context int) string {
	switch x.Kind {
	case KindNull:
		return "-"

	case KindSingle:
		return x.Name

	case KindUnary:
		if x.Op == OpBang {
			return "R[" + stringify(x.Base[0], infinitePrecedence) + "]"
		}

		p := Precedence(x.Op)
		body := x.Op + stringify(x.Base[0], p)

		return wrap(body, p, context)

	case KindBinary:
		p := Precedence(x.Op)
		parts := make([]string, len(x.Base))
		for i, o := range x.Base {
			parts[i] = stringify(o, p)
		}

		if Commutes(x.Op) {
			sort.Strings(parts)
		}

		var body string
		if x.Op == OpDot {
			body = strings.Join(parts, ".")
		} else {
			body = strings.Join(parts, " "+x.Op+" ")
		}

		return wrap(body, p, context)

	case KindCustom:
		args := make([]string, len(x.Base))
		for i, a := range x.Base {
			args[i] = stringify(a, infinitePrecedence)
		}

		return x.Op + "(" + strings.Join(args, ", ") + ")"

	default:
		return "-"
	}
}

func wrap(body string, p, context int) string {
	if p >= context {
		return "(" + body + ")"
	}

	return body
}
