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

import "github.com/skishore/fantasy-sub001/template"

// Wrapped pairs an expression with its cached canonical text, so callers
// that round-trip through storage or a wire format don't re-stringify an
// unchanged tree on every access.
type Wrapped struct {
	Expr Lambda
	Repr string
}

// Wrap builds a Wrapped from x, computing its canonical text once.
func Wrap(x Lambda) Wrapped {
	return Wrapped{Expr: x, Repr: Stringify(x)}
}

// Unwrap discards the cached text, returning the bare expression.
func Unwrap(w Wrapped) Lambda {
	return w.Expr
}

// LiftWrapped turns a Template over Lambda into a Template over Wrapped,
// re-deriving Repr from Expr on merge and dropping it before delegating
// a split to t.
func LiftWrapped(t Template) template.Template[Wrapped] {
	return template.Func[Wrapped]{
		MergeFn: func(args template.Arguments[Wrapped]) Wrapped {
			inner := make(template.Arguments[Lambda], len(args))
			for k, v := range args {
				inner[k] = v.Expr
			}

			return Wrap(t.Merge(inner))
		},
		SplitFn: func(input Wrapped) []template.Arguments[Wrapped] {
			candidates := t.Split(input.Expr)

			out := make([]template.Arguments[Wrapped], len(candidates))
			for i, c := range candidates {
				args := make(template.Arguments[Wrapped], len(c))
				for k, v := range c {
					args[k] = Wrap(v)
				}
				out[i] = args
			}

			return out
		},
	}
}
