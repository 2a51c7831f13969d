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

// Package parser implements a minimalistic parser combinators engine.
//
// A Parser is a pure function from (input, position) to an Output record.
// Parsers never panic or raise on a local mismatch: failure is encoded in
// the Output so that error accumulation across Any/All stays deterministic.
// Only the top-level Parse converts an accumulated failure into a raised
// *ParseError.
package parser

import "sort"

// Stop is the parser bookkeeping record tracking the furthest failure
// reached by a parser invocation: the set of term descriptions that would
// have been accepted, and the position at which none of them matched.
type Stop struct {
	Expected []string
	Position int
}

// noStop is the sentinel "no failure recorded yet" Stop: its Position is
// below any real input position, so it always loses a merge.
var noStop = Stop{Position: -1}

// mergeStop applies the Stop update rule: the stop with the greater
// position wins; on a tie the expected sets are unioned.
func mergeStop(running, incoming Stop) Stop {
	if incoming.Position > running.Position {
		return Stop{Expected: append([]string(nil), incoming.Expected...), Position: incoming.Position}
	}

	if incoming.Position < running.Position {
		return running
	}

	merged := make([]string, 0, len(running.Expected)+len(incoming.Expected))
	merged = append(merged, running.Expected...)
	merged = append(merged, incoming.Expected...)

	return Stop{Expected: merged, Position: running.Position}
}

// dedupSorted deduplicates and sorts a set of expected terms, used only at
// diagnostic-formatting time (the running Stop itself stays unsorted).
func dedupSorted(expected []string) []string {
	seen := make(map[string]struct{}, len(expected))
	out := make([]string, 0, len(expected))

	for _, e := range expected {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	sort.Strings(out)

	return out
}

// Output is the result of applying a parser at a given position.
type Output struct {
	Furthest Stop
	Success  bool
	Position int
	Result   any
}

func success(result any, position int, furthest Stop) Output {
	return Output{Furthest: furthest, Success: true, Position: position, Result: result}
}

func failure(position int, furthest Stop) Output {
	return Output{Furthest: furthest, Success: false, Position: position}
}

// run is the underlying pure function a Parser wraps: given the full input
// and a position into it, produce an Output.
type run func(input []rune, pos int) Output

// Parser is a composable, immutable parsing function. It supports
// method-style composition (And, Or, Map, Skip, Then, Repeat, Parse) in
// addition to the free-function combinators (All, Any, Map, Repeat, Sep).
type Parser struct {
	run run
}

// Base lifts a raw (input, position) -> Output function into a Parser.
// Use this to hand-write a primitive that the higher-level constructors
// below don't already cover.
func Base(fn func(input []rune, pos int) Output) Parser {
	return Parser{run: fn}
}

// Succeed is a zero-width parser that always succeeds with result,
// consuming no input.
func Succeed(result any) Parser {
	return Base(func(_ []rune, pos int) Output {
		return success(result, pos, noStop)
	})
}

// Fail is a zero-width parser that always fails, reporting expected at the
// current position.
func Fail(expected ...string) Parser {
	return Base(func(_ []rune, pos int) Output {
		return failure(pos, Stop{Expected: expected, Position: pos})
	})
}

// Lazy defers construction of a parser until its first use, which is how
// recursive grammars break the chicken-and-egg problem of referring to a
// parser before it's built.
func Lazy(thunk func() Parser) Parser {
	var cached *Parser

	return Base(func(input []rune, pos int) Output {
		if cached == nil {
			p := thunk()
			cached = &p
		}

		return cached.run(input, pos)
	})
}

// parse runs p against input starting at pos, without the top-level
// end-of-input check; exported callers should use Parser.Parse.
func (p Parser) parse(input []rune, pos int) Output {
	return p.run(input, pos)
}

// And sequences p and other, yielding a two-element []any{left, right} as
// the combined result. Chaining And nests: a.And(b).And(c) produces
// []any{[]any{a, b}, c}; for a flat n-ary sequence prefer All.
func (p Parser) And(other Parser) Parser {
	return All(p, other)
}

// Or tries p, then other, at the same starting position.
func (p Parser) Or(other Parser) Parser {
	return Any(p, other)
}

// Map transforms p's result on success; the Stop is preserved.
func (p Parser) Map(fn func(any) any) Parser {
	return Map(p, fn)
}

// Skip parses p then other, keeping p's result and discarding other's.
func (p Parser) Skip(other Parser) Parser {
	return Base(func(input []rune, pos int) Output {
		left := p.run(input, pos)
		if !left.Success {
			return left
		}

		right := other.run(input, left.Position)
		furthest := mergeStop(left.Furthest, right.Furthest)
		if !right.Success {
			return failure(right.Position, furthest)
		}

		return success(left.Result, right.Position, furthest)
	})
}

// Then parses p then other, keeping other's result and discarding p's.
func (p Parser) Then(other Parser) Parser {
	return Base(func(input []rune, pos int) Output {
		left := p.run(input, pos)
		if !left.Success {
			return left
		}

		right := other.run(input, left.Position)
		furthest := mergeStop(left.Furthest, right.Furthest)
		if !right.Success {
			return failure(right.Position, furthest)
		}

		return success(right.Result, right.Position, furthest)
	})
}

// Repeat applies p greedily at least min times. When separator is given,
// subsequent repetitions must be preceded by a match of separator[0]
// (Sep); otherwise plain repetition is used (Repeat).
func (p Parser) Repeat(min int, separator ...Parser) Parser {
	if len(separator) > 0 {
		return Sep(p, separator[0], min)
	}

	return Repeat(p, min)
}

// Parse runs p at position 0 over input and requires the cursor to reach
// end-of-input on success. On failure (or a short match), it raises a
// *ParseError built from the final Stop.
func (p Parser) Parse(input string) (any, error) {
	runes := []rune(input)
	out := p.run(runes, 0)

	if out.Success && out.Position == len(runes) {
		return out.Result, nil
	}

	stop := out.Furthest
	if out.Success {
		// The parser matched a strict prefix: the remaining input is the
		// failure, augmented with the pseudo-term "end of input" when
		// nothing else explains why we stopped short.
		if stop.Position == out.Position {
			stop = mergeStop(stop, Stop{Expected: []string{"end of input"}, Position: out.Position})
		} else if stop.Position < out.Position {
			stop = Stop{Expected: []string{"end of input"}, Position: out.Position}
		}
	}

	return nil, NewParseError(input, stop.Position, dedupSorted(stop.Expected))
}
