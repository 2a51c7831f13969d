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

package parser

// All sequences parsers: on success it yields the tuple ([]any) of every
// child result, in order, and advances the cursor past all of them. On the
// first child failure it returns that failure, with its Stop merged into
// the running furthest stop.
func All(parsers ...Parser) Parser {
	return Base(func(input []rune, pos int) Output {
		results := make([]any, 0, len(parsers))
		furthest := noStop
		cursor := pos

		for _, p := range parsers {
			out := p.run(input, cursor)
			furthest = mergeStop(furthest, out.Furthest)

			if !out.Success {
				return failure(out.Position, furthest)
			}

			results = append(results, out.Result)
			cursor = out.Position
		}

		return success(results, cursor, furthest)
	})
}

// Any tries parsers in order at the same starting position and returns the
// first success. If every parser fails, it returns a failure whose Stop is
// the merge of all children's stops.
func Any(parsers ...Parser) Parser {
	return Base(func(input []rune, pos int) Output {
		furthest := noStop

		for _, p := range parsers {
			out := p.run(input, pos)
			furthest = mergeStop(furthest, out.Furthest)

			if out.Success {
				return success(out.Result, out.Position, furthest)
			}
		}

		return failure(pos, furthest)
	})
}

// Map transforms p's result with fn on success; the Stop is preserved
// unchanged.
func Map(p Parser, fn func(any) any) Parser {
	return Base(func(input []rune, pos int) Output {
		out := p.run(input, pos)
		if !out.Success {
			return out
		}

		return success(fn(out.Result), out.Position, out.Furthest)
	})
}

// Repeat applies p greedily, at least min times. On a failure once
// result.length >= min it succeeds at the last good position; otherwise it
// surfaces the failure.
func Repeat(p Parser, min int) Parser {
	return Base(func(input []rune, pos int) Output {
		results := make([]any, 0, min)
		furthest := noStop
		cursor := pos

		for {
			out := p.run(input, cursor)
			furthest = mergeStop(furthest, out.Furthest)

			if !out.Success {
				if len(results) >= min {
					return success(results, cursor, furthest)
				}

				return failure(out.Position, furthest)
			}

			if out.Position == cursor && len(results) >= min {
				// The child matched the empty string: stop to avoid
				// looping forever, the repetition requirement is met.
				return success(results, cursor, furthest)
			}

			results = append(results, out.Result)
			cursor = out.Position
		}
	})
}

// Sep matches `item (separator item)*` with at least min items. When
// min == 0, an empty input matches with an empty result list.
func Sep(item, separator Parser, min int) Parser {
	return Base(func(input []rune, pos int) Output {
		results := make([]any, 0, min)
		furthest := noStop

		first := item.run(input, pos)
		furthest = mergeStop(furthest, first.Furthest)

		if !first.Success {
			if min == 0 {
				return success(results, pos, furthest)
			}

			return failure(first.Position, furthest)
		}

		results = append(results, first.Result)
		cursor := first.Position

		for {
			sep := separator.run(input, cursor)
			furthest = mergeStop(furthest, sep.Furthest)

			if !sep.Success {
				break
			}

			next := item.run(input, sep.Position)
			furthest = mergeStop(furthest, next.Furthest)

			if !next.Success {
				// The separator matched but no following item did: that's
				// a hard failure, not a signal to stop repeating.
				return failure(next.Position, furthest)
			}

			results = append(results, next.Result)
			cursor = next.Position
		}

		if len(results) < min {
			return failure(cursor, furthest)
		}

		return success(results, cursor, furthest)
	})
}
