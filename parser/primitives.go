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

import (
	"regexp"

	"github.com/skishore/fantasy-sub001/internal/base"
)

// Regexp anchors re at the current position. On a match it consumes the
// matched text and succeeds with it as the result; on failure it records
// expected = {printed form of re}.
func Regexp(re string) Parser {
	anchored := regexp.MustCompile(`\A(?:` + re + `)`)
	expected := "/" + re + "/"

	return Base(func(input []rune, pos int) Output {
		remaining := string(input[pos:])
		loc := anchored.FindStringIndex(remaining)
		if loc == nil {
			return failure(pos, Stop{Expected: []string{expected}, Position: pos})
		}

		match := remaining[loc[0]:loc[1]]

		return success(match, pos+len([]rune(match)), noStop)
	})
}

// String succeeds iff input[i:i+len(literal)] == literal; it records
// expected = {quoted literal} on failure, with quote characters swapped
// for readability if the literal itself contains quotes.
func String(literal string) Parser {
	want := []rune(literal)
	expected := base.QuoteLiteral(literal)

	return Base(func(input []rune, pos int) Output {
		if pos+len(want) > len(input) {
			return failure(pos, Stop{Expected: []string{expected}, Position: pos})
		}

		for i, r := range want {
			if input[pos+i] != r {
				return failure(pos, Stop{Expected: []string{expected}, Position: pos})
			}
		}

		return success(literal, pos+len(want), noStop)
	})
}
