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
	"fmt"
	"strings"
)

// ParseError is raised by Parser.Parse when the input does not match; it
// carries the furthest failure position and the set of terms that would
// have been accepted there. Unlike the combinators themselves, which never
// raise, this is the one place the engine converts an accumulated Stop
// into a user-visible diagnostic.
type ParseError struct {
	Source   string
	Position int
	Expected []string
	message  string
}

// NewParseError builds a ParseError and precomputes its multi-line
// diagnostic.
func NewParseError(source string, position int, expected []string) *ParseError {
	return &ParseError{
		Source:   source,
		Position: position,
		Expected: expected,
		message:  Report(source, position, expected),
	}
}

// Error implements the error interface, returning the full diagnostic.
func (e *ParseError) Error() string {
	return e.message
}

// Report renders a furthest-failure position and expected-set as a
// human-readable diagnostic:
//
//	At line L, column C: Expected: t1 | t2 | …
//
//	  <the offending line>
//	  <spaces x(C-1)>^
//
// The expected terms are deduplicated and sorted for stable output.
func Report(source string, index int, expected []string) string {
	runes := []rune(source)

	clamped := index
	if clamped < 0 {
		clamped = 0
	}
	if clamped > len(runes) {
		clamped = len(runes)
	}

	start := 0
	for i := clamped - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			start = i + 1
			break
		}
	}

	end := len(runes)
	for i := clamped; i < len(runes); i++ {
		if runes[i] == '\n' {
			end = i
			break
		}
	}

	line := 1
	for i := 0; i < start; i++ {
		if runes[i] == '\n' {
			line++
		}
	}

	column := clamped - start + 1

	var b strings.Builder
	fmt.Fprintf(&b, "At line %d, column %d: Expected: %s\n\n", line, column, strings.Join(dedupSorted(expected), " | "))
	b.WriteString("  ")
	b.WriteString(string(runes[start:end]))
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat(" ", column-1))
	b.WriteString("^")

	return b.String()
}
