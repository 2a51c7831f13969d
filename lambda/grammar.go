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
	"fmt"
	"strconv"
	"strings"

	"github.com/skishore/fantasy-sub001/parser"
	"github.com/skishore/fantasy-sub001/template"
)

var (
	ws  = parser.Regexp(`\s*`)
	tok = func(p parser.Parser) parser.Parser { return p.Skip(ws) }

	lparen     = tok(parser.String("("))
	rparen     = tok(parser.String(")"))
	lbrack     = tok(parser.String("["))
	rbrack     = tok(parser.String("]"))
	comma      = tok(parser.String(","))
	dollar     = tok(parser.String("$"))
	digits     = tok(parser.Regexp(`[0-9]+`))
	identifier = tok(parser.Regexp(`[a-zA-Z0-9_]+`))
	opAnd      = tok(parser.String(OpAnd))
	opOr       = tok(parser.String(OpOr))
	opDual     = tok(parser.String(OpDual))
	opDot      = tok(parser.String(OpDot))
	opBang     = tok(parser.String("R"))
	dash       = tok(parser.String("-"))
)

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

// dollarVar matches '$' number and builds Variable(n).
var dollarVar = dollar.Then(digits).Map(func(r any) any {
	return Variable(mustInt(r.(string)))
})

// rootRef holds rootGrammar once init has run. It has no initializer, so
// reading it from exprGrammar does not form a package initialization
// cycle through the productions below.
var rootRef parser.Parser

func init() { rootRef = rootGrammar }

// exprGrammar is the entry point; it defers to rootGrammar (through
// rootRef) so the recursive productions below can reference each other
// before they're all defined.
var exprGrammar = parser.Lazy(func() parser.Parser { return rootRef })

// expr1 := 'R' '[' root ']' | identifier ('(' (root (',' root)*)? ')')? | '(' root ')' | '$' number | '-'
var expr1Grammar = parser.Lazy(func() parser.Parser {
	bang := opBang.Then(lbrack).Then(exprGrammar).Skip(rbrack).Map(func(r any) any {
		return Unary(r.(Template), OpBang)
	})

	paren := lparen.Then(exprGrammar).Skip(rparen)

	call := identifier.And(
		lparen.Then(parser.Sep(exprGrammar, comma, 0)).Skip(rparen),
	).Map(func(r any) any {
		parts := r.([]any)
		name := parts[0].(string)
		args := parts[1].([]any)

		children := make([]Template, len(args))
		for i, a := range args {
			children[i] = a.(Template)
		}

		return Custom(children, name)
	})

	ident := identifier.Map(func(r any) any { return Single(r.(string)) })

	null := dash.Map(func(any) any {
		return template.Func[Lambda]{
			MergeFn: func(template.Arguments[Lambda]) Lambda { return Null },
			SplitFn: func(input Lambda) []template.Arguments[Lambda] {
				if IsNull(input) {
					return []template.Arguments[Lambda]{{}}
				}
				return nil
			},
		}
	})

	return parser.Any(bang, call, ident, paren, dollarVar, null)
})

// expr2 := expr1 ('.' expr1)*  (flattened)
var expr2Grammar = expr1Grammar.And(parser.Repeat(opDot.Then(expr1Grammar), 0)).Map(func(r any) any {
	parts := r.([]any)
	head := parts[0].(Template)
	tail := parts[1].([]any)

	children := []Template{head}
	for _, t := range tail {
		children = append(children, t.(Template))
	}

	if len(children) == 1 {
		return children[0]
	}

	return Binary(children, OpDot)
})

// expr3 := '~'* expr2
var expr3Grammar = parser.Repeat(opDual, 0).And(expr2Grammar).Map(func(r any) any {
	parts := r.([]any)
	tildes := parts[0].([]any)
	body := parts[1].(Template)

	for range tildes {
		body = Unary(body, OpDual)
	}

	return body
})

type andOrOp struct {
	op   string
	term Template
}

// expr4 := expr3 (('&'|'|') expr3)*  (left-associative fold, flattened per op)
var rootGrammar = expr3Grammar.And(parser.Repeat(
	parser.Any(opAnd, opOr).And(expr3Grammar).Map(func(r any) any {
		parts := r.([]any)
		return andOrOp{op: parts[0].(string), term: parts[1].(Template)}
	}),
	0,
)).Map(func(r any) any {
	parts := r.([]any)
	acc := parts[0].(Template)
	rest := parts[1].([]any)

	for _, step := range rest {
		pair := step.(andOrOp)
		acc = Binary([]Template{acc, pair.term}, pair.op)
	}

	return acc
})

// ParseTemplate parses text as a lambda template, returning its Template.
func ParseTemplate(text string) (Template, error) {
	result, err := ws.Then(exprGrammar).Parse(text)
	if err != nil {
		return nil, err
	}

	return result.(Template), nil
}

// Parse parses text as a plain (variable-free) lambda expression.
func Parse(text string) (Lambda, error) {
	tmpl, err := ParseTemplate(text)
	if err != nil {
		return Null, err
	}

	return tmpl.Merge(template.Arguments[Lambda]{}), nil
}

// DataType wires the lambda domain into the generic template algebra:
// IsBase is unconditionally true since lambda has no container shape
// distinct from its own recursive structure.
var DataType = template.DataType[Lambda]{
	IsBase: func(Lambda) bool { return true },
	IsNull: IsNull,
	MakeBase: func(v any) Lambda {
		switch x := v.(type) {
		case string:
			return MakeSingle(x)
		case nil:
			return Null
		default:
			panic(ShapeError{Want: "lambda base value", Got: v})
		}
	},
	MakeNull:  func() Lambda { return Null },
	Parse:     Parse,
	Stringify: Stringify,
	Template:  ParseTemplate,
}

// ShapeError reports a value that cannot be coerced into the shape a
// lambda constructor expected.
type ShapeError struct {
	Want string
	Got  any
}

func (e ShapeError) Error() string {
	return "lambda: expected " + e.Want + ", got " + trimType(e.Got)
}

func trimType(v any) string {
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return "<nil>"
	}
	return s
}
