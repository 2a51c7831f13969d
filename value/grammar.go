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
	"strconv"

	"github.com/skishore/fantasy-sub001/internal/base"
	"github.com/skishore/fantasy-sub001/parser"
	"github.com/skishore/fantasy-sub001/template"
)

// Grammar for value templates:
//
//	value     := ws? ( list | dict | literal | '$' number )
//	list      := '[' list_item (',' list_item)* ']'   // or empty
//	list_item := '...$' number | value
//	dict      := '{' dict_item (',' dict_item)* '}'   // or empty
//	dict_item := '...$' number | key (',' key)* ':' value
//	key       := identifier | '"..."' | "'...'"
//	literal   := true | false | null | number | "..." | '...'
//
// A bare key (',' key)* ':' value group binds every listed key to the
// same value template (key aliasing), matching the literal production
// above rather than the looser prose gloss in its comment.
var ws = parser.Regexp(`\s*`)

func tok(p parser.Parser) parser.Parser {
	return p.Skip(ws)
}

var (
	lbrack     = tok(parser.String("["))
	rbrack     = tok(parser.String("]"))
	lbrace     = tok(parser.String("{"))
	rbrace     = tok(parser.String("}"))
	comma      = tok(parser.String(","))
	colon      = tok(parser.String(":"))
	dotsDollar = tok(parser.String("...$"))
	dollar     = tok(parser.String("$"))
	digits     = tok(parser.Regexp(`[0-9]+`))
	identifier = tok(parser.Regexp(`[a-zA-Z_]+`))
	numberLit  = tok(parser.Regexp(`-?[0-9]+(?:\.[0-9]+)?`))
	doubleStr  = tok(parser.Regexp(`"(?:[^"\\]|\\.)*"`))
	singleStr  = tok(parser.Regexp(`'(?:[^'\\]|\\.)*'`))
)

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}

	return n
}

func decodeDoubleQuoted(text string) string {
	s, err := strconv.Unquote(text)
	if err != nil {
		return text[1 : len(text)-1]
	}

	return s
}

func decodeSingleQuoted(text string) string {
	return base.SwapQuotes(decodeDoubleQuoted(base.SwapQuotes(text)))
}

var stringLit = parser.Any(
	doubleStr.Map(func(v any) any { return decodeDoubleQuoted(v.(string)) }),
	singleStr.Map(func(v any) any { return decodeSingleQuoted(v.(string)) }),
)

var keyLit = parser.Any(identifier, stringLit)

var literalParser = parser.Any(
	tok(parser.String("true")).Map(func(any) any { return Template(Primitive(NewBool(true))) }),
	tok(parser.String("false")).Map(func(any) any { return Template(Primitive(NewBool(false))) }),
	tok(parser.String("null")).Map(func(any) any { return Template(Primitive(Null)) }),
	numberLit.Map(func(v any) any {
		n, _ := strconv.ParseFloat(v.(string), 64)
		return Template(Primitive(NewNumber(n)))
	}),
	stringLit.Map(func(v any) any { return Template(Primitive(NewString(v.(string)))) }),
)

var dollarVar = parser.All(dollar, digits).Map(func(v any) any {
	parts := v.([]any)
	return Template(Variable(mustInt(parts[1].(string))))
})

// valueAlternatives is assigned in init: its list and dict branches refer
// back to valueGrammar, which a package-level initializer cannot express
// without an initialization cycle.
var valueAlternatives parser.Parser

func init() {
	valueAlternatives = parser.Any(listGrammar, dictGrammar, literalParser, dollarVar)
}

var valueGrammar = parser.Lazy(func() parser.Parser {
	return valueAlternatives
})

var listItemGrammar = parser.Any(
	parser.All(dotsDollar, digits).Map(func(v any) any {
		parts := v.([]any)
		return Template(ListSpread(mustInt(parts[1].(string))))
	}),
	valueGrammar.Map(func(v any) any { return Template(Singleton(v.(Template))) }),
)

var listGrammar = parser.Lazy(func() parser.Parser {
	return parser.All(lbrack, parser.Sep(listItemGrammar, comma, 0), rbrack).Map(func(v any) any {
		parts := v.([]any)
		rawItems := parts[1].([]any)

		items := make([]Template, 0, len(rawItems))
		for _, it := range rawItems {
			items = append(items, it.(Template))
		}

		return Template(List(items))
	})
})

var dictItemGrammar = parser.Any(
	parser.All(dotsDollar, digits).Map(func(v any) any {
		parts := v.([]any)
		return Template(DictSpread(mustInt(parts[1].(string))))
	}),
	parser.All(parser.Sep(keyLit, comma, 1), colon, valueGrammar).Map(func(v any) any {
		parts := v.([]any)
		rawKeys := parts[0].([]any)
		val := parts[2].(Template)

		fields := make(map[string]Template, len(rawKeys))
		for _, k := range rawKeys {
			fields[k.(string)] = val
		}

		return Template(Schema(fields))
	}),
)

var dictGrammar = parser.Lazy(func() parser.Parser {
	return parser.All(lbrace, parser.Sep(dictItemGrammar, comma, 0), rbrace).Map(func(v any) any {
		parts := v.([]any)
		rawItems := parts[1].([]any)

		items := make([]Template, 0, len(rawItems))
		for _, it := range rawItems {
			items = append(items, it.(Template))
		}

		return Template(Dict(items))
	})
})

// ParseTemplate parses text as a value-template literal and returns the
// Template it denotes.
func ParseTemplate(text string) (Template, error) {
	result, err := ws.Then(valueGrammar).Parse(text)
	if err != nil {
		return nil, err
	}

	return result.(Template), nil
}

// Parse parses text as a plain value literal: the template it denotes is
// merged against no arguments, so any `$n`/`...$n` placeholder simply
// reads back as Null.
func Parse(text string) (Value, error) {
	t, err := ParseTemplate(text)
	if err != nil {
		return Null, err
	}

	return t.Merge(template.Arguments[Value]{}), nil
}

// DataType binds the value domain to its template grammar.
var DataType = template.DataType[Value]{
	IsBase: func(v Value) bool {
		return v.Kind != KindList && v.Kind != KindDict
	},
	IsNull: IsNull,
	MakeBase: func(raw any) Value {
		switch x := raw.(type) {
		case bool:
			return NewBool(x)
		case float64:
			return NewNumber(x)
		case string:
			return NewString(x)
		case nil:
			return Null
		default:
			panic(ShapeError{Want: "base", Got: Null})
		}
	},
	MakeNull:  func() Value { return Null },
	Parse:     Parse,
	Stringify: Stringify,
	Template:  ParseTemplate,
}
