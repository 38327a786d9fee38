// Copyright 2026 The Protols Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lexer tokenizes protobuf source text, grounded on the token model
// of kralicky/protocompile's parser/lexer.go, adapted to track UTF-16
// columns directly, since editor positions are UTF-16 code units.
package lexer

import "github.com/DrBlury/protols/ast"

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Keyword
	Int
	Float
	String
	Punct
	LineComment
	BlockComment
	Invalid
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Punct:
		return "punctuation"
	case LineComment, BlockComment:
		return "comment"
	default:
		return "invalid"
	}
}

// keywords is the set of protobuf reserved words. The lexer emits them as
// Keyword wherever they appear; the parser treats them as idents when that
// is grammatically required (e.g. a message field literally named "group"
// used as a reserved name string is unaffected, since reserved names are
// string literals).
var keywords = map[string]bool{
	"syntax": true, "edition": true, "import": true, "weak": true, "public": true,
	"package": true, "option": true, "message": true, "enum": true, "service": true,
	"rpc": true, "returns": true, "stream": true, "extend": true, "extensions": true,
	"reserved": true, "oneof": true, "map": true, "group": true, "to": true, "max": true,
	"optional": true, "required": true, "repeated": true, "true": true, "false": true,
	"inf": true, "nan": true,
}

// IsKeyword reports whether s is a reserved protobuf keyword.
func IsKeyword(s string) bool { return keywords[s] }

// Token is a single lexical token together with its UTF-16 source range.
type Token struct {
	Kind  Kind
	Text  string // raw source text, including quotes/delimiters for strings and comments
	Value string // decoded value for String tokens (escapes resolved)
	Start ast.Position
	End   ast.Position

	// StartOffset/EndOffset are byte offsets into the source, used by
	// backends and diagnostics tooling that want to re-slice the original
	// text (e.g. option-value capture in package parser).
	StartOffset, EndOffset int
}

// Range returns the token's source range.
func (t Token) Range() ast.Range {
	return ast.Range{Start: t.Start, End: t.End}
}

// IsPunct reports whether t is a punctuation token with the given text.
func (t Token) IsPunct(s string) bool {
	return t.Kind == Punct && t.Text == s
}

// IsKeyword reports whether t is the keyword s.
func (t Token) IsKeyword(s string) bool {
	return t.Kind == Keyword && t.Text == s
}
