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

package parser

import (
	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/lexer"
)

// Lenient is the fallback backend: a purely token-level scanner that never
// attempts full grammar recovery, used only when Recursive fails outright.
// It recovers a best-effort skeleton — syntax/package/imports and the name
// + source range of every top-level message/enum/service — which is enough
// for the import resolver and a degraded symbol table to keep functioning.
type Lenient struct{}

func (Lenient) Name() string { return "lenient" }

func (Lenient) Parse(text string, uri ast.URI) (*ast.ProtoFile, error) {
	toks, diags := lexer.Lex(text)
	f := &ast.ProtoFile{URI: uri, ParserBackend: "lenient", ParseErrors: diags}

	i := 0
	sig := func(i int) lexer.Token { return toks[i] }
	isComment := func(t lexer.Token) bool { return t.Kind == lexer.LineComment || t.Kind == lexer.BlockComment }
	next := func() lexer.Token {
		for i < len(toks) && isComment(sig(i)) {
			i++
		}
		if i >= len(toks) {
			return lexer.Token{Kind: lexer.EOF}
		}
		t := toks[i]
		i++
		return t
	}
	peek := func() lexer.Token {
		j := i
		for j < len(toks) && isComment(sig(j)) {
			j++
		}
		if j >= len(toks) {
			return lexer.Token{Kind: lexer.EOF}
		}
		return toks[j]
	}
	skipBraces := func() {
		depth := 0
		for {
			t := next()
			if t.Kind == lexer.EOF {
				return
			}
			if t.IsPunct("{") {
				depth++
			} else if t.IsPunct("}") {
				depth--
				if depth <= 0 {
					return
				}
			}
		}
	}
	skipToSemiOrBrace := func() {
		for {
			t := peek()
			if t.Kind == lexer.EOF || t.IsPunct(";") {
				next()
				return
			}
			if t.IsPunct("{") {
				skipBraces()
				return
			}
			next()
		}
	}

	for {
		t := next()
		switch {
		case t.Kind == lexer.EOF:
			return f, nil
		case t.IsKeyword("syntax"):
			if peek().IsPunct("=") {
				next()
			}
			if s := peek(); s.Kind == lexer.String {
				next()
				f.Syntax = s.Value
			}
			skipToSemiOrBrace()
		case t.IsKeyword("edition"):
			if peek().IsPunct("=") {
				next()
			}
			if s := peek(); s.Kind == lexer.String {
				next()
				f.Edition = s.Value
			}
			skipToSemiOrBrace()
		case t.IsKeyword("package"):
			var name string
			for {
				p := peek()
				if p.Kind == lexer.Ident || p.Kind == lexer.Keyword || p.IsPunct(".") {
					next()
					name += p.Text
					continue
				}
				break
			}
			f.Package = name
			skipToSemiOrBrace()
		case t.IsKeyword("import"):
			start := t
			kind := ast.ImportNormal
			if peek().IsKeyword("weak") {
				next()
				kind = ast.ImportWeak
			} else if peek().IsKeyword("public") {
				next()
				kind = ast.ImportPublic
			}
			if s := peek(); s.Kind == lexer.String {
				next()
				f.Imports = append(f.Imports, &ast.ImportStmt{
					Path: s.Value, PathRange: s.Range(), Kind: kind,
					Range: ast.Range{Start: start.Start, End: s.End},
				})
			}
			skipToSemiOrBrace()
		case t.IsKeyword("message"):
			nameTok := peek()
			name := ""
			if nameTok.Kind == lexer.Ident || nameTok.Kind == lexer.Keyword {
				next()
				name = nameTok.Text
			}
			m := &ast.MessageDefinition{Name: name, NameRange: nameTok.Range(), Range: ast.Range{Start: t.Start}}
			if peek().IsPunct("{") {
				next()
				skipBraces()
			}
			m.Range.End = sig(minInt(i, len(toks)-1)).Start
			f.Messages = append(f.Messages, m)
		case t.IsKeyword("enum"):
			nameTok := peek()
			name := ""
			if nameTok.Kind == lexer.Ident || nameTok.Kind == lexer.Keyword {
				next()
				name = nameTok.Text
			}
			e := &ast.EnumDefinition{Name: name, NameRange: nameTok.Range(), Range: ast.Range{Start: t.Start}}
			if peek().IsPunct("{") {
				next()
				skipBraces()
			}
			e.Range.End = sig(minInt(i, len(toks)-1)).Start
			f.Enums = append(f.Enums, e)
		case t.IsKeyword("service"):
			nameTok := peek()
			name := ""
			if nameTok.Kind == lexer.Ident || nameTok.Kind == lexer.Keyword {
				next()
				name = nameTok.Text
			}
			s := &ast.ServiceDefinition{Name: name, NameRange: nameTok.Range(), Range: ast.Range{Start: t.Start}}
			if peek().IsPunct("{") {
				next()
				skipBraces()
			}
			s.Range.End = sig(minInt(i, len(toks)-1)).Start
			f.Services = append(f.Services, s)
		case t.IsKeyword("extend") || t.IsKeyword("option"):
			skipToSemiOrBrace()
		default:
			// Unknown top-level token: drop it and keep scanning. The
			// lenient backend's entire purpose is to never get stuck.
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
