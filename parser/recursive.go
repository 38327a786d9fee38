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

// Recursive is the primary, hand-written recursive-descent backend.
type Recursive struct{}

func (Recursive) Name() string { return "recursive" }

func (Recursive) Parse(text string, uri ast.URI) (*ast.ProtoFile, error) {
	c := newCursor(text)
	f := &ast.ProtoFile{URI: uri, ParserBackend: "recursive"}
	c.parseFile(f)
	f.ParseErrors = c.diags
	f.FloatingComments = c.floating
	if len(c.toks) > 0 {
		f.Range = ast.Range{Start: ast.Position{}, End: c.toks[len(c.toks)-1].End}
	}
	return f, nil
}

// topLevelKeywords marks tokens that are safe landmarks for error recovery:
// the parser may always resynchronize at one of these.
var topLevelKeywords = map[string]bool{
	"syntax": true, "edition": true, "package": true, "import": true,
	"option": true, "message": true, "enum": true, "service": true, "extend": true,
}

func (c *cursor) parseFile(f *ast.ProtoFile) {
	for {
		leading := c.collectLeading()
		t := c.peek()
		if t.Kind == lexer.EOF {
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
			return
		}
		switch {
		case t.IsKeyword("syntax"):
			c.parseSyntax(f, leading)
		case t.IsKeyword("edition"):
			c.parseEdition(f, leading)
		case t.IsKeyword("package"):
			c.parsePackage(f, leading)
		case t.IsKeyword("import"):
			f.Imports = append(f.Imports, c.parseImport(leading))
		case t.IsKeyword("option"):
			f.Options = append(f.Options, c.parseOption())
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
		case t.IsKeyword("message"):
			f.Messages = append(f.Messages, c.parseMessage(leading))
		case t.IsKeyword("enum"):
			f.Enums = append(f.Enums, c.parseEnum(leading))
		case t.IsKeyword("service"):
			f.Services = append(f.Services, c.parseService(leading))
		case t.IsKeyword("extend"):
			f.Extends = append(f.Extends, c.parseExtend(leading))
		case t.IsPunct(";"):
			c.advance()
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
		default:
			c.errorf(tokRange(t), "unexpected %s at top level", describeTok(t))
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
			c.recover(topLevelKeywords)
			if c.peek().IsPunct("}") {
				// No block is open at top level, so recover stops on a
				// stray '}' without consuming it; drop it here.
				c.advance()
			}
		}
	}
}

// recover skips to the matching '}' of any open block we're inside of, or
// to the next token that starts a recognized declaration.
func (c *cursor) recover(landmarks map[string]bool) {
	for {
		t := c.peek()
		switch {
		case t.Kind == lexer.EOF:
			return
		case t.IsPunct("{"):
			c.skipBalanced("{", "}")
		case t.IsPunct("}"):
			return
		case t.Kind == lexer.Keyword && landmarks[t.Text]:
			return
		default:
			c.advance()
		}
	}
}

func (c *cursor) parseSyntax(f *ast.ProtoFile, leading []ast.Comment) {
	c.advance() // 'syntax'
	c.expectPunct("=")
	strTok, _ := c.expectString()
	f.Syntax = strTok.Value
	c.expectPunct(";")
	if leading != nil {
		c.floating = append(c.floating, leading...)
	}
}

func (c *cursor) parseEdition(f *ast.ProtoFile, leading []ast.Comment) {
	c.advance() // 'edition'
	c.expectPunct("=")
	strTok, _ := c.expectString()
	f.Edition = strTok.Value
	c.expectPunct(";")
	if leading != nil {
		c.floating = append(c.floating, leading...)
	}
}

func (c *cursor) parsePackage(f *ast.ProtoFile, leading []ast.Comment) {
	c.advance() // 'package'
	name, rng := c.parseDottedName()
	f.Package = name
	f.PackageRange = rng
	c.expectPunct(";")
	if leading != nil {
		c.floating = append(c.floating, leading...)
	}
}

func (c *cursor) parseImport(leading []ast.Comment) *ast.ImportStmt {
	start := c.advance() // 'import'
	kind := ast.ImportNormal
	if c.peek().IsKeyword("weak") {
		c.advance()
		kind = ast.ImportWeak
	} else if c.peek().IsKeyword("public") {
		c.advance()
		kind = ast.ImportPublic
	}
	pathTok, _ := c.expectString()
	endTok, _ := c.expectPunct(";")
	imp := &ast.ImportStmt{
		Path: pathTok.Value, PathRange: pathTok.Range(),
		Kind: kind, Range: ast.Range{Start: start.Start, End: endTok.End},
	}
	imp.Comments.Leading = leading
	imp.Comments.Trailing = c.collectTrailing(endTok.End.Line)
	return imp
}
