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
	"fmt"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/lexer"
)

// cursor walks a flat token stream (including comment tokens), handing the
// grammar functions only significant tokens while separately tracking
// comment attachment.
type cursor struct {
	src  string
	toks []lexer.Token
	idx  int

	diags   []ast.ParseDiagnostic
	floating []ast.Comment
}

func newCursor(src string) *cursor {
	toks, lexDiags := lexer.Lex(src)
	return &cursor{src: src, toks: toks, diags: lexDiags}
}

func (c *cursor) isComment(i int) bool {
	k := c.toks[i].Kind
	return k == lexer.LineComment || k == lexer.BlockComment
}

// peek returns the next significant (non-comment, non-consumed) token
// without advancing.
func (c *cursor) peek() lexer.Token {
	i := c.idx
	for i < len(c.toks) && c.isComment(i) {
		i++
	}
	return c.toks[i]
}

// peekAt returns the nth significant token ahead (0 == peek()).
func (c *cursor) peekAt(n int) lexer.Token {
	i := c.idx
	seen := 0
	for i < len(c.toks) {
		if c.isComment(i) {
			i++
			continue
		}
		if seen == n {
			return c.toks[i]
		}
		seen++
		i++
	}
	return lexer.Token{Kind: lexer.EOF}
}

// advance consumes and returns the next significant token, flushing any
// skipped-over comments to floating as a safety net (anything genuinely
// wanted is claimed first via collectLeading/collectTrailing).
func (c *cursor) advance() lexer.Token {
	c.flushSkippedComments()
	if c.idx >= len(c.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	t := c.toks[c.idx]
	if t.Kind != lexer.EOF {
		c.idx++
	}
	return t
}

func (c *cursor) flushSkippedComments() {
	for c.idx < len(c.toks) && c.isComment(c.idx) {
		t := c.toks[c.idx]
		c.floating = append(c.floating, ast.Comment{
			Text: t.Text, Block: t.Kind == lexer.BlockComment, Range: t.Range(),
		})
		c.idx++
	}
}

// collectLeading gathers the run of comments immediately preceding the
// cursor, returning them as a leading-comment group only if the group is
// separated from the upcoming significant token by at most one newline;
// otherwise the group is pushed to floating and nil is returned.
func (c *cursor) collectLeading() []ast.Comment {
	var group []ast.Comment
	lastLine := int64(-1)
	for c.idx < len(c.toks) && c.isComment(c.idx) {
		t := c.toks[c.idx]
		if len(group) > 0 && int64(t.Start.Line)-lastLine > 1 {
			c.floating = append(c.floating, group...)
			group = nil
		}
		group = append(group, ast.Comment{Text: t.Text, Block: t.Kind == lexer.BlockComment, Range: t.Range()})
		lastLine = int64(t.End.Line)
		c.idx++
	}
	if len(group) == 0 {
		return nil
	}
	var nextLine int64 = lastLine
	if c.idx < len(c.toks) {
		nextLine = int64(c.toks[c.idx].Start.Line)
	}
	if nextLine-lastLine > 1 {
		c.floating = append(c.floating, group...)
		return nil
	}
	return group
}

// collectTrailing claims a same-line comment immediately following a
// ';'-terminated statement that ended on endLine.
func (c *cursor) collectTrailing(endLine uint32) *ast.Comment {
	if c.idx >= len(c.toks) || !c.isComment(c.idx) {
		return nil
	}
	t := c.toks[c.idx]
	if t.Start.Line != endLine {
		return nil
	}
	c.idx++
	return &ast.Comment{Text: t.Text, Block: t.Kind == lexer.BlockComment, Range: t.Range()}
}

func (c *cursor) errorf(rng ast.Range, format string, args ...any) {
	c.diags = append(c.diags, ast.ParseDiagnostic{Range: rng, Message: fmt.Sprintf(format, args...)})
}

func (c *cursor) expectPunct(s string) (lexer.Token, bool) {
	t := c.peek()
	if t.IsPunct(s) {
		return c.advance(), true
	}
	c.errorf(tokRange(t), "expected %q, found %s", s, describeTok(t))
	return t, false
}

func (c *cursor) expectKeyword(s string) (lexer.Token, bool) {
	t := c.peek()
	if t.IsKeyword(s) {
		return c.advance(), true
	}
	c.errorf(tokRange(t), "expected %q, found %s", s, describeTok(t))
	return t, false
}

func (c *cursor) expectIdentLike() (lexer.Token, bool) {
	t := c.peek()
	if t.Kind == lexer.Ident || t.Kind == lexer.Keyword {
		return c.advance(), true
	}
	c.errorf(tokRange(t), "expected identifier, found %s", describeTok(t))
	return t, false
}

func (c *cursor) expectString() (lexer.Token, bool) {
	t := c.peek()
	if t.Kind == lexer.String {
		return c.advance(), true
	}
	c.errorf(tokRange(t), "expected string literal, found %s", describeTok(t))
	return t, false
}

func tokRange(t lexer.Token) ast.Range {
	if t.Kind == lexer.EOF {
		return ast.Range{Start: t.Start, End: t.Start}
	}
	return t.Range()
}

func describeTok(t lexer.Token) string {
	if t.Kind == lexer.EOF {
		return "end of file"
	}
	return fmt.Sprintf("%q", t.Text)
}

// skipBalanced consumes a balanced '{' ... '}' block (the opening brace
// must be the current token), discarding its contents, used during error
// recovery.
func (c *cursor) skipBalanced(open, close string) {
	depth := 0
	for {
		t := c.peek()
		if t.Kind == lexer.EOF {
			return
		}
		if t.IsPunct(open) {
			depth++
		} else if t.IsPunct(close) {
			depth--
			c.advance()
			if depth == 0 {
				return
			}
			continue
		}
		c.advance()
	}
}
