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
	"strings"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/lexer"
)

// parseOptionName parses a (possibly extension, possibly multi-segment)
// option name: `deprecated`, `(buf.validate.field).string.min_len`, etc.
func (c *cursor) parseOptionName() (string, ast.Range) {
	var b strings.Builder
	start := c.peek()

	appendSegment := func() bool {
		if c.peek().IsPunct("(") {
			c.advance()
			name, _ := c.parseDottedName()
			b.WriteByte('(')
			b.WriteString(name)
			if _, ok := c.expectPunct(")"); !ok {
				return false
			}
			b.WriteByte(')')
			return true
		}
		tok, ok := c.expectIdentLike()
		if !ok {
			return false
		}
		b.WriteString(tok.Text)
		return true
	}

	if !appendSegment() {
		return b.String(), tokRange(start)
	}
	end := c.lastConsumedEnd()
	for c.peek().IsPunct(".") {
		c.advance()
		b.WriteByte('.')
		if !appendSegment() {
			break
		}
		end = c.lastConsumedEnd()
	}
	return b.String(), ast.Range{Start: start.Start, End: end}
}

// lastConsumedEnd returns the End position of the token just before the
// cursor, used by multi-step parsers to build an accurate composite range.
func (c *cursor) lastConsumedEnd() ast.Position {
	i := c.idx - 1
	for i >= 0 && c.isComment(i) {
		i--
	}
	if i < 0 {
		return ast.Position{}
	}
	return c.toks[i].End
}

// parseOptionValue captures the literal source text of an option's value,
// from the current token up to (but not including) a terminating ',', ']',
// or ';' at bracket depth 0. Interpreting the value further (numeric,
// string, CEL expression, nested message literal) is left to consumers.
func (c *cursor) parseOptionValue() (string, ast.Range) {
	start := c.peek()
	startOffset := start.StartOffset
	depth := 0
	var endOffset int
	var endPos ast.Position
	first := true
	for {
		t := c.peek()
		if t.Kind == lexer.EOF {
			break
		}
		if depth == 0 && (t.IsPunct(",") || t.IsPunct("]") || t.IsPunct(";")) {
			break
		}
		switch t.Text {
		case "{", "[", "(":
			if t.Kind == lexer.Punct {
				depth++
			}
		case "}", "]", ")":
			if t.Kind == lexer.Punct {
				if depth == 0 {
					goto done
				}
				depth--
			}
		}
		c.advance()
		endOffset = t.EndOffset
		endPos = t.End
		first = false
	}
done:
	if first {
		c.errorf(tokRange(start), "expected an option value, found %s", describeTok(start))
		return "", tokRange(start)
	}
	return c.src[startOffset:endOffset], ast.Range{Start: start.Start, End: endPos}
}

// parseOption parses a standalone `option name = value;` statement,
// including the leading `option` keyword and trailing `;`.
func (c *cursor) parseOption() *ast.Option {
	startTok, _ := c.expectKeyword("option")
	name, nameRange := c.parseOptionName()
	c.expectPunct("=")
	value, valueRange := c.parseOptionValue()
	endTok, _ := c.expectPunct(";")
	return &ast.Option{
		Name: name, NameRange: nameRange,
		Value: value, ValueRange: valueRange,
		Range: ast.Range{Start: startTok.Start, End: endTok.End},
	}
}

// parseFieldOptions parses the bracketed `[ name = value, ... ]` suffix on
// a field, map field, group, enum value, or extension range declaration.
func (c *cursor) parseFieldOptions() []*ast.Option {
	if _, ok := c.expectPunct("["); !ok {
		return nil
	}
	var opts []*ast.Option
	for {
		if c.peek().IsPunct("]") {
			break
		}
		start := c.peek()
		name, nameRange := c.parseOptionName()
		var value string
		var valueRange ast.Range
		if c.peek().IsPunct("=") {
			c.advance()
			value, valueRange = c.parseOptionValue()
		}
		end := c.lastConsumedEnd()
		opts = append(opts, &ast.Option{
			Name: name, NameRange: nameRange,
			Value: value, ValueRange: valueRange,
			Range: ast.Range{Start: start.Start, End: end},
		})
		if c.peek().IsPunct(",") {
			c.advance()
			continue
		}
		break
	}
	c.expectPunct("]")
	return opts
}
