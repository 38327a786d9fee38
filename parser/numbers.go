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
	"strconv"
	"strings"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/lexer"
)

// parseIntLiteral decodes a lexer.Int token's text, accepting decimal,
// "0x..." hex, and leading-zero octal forms.
func parseIntLiteral(text string) (int64, bool) {
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		v, err := strconv.ParseInt(text[2:], 16, 64)
		return v, err == nil
	case len(text) > 1 && text[0] == '0':
		v, err := strconv.ParseInt(text, 8, 64)
		return v, err == nil
	default:
		v, err := strconv.ParseInt(text, 10, 64)
		return v, err == nil
	}
}

// parseTagNumber parses a field/enum-value tag number token, reporting a
// diagnostic (and returning 0) if it is not a plain non-negative integer.
func (c *cursor) parseTagNumber() (int32, ast.Range) {
	t := c.peek()
	if t.Kind != lexer.Int {
		c.errorf(tokRange(t), "expected a field number, found %s", describeTok(t))
		return 0, tokRange(t)
	}
	c.advance()
	v, ok := parseIntLiteral(t.Text)
	if !ok || v < 0 || v > (1<<31-1) {
		c.errorf(t.Range(), "invalid field number %q", t.Text)
		return 0, t.Range()
	}
	return int32(v), t.Range()
}

// parseSignedIntLiteral parses an optionally '-'-prefixed integer literal,
// used for enum values (which may be negative in proto2) and option values.
func (c *cursor) parseSignedIntLiteral() (int64, ast.Range, bool) {
	neg := false
	start := c.peek()
	if start.IsPunct("-") {
		neg = true
		c.advance()
	}
	t := c.peek()
	if t.Kind != lexer.Int {
		c.errorf(tokRange(t), "expected an integer, found %s", describeTok(t))
		return 0, tokRange(t), false
	}
	c.advance()
	v, ok := parseIntLiteral(t.Text)
	if !ok {
		c.errorf(t.Range(), "invalid integer %q", t.Text)
		return 0, t.Range(), false
	}
	if neg {
		v = -v
	}
	return v, ast.Range{Start: start.Start, End: t.End}, true
}
