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

// parseDottedName parses `[.]ident(.ident)*`, used for package names, type
// references, and option names. A leading dot marks the name absolute.
func (c *cursor) parseDottedName() (string, ast.Range) {
	var b strings.Builder
	start := c.peek()

	if c.peek().IsPunct(".") {
		c.advance()
		b.WriteByte('.')
	}
	first, ok := c.expectIdentLike()
	if !ok {
		return b.String(), tokRange(first)
	}
	b.WriteString(first.Text)
	end := first.End

	for c.peek().IsPunct(".") && c.peekAt(1).Kind != lexer.EOF && isIdentLikeKind(c.peekAt(1)) {
		c.advance() // '.'
		part, ok := c.expectIdentLike()
		if !ok {
			break
		}
		b.WriteByte('.')
		b.WriteString(part.Text)
		end = part.End
	}
	return b.String(), ast.Range{Start: start.Start, End: end}
}

func isIdentLikeKind(t lexer.Token) bool {
	return t.Kind == lexer.Ident || t.Kind == lexer.Keyword
}
