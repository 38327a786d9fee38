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

package completion

import (
	"strings"
	"unicode/utf16"

	"github.com/DrBlury/protols/ast"
)

// offsetAt converts pos (line/character in UTF-16 code units, LSP's
// encoding) to a byte offset into text.
func offsetAt(text string, pos ast.Position) int {
	lineStart := 0
	line := 0
	for line < int(pos.Line) {
		idx := strings.IndexByte(text[lineStart:], '\n')
		if idx < 0 {
			return len(text)
		}
		lineStart += idx + 1
		line++
	}
	rest := text[lineStart:]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}

	units := utf16.Encode([]rune(rest))
	if int(pos.Character) >= len(units) {
		return lineStart + len(rest)
	}
	return lineStart + len(string(utf16.Decode(units[:pos.Character])))
}
