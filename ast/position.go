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

// Package ast defines the typed protobuf syntax tree. Every node carries a
// defining range and, where it names something, a separate nameRange over
// the identifier alone.
package ast

import "go.lsp.dev/protocol"

// Position and Range are expressed directly in LSP wire types (UTF-16 code
// units, half-open ranges) rather than reinvented.
type (
	Position = protocol.Position
	Range    = protocol.Range
)

// NewRange builds a Range from four uint32 line/character components.
func NewRange(startLine, startChar, endLine, endChar uint32) Range {
	return Range{
		Start: Position{Line: startLine, Character: startChar},
		End:   Position{Line: endLine, Character: endChar},
	}
}

// ZeroRange is the range used for synthesized nodes that have no source
// location (e.g. builtin well-known stubs materialized without a real file).
var ZeroRange = Range{}

// Contains reports whether r contains pos, using half-open semantics.
func Contains(r Range, pos Position) bool {
	if pos.Line < r.Start.Line || (pos.Line == r.Start.Line && pos.Character < r.Start.Character) {
		return false
	}
	if pos.Line > r.End.Line || (pos.Line == r.End.Line && pos.Character >= r.End.Character) {
		return false
	}
	return true
}
