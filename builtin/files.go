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

package builtin

import (
	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
)

// Files parses every bundled well-known type source and returns it keyed by
// its builtin:/// URI. Parsing happens once per call; each Workspace.New
// call parses them afresh and keeps the result for that Workspace.
func Files() map[ast.URI]*ast.ProtoFile {
	out := make(map[ast.URI]*ast.ProtoFile, len(sources))
	for importPath, src := range sources {
		uri := URIFor(importPath)
		out[uri] = parser.Parse(src, uri)
	}
	return out
}
