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

package diagnostic

import (
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/internal/pkg/slicesext"
	"github.com/DrBlury/protols/workspace"
)

// OrganizeImports computes the text edits that would replace uri's import
// block with one sorted, deduplicated block containing exactly the imports
// the file needs: every currently-resolved import an in-file type reference
// actually uses, every `public` import (kept regardless of use), and one
// import for every type reference that resolves elsewhere in the workspace
// but isn't currently imported. Returns nil if the file has no imports and
// needs none, or if the existing block already matches.
func OrganizeImports(ws *workspace.Workspace, uri ast.URI) []protocol.TextEdit {
	f, ok := ws.GetFile(uri)
	if !ok {
		return nil
	}

	needed := make(map[string]bool)
	for _, imp := range f.Imports {
		if imp.Kind == ast.ImportPublic {
			needed[imp.Path] = true
		}
	}
	for _, ref := range collectTypeRefs(f) {
		if workspace.IsBuiltinScalar(ref.name) {
			continue
		}
		res := ws.ResolveType(uri, ref.scope, ref.name)
		if !res.Found {
			continue
		}
		if path, ok := ws.GetImportPathForFile(ast.URI(res.Symbol.Location.URI)); ok {
			needed[path] = true
		}
	}

	paths := make([]string, 0, len(needed))
	for p := range needed {
		paths = append(paths, p)
	}
	paths = slicesext.ToUniqueSorted(paths)

	if len(f.Imports) == 0 && len(paths) == 0 {
		return nil
	}
	if len(f.Imports) == len(paths) {
		matches := true
		for i, imp := range f.Imports {
			if imp.Path != paths[i] || imp.Kind != ast.ImportNormal {
				matches = false
				break
			}
		}
		if matches {
			return nil
		}
	}

	var block string
	for _, p := range paths {
		block += fmt.Sprintf("import %q;\n", p)
	}

	if len(f.Imports) > 0 {
		start := f.Imports[0].Range.Start
		end := f.Imports[len(f.Imports)-1].Range.End
		return []protocol.TextEdit{{
			Range:   ast.Range{Start: start, End: end},
			NewText: trimTrailingNewline(block),
		}}
	}

	insertAt := ast.Position{}
	if f.Package != "" {
		insertAt = ast.Position{Line: f.PackageRange.End.Line + 1}
	}
	return []protocol.TextEdit{{
		Range:   ast.Range{Start: insertAt, End: insertAt},
		NewText: "\n" + block,
	}}
}

func trimTrailingNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
