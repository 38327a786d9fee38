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
	"github.com/DrBlury/protols/workspace"
)

// checkImports reports unresolved imports, imports written under a
// non-canonical path, and imports nothing in f actually uses.
func checkImports(ws *workspace.Workspace, uri ast.URI, f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic

	used := make(map[ast.URI]bool)
	for _, ref := range collectTypeRefs(f) {
		if workspace.IsBuiltinScalar(ref.name) {
			continue
		}
		if res := ws.ResolveType(uri, ref.scope, ref.name); res.Found {
			used[ast.URI(res.Symbol.Location.URI)] = true
		}
	}

	for _, res := range ws.GetImportsWithResolutions(uri) {
		if !res.Resolved {
			msg := fmt.Sprintf("import %q could not be resolved", res.Import.Path)
			if module, ok := isRegistryImport(res.Import.Path); ok {
				msg = fmt.Sprintf("%s; this looks like a %s dependency that is not available in this workspace", msg, module)
			}
			out = append(out, Diagnostic{
				Range:    res.Import.PathRange,
				Severity: protocol.DiagnosticSeverityError,
				Message:  msg,
				Kind:     KindImport,
			})
			continue
		}

		if canonical, ok := ws.GetImportPathForFile(res.ResolvedURI); ok && canonical != res.Import.Path {
			out = append(out, Diagnostic{
				Range:    res.Import.PathRange,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("should be imported via %q", canonical),
				Kind:     KindImport,
				Data:     &Data{ImportPath: canonical},
			})
		}

		if res.Import.Kind != ast.ImportPublic && !used[res.ResolvedURI] {
			out = append(out, Diagnostic{
				Range:    res.Import.PathRange,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("import %q is unused", res.Import.Path),
				Kind:     KindImport,
			})
		}
	}
	return out
}
