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
	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/workspace"
)

// Validate runs every check over the file at uri and returns the combined,
// unsorted diagnostic list. uri must already be registered in ws (e.g. via
// Workspace.UpdateFile) so that reference and import checks see the rest
// of the workspace.
func Validate(ws *workspace.Workspace, uri ast.URI) []Diagnostic {
	f, ok := ws.GetFile(uri)
	if !ok {
		return nil
	}

	var out []Diagnostic
	for _, pe := range f.ParseErrors {
		out = append(out, Diagnostic{
			Range:    pe.Range,
			Severity: protocol.DiagnosticSeverityError,
			Message:  pe.Message,
			Kind:     KindSyntax,
		})
	}
	out = append(out, checkTagNumbers(f)...)
	out = append(out, checkEnums(f)...)
	out = append(out, checkNaming(f)...)
	out = append(out, checkDiscouraged(f)...)
	out = append(out, checkReferences(ws, uri, f)...)
	out = append(out, checkImports(ws, uri, f)...)
	out = append(out, checkDeprecated(ws, uri, f)...)
	return out
}
