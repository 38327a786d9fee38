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
	"strings"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/workspace"
)

// CodeActionsFor assembles every quick fix and source action this package
// offers for uri: an organize-imports source action and, for each
// not-already-ignored diagnostic, a lint-ignore quick fix. text is the
// document's current raw content, needed here (and only here) since
// ast.ProtoFile keeps no copy of it.
func CodeActionsFor(ws *workspace.Workspace, uri ast.URI, docURI protocol.DocumentURI, text string, diags []Diagnostic) []protocol.CodeAction {
	lines := strings.Split(text, "\n")

	var actions []protocol.CodeAction
	if edits := OrganizeImports(ws, uri); len(edits) > 0 {
		actions = append(actions, protocol.CodeAction{
			Title: "Organize imports",
			Kind:  protocol.SourceOrganizeImports,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentURI][]protocol.TextEdit{docURI: edits},
			},
		})
	}

	for _, d := range diags {
		if IsFileWide(d) {
			continue
		}
		line := int(d.Range.Start.Line)
		if line == 0 || line >= len(lines) {
			continue
		}
		preceding := lines[line-1]
		if IsIgnored(d, preceding) {
			continue
		}
		if action, ok := LintIgnoreAction(docURI, d, leadingWhitespace(lines[line])); ok {
			actions = append(actions, action)
		}
	}
	return actions
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
