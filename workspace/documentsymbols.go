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

package workspace

import (
	"strings"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
)

// ToDocumentSymbols builds the hierarchical textDocument/documentSymbol
// response for uri by nesting every SymbolInfo in that file under its
// ContainerName ancestor, the way buflsp's symbols.go walks the same flat
// index into a tree.
func (w *Workspace) ToDocumentSymbols(uri ast.URI) []protocol.DocumentSymbol {
	flat := w.GetSymbolsInFile(uri)

	byFullName := make(map[string]*protocol.DocumentSymbol, len(flat))
	var roots []*protocol.DocumentSymbol
	for i := range flat {
		s := flat[i]
		sym := &protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           s.Kind.ToLSPSymbolKind(),
			Range:          s.Location.Range,
			SelectionRange: s.Location.Range,
		}
		byFullName[s.FullName] = sym
	}
	// flat is ordered by range, so a symbol's descendants follow it. Walking
	// it backwards completes each symbol's children before the symbol is
	// copied into its parent; prepending keeps the source order.
	for i := len(flat) - 1; i >= 0; i-- {
		s := flat[i]
		sym := byFullName[s.FullName]
		if parent, ok := byFullName[s.ContainerName]; ok {
			parent.Children = append([]protocol.DocumentSymbol{*sym}, parent.Children...)
		} else {
			roots = append([]*protocol.DocumentSymbol{sym}, roots...)
		}
	}

	out := make([]protocol.DocumentSymbol, 0, len(roots))
	for _, r := range roots {
		out = append(out, *r)
	}
	return out
}

// ToWorkspaceSymbols builds the flat workspace/symbol response across every
// non-builtin file, optionally filtered to symbols whose full name contains
// query (case-insensitive substring match).
func (w *Workspace) ToWorkspaceSymbols(query string) []protocol.SymbolInformation {
	all := w.GetAllSymbols()
	out := make([]protocol.SymbolInformation, 0, len(all))
	for _, s := range all {
		if ast.URI(s.Location.URI).IsBuiltin() {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(s.FullName), strings.ToLower(query)) {
			continue
		}
		out = append(out, protocol.SymbolInformation{
			Name:          s.Name,
			Kind:          s.Kind.ToLSPSymbolKind(),
			Location:      s.Location,
			ContainerName: s.ContainerName,
		})
	}
	return out
}
