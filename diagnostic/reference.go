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

// typeRef is one place in the tree that names a (possibly qualified) type.
type typeRef struct {
	name  string
	rng   ast.Range
	scope string
}

// checkReferences resolves every type reference in f against ws and
// reports unknown types and types that exist but are not reachable through
// any import of f. Unknown-type diagnostics are suppressed when f has at
// least one unresolved import recognized as a Buf registry module, since the
// missing registry dependency is the more useful diagnostic and the type may
// well be defined there; not-imported diagnostics are always reported.
func checkReferences(ws *workspace.Workspace, uri ast.URI, f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic

	suppress := false
	for _, imp := range f.Imports {
		if _, ok := ws.ResolveImportToUri(uri, imp.Path); ok {
			continue
		}
		if _, ok := isRegistryImport(imp.Path); ok {
			suppress = true
			break
		}
	}

	for _, ref := range collectTypeRefs(f) {
		if workspace.IsBuiltinScalar(ref.name) {
			continue
		}
		res := ws.ResolveType(uri, ref.scope, ref.name)
		switch {
		case !res.Found:
			if suppress {
				continue
			}
			out = append(out, Diagnostic{
				Range:    ref.rng,
				Severity: protocol.DiagnosticSeverityError,
				Message:  fmt.Sprintf("unknown type %q", ref.name),
				Kind:     KindReference,
			})
		case !res.Accessible:
			importPath, _ := ws.GetImportPathForFile(ast.URI(res.Symbol.Location.URI))
			out = append(out, Diagnostic{
				Range:    ref.rng,
				Severity: protocol.DiagnosticSeverityError,
				Message:  fmt.Sprintf("%q is not imported, add import %q", res.Symbol.FullName, importPath),
				Kind:     KindReference,
				Data:     &Data{ImportPath: importPath},
			})
		}
	}
	return out
}

// collectTypeRefs walks every message/enum/service in f and returns each
// type-name reference together with the scope it was written in.
func collectTypeRefs(f *ast.ProtoFile) []typeRef {
	var refs []typeRef
	var walkMessage func(scope string, m *ast.MessageDefinition)
	walkMessage = func(scope string, m *ast.MessageDefinition) {
		full := fullNameIn(scope, m.Name)
		for _, fld := range m.Fields {
			refs = append(refs, typeRef{name: fld.FieldType, rng: fld.TypeRange, scope: full})
		}
		for _, mp := range m.Maps {
			refs = append(refs, typeRef{name: mp.ValueType, rng: mp.ValueTypeRange, scope: full})
		}
		for _, oo := range m.Oneofs {
			for _, fld := range oo.Fields {
				refs = append(refs, typeRef{name: fld.FieldType, rng: fld.TypeRange, scope: full})
			}
		}
		for _, nested := range m.NestedMessages {
			walkMessage(full, nested)
		}
		for _, grp := range m.Groups {
			if grp.Body != nil {
				walkMessage(full, grp.Body)
			}
		}
	}
	for _, m := range f.Messages {
		walkMessage(f.Package, m)
	}
	for _, ext := range f.Extends {
		refs = append(refs, typeRef{name: ext.Extendee, rng: ext.ExtendeeRange, scope: f.Package})
	}
	for _, s := range f.Services {
		full := fullNameIn(f.Package, s.Name)
		for _, rpc := range s.Rpcs {
			refs = append(refs, typeRef{name: rpc.InputType, rng: rpc.InputTypeRange, scope: full})
			refs = append(refs, typeRef{name: rpc.OutputType, rng: rpc.OutputTypeRange, scope: full})
		}
	}
	return refs
}
