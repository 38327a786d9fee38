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
	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
)

// typeRef is one place in the tree that names a (possibly-qualified) type.
type typeRef struct {
	name  string
	rng   ast.Range
	scope string
}

// FindReferences returns every location across the workspace where
// typeFullName is referenced as a field/map/group/rpc type, plus its own
// declaration site. Used directly for "find references" and as the basis
// for the supplemented rename feature.
func (w *Workspace) FindReferences(typeFullName string) []protocol.Location {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []protocol.Location
	if info, ok := w.symbols[typeFullName]; ok {
		out = append(out, info.Location)
	}

	all := make(map[ast.URI]*ast.ProtoFile, len(w.files)+len(w.builtins))
	for k, v := range w.files {
		all[k] = v
	}
	for k, v := range w.builtins {
		all[k] = v
	}

	for uri, f := range all {
		docURI := uriToDocURI(uri)
		for _, ref := range collectTypeRefs(f) {
			res := TypeResolution{}
			if rest, ok := stripLeadingDot(ref.name); ok {
				if info, ok := w.symbols[rest]; ok {
					res = TypeResolution{Symbol: *info, Found: true}
				}
			} else {
				for _, prefix := range ancestorPrefixes(ref.scope) {
					if info, ok := w.symbols[fullName(prefix, ref.name)]; ok {
						res = TypeResolution{Symbol: *info, Found: true}
						break
					}
				}
			}
			if res.Found && res.Symbol.FullName == typeFullName {
				out = append(out, protocol.Location{URI: docURI, Range: ref.rng})
			}
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
		full := fullName(scope, m.Name)
		for _, fld := range m.Fields {
			if !IsBuiltinScalar(fld.FieldType) {
				refs = append(refs, typeRef{name: fld.FieldType, rng: fld.TypeRange, scope: full})
			}
		}
		for _, fld := range m.Maps {
			if !IsBuiltinScalar(fld.ValueType) {
				refs = append(refs, typeRef{name: fld.ValueType, rng: fld.ValueTypeRange, scope: full})
			}
			if !IsBuiltinScalar(fld.KeyType) {
				refs = append(refs, typeRef{name: fld.KeyType, rng: fld.KeyTypeRange, scope: full})
			}
		}
		for _, oneof := range m.Oneofs {
			for _, fld := range oneof.Fields {
				if !IsBuiltinScalar(fld.FieldType) {
					refs = append(refs, typeRef{name: fld.FieldType, rng: fld.TypeRange, scope: full})
				}
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
		full := fullName(f.Package, s.Name)
		for _, rpc := range s.Rpcs {
			refs = append(refs, typeRef{name: rpc.InputType, rng: rpc.InputTypeRange, scope: full})
			refs = append(refs, typeRef{name: rpc.OutputType, rng: rpc.OutputTypeRange, scope: full})
		}
	}
	return refs
}

// RenamePlan returns the set of text edits that renaming typeFullName's
// simple name to newName would require, grouped by document URI. It
// performs no file I/O; applying the edits is the caller's job.
func (w *Workspace) RenamePlan(typeFullName, newName string) map[protocol.URI][]protocol.TextEdit {
	locations := w.FindReferences(typeFullName)
	if info, ok := w.GetSymbol(typeFullName); ok && len(locations) > 0 {
		// locations[0] is the declaration, whose range spans the whole
		// definition; only its name is replaced.
		switch n := info.Node.(type) {
		case *ast.MessageDefinition:
			locations[0].Range = n.NameRange
		case *ast.EnumDefinition:
			locations[0].Range = n.NameRange
		}
	}
	edits := make(map[protocol.URI][]protocol.TextEdit)
	for _, loc := range locations {
		edits[loc.URI] = append(edits[loc.URI], protocol.TextEdit{Range: loc.Range, NewText: newName})
	}
	return edits
}
