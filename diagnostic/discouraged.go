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
)

// checkDiscouraged flags proto2 `required` fields, `group` declarations,
// and `optional` used outside proto2 or editions, where it changes meaning
// or is simply unavailable.
func checkDiscouraged(f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic
	flagModifier := func(mod ast.FieldModifier, rng ast.Range) {
		switch {
		case mod == ast.ModifierRequired && f.IsProto2():
			out = append(out, Diagnostic{
				Range:    rng,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "required fields are discouraged; they cannot be safely added or removed once in use",
				Kind:     KindDiscouraged,
			})
		case mod == ast.ModifierOptional && f.IsProto3() && !f.IsEdition():
			out = append(out, Diagnostic{
				Range:    rng,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "explicit 'optional' on a proto3 singular field only controls presence tracking; prefer a oneof if that is not what you intend",
				Kind:     KindDiscouraged,
			})
		}
	}

	var walkMessage func(m *ast.MessageDefinition)
	walkMessage = func(m *ast.MessageDefinition) {
		for _, fld := range m.Fields {
			flagModifier(fld.Modifier, fld.Range)
		}
		for _, grp := range m.Groups {
			out = append(out, Diagnostic{
				Range:    grp.Range,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "group fields are discouraged; use a nested message and an explicit field instead",
				Kind:     KindDiscouraged,
			})
			if grp.Body != nil {
				walkMessage(grp.Body)
			}
		}
		for _, nested := range m.NestedMessages {
			walkMessage(nested)
		}
	}
	for _, m := range f.Messages {
		walkMessage(m)
	}
	for _, ext := range f.Extends {
		for _, fld := range ext.Fields {
			flagModifier(fld.Modifier, fld.Range)
		}
		for _, grp := range ext.Groups {
			out = append(out, Diagnostic{
				Range:    grp.Range,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "group fields are discouraged; use a nested message and an explicit field instead",
				Kind:     KindDiscouraged,
			})
		}
	}
	return out
}
