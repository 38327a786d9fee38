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
)

// checkEnums validates every enum in f: proto3 requires the first value to
// be 0, and duplicate values are only allowed under `allow_alias`.
func checkEnums(f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic
	var walkEnum func(e *ast.EnumDefinition)
	walkEnum = func(e *ast.EnumDefinition) {
		if f.IsProto3() && len(e.Values) > 0 && e.Values[0].Number != 0 {
			out = append(out, Diagnostic{
				Range:    e.Values[0].NumberRange,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "the first value of a proto3 enum must be 0",
				Kind:     KindEnum,
			})
		}
		if !e.AllowAlias() {
			seen := make(map[int32]*ast.EnumValueDefinition, len(e.Values))
			for _, v := range e.Values {
				if first, ok := seen[v.Number]; ok {
					out = append(out, Diagnostic{
						Range:    v.NumberRange,
						Severity: protocol.DiagnosticSeverityError,
						Message:  fmt.Sprintf("value %d is already used by %q; set option allow_alias = true to permit aliases", v.Number, first.Name),
						Kind:     KindEnum,
					})
					continue
				}
				seen[v.Number] = v
			}
		}
	}
	for _, e := range f.Enums {
		walkEnum(e)
	}
	var walkMessage func(m *ast.MessageDefinition)
	walkMessage = func(m *ast.MessageDefinition) {
		for _, e := range m.NestedEnums {
			walkEnum(e)
		}
		for _, nested := range m.NestedMessages {
			walkMessage(nested)
		}
	}
	for _, m := range f.Messages {
		walkMessage(m)
	}
	return out
}
