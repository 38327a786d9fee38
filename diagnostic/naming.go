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
	"github.com/DrBlury/protols/internal/pkg/stringutil"
)

// checkNaming reports messages/enums/services not in PascalCase and
// fields/oneofs not in lower_snake_case. Enum values are expected in
// UPPER_SNAKE_CASE, but a name already in that casing is never flagged as
// "not snake_case" even though it isn't literally lower_snake_case — this
// also applies to fields and oneofs, since a SCREAMING_SNAKE_CASE name isn't
// "not snake_case" either.
func checkNaming(f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic

	pascal := func(name string, rng ast.Range, what string) {
		if !stringutil.IsPascalCase(name) {
			out = append(out, Diagnostic{
				Range:    rng,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("%s %q should be PascalCase (e.g. %q)", what, name, stringutil.ToPascalCase(name)),
				Kind:     KindNaming,
			})
		}
	}
	snake := func(name string, rng ast.Range, what string) {
		if stringutil.IsUpperSnakeCase(name) {
			return
		}
		if !stringutil.IsLowerSnakeCase(name) {
			out = append(out, Diagnostic{
				Range:    rng,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("%s %q should be lower_snake_case (e.g. %q)", what, name, stringutil.ToLowerSnakeCase(name)),
				Kind:     KindNaming,
			})
		}
	}
	screaming := func(name string, rng ast.Range, what string) {
		if stringutil.IsUpperSnakeCase(name) {
			return
		}
		out = append(out, Diagnostic{
			Range:    rng,
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  fmt.Sprintf("%s %q should be UPPER_SNAKE_CASE (e.g. %q)", what, name, stringutil.ToUpperSnakeCase(name)),
			Kind:     KindNaming,
		})
	}

	var walkMessage func(m *ast.MessageDefinition)
	walkMessage = func(m *ast.MessageDefinition) {
		pascal(m.Name, m.NameRange, "message")
		for _, fld := range m.Fields {
			snake(fld.Name, fld.NameRange, "field")
		}
		for _, mp := range m.Maps {
			snake(mp.Name, mp.NameRange, "field")
		}
		for _, oo := range m.Oneofs {
			snake(oo.Name, oo.NameRange, "oneof")
			for _, fld := range oo.Fields {
				snake(fld.Name, fld.NameRange, "field")
			}
		}
		for _, e := range m.NestedEnums {
			checkEnumNaming(e, pascal, screaming)
		}
		for _, nested := range m.NestedMessages {
			walkMessage(nested)
		}
		for _, g := range m.Groups {
			if g.Body != nil {
				walkMessage(g.Body)
			}
		}
	}
	for _, m := range f.Messages {
		walkMessage(m)
	}
	for _, e := range f.Enums {
		checkEnumNaming(e, pascal, screaming)
	}
	for _, s := range f.Services {
		pascal(s.Name, s.NameRange, "service")
		for _, rpc := range s.Rpcs {
			pascal(rpc.Name, rpc.NameRange, "rpc")
		}
	}
	return out
}

func checkEnumNaming(
	e *ast.EnumDefinition,
	pascal func(name string, rng ast.Range, what string),
	screaming func(name string, rng ast.Range, what string),
) {
	pascal(e.Name, e.NameRange, "enum")
	for _, v := range e.Values {
		screaming(v.Name, v.NameRange, "enum value")
	}
}
