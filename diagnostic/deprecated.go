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

// checkDeprecated reports every reference to a message, enum, service, or
// rpc whose declaration carries `deprecated = true`; it does not flag the
// declaration itself, only its uses elsewhere in the file.
func checkDeprecated(ws *workspace.Workspace, uri ast.URI, f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic

	flag := func(scope, typeName string, rng ast.Range) {
		if workspace.IsBuiltinScalar(typeName) {
			return
		}
		res := ws.ResolveType(uri, scope, typeName)
		if !res.Found || !nodeDeprecated(res.Symbol.Node) {
			return
		}
		out = append(out, Diagnostic{
			Range:    rng,
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  fmt.Sprintf("%q is deprecated", res.Symbol.FullName),
			Kind:     KindDeprecated,
		})
	}

	var walkMessage func(scope string, m *ast.MessageDefinition)
	walkMessage = func(scope string, m *ast.MessageDefinition) {
		full := fullNameIn(scope, m.Name)
		for _, fld := range m.Fields {
			flag(full, fld.FieldType, fld.TypeRange)
		}
		for _, mp := range m.Maps {
			flag(full, mp.ValueType, mp.ValueTypeRange)
		}
		for _, oo := range m.Oneofs {
			for _, fld := range oo.Fields {
				flag(full, fld.FieldType, fld.TypeRange)
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
	for _, s := range f.Services {
		full := fullNameIn(f.Package, s.Name)
		for _, rpc := range s.Rpcs {
			flag(full, rpc.InputType, rpc.InputTypeRange)
			flag(full, rpc.OutputType, rpc.OutputTypeRange)
		}
	}
	return out
}

func fullNameIn(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

func nodeDeprecated(node any) bool {
	switch n := node.(type) {
	case *ast.MessageDefinition:
		return n.Deprecated()
	case *ast.EnumDefinition:
		return n.Deprecated()
	case *ast.EnumValueDefinition:
		return n.Deprecated()
	case *ast.FieldDefinition:
		return n.Deprecated()
	case *ast.MapFieldDefinition:
		return n.Deprecated()
	case *ast.ServiceDefinition:
		return n.Deprecated()
	case *ast.RpcDefinition:
		return n.Deprecated()
	default:
		return false
	}
}
