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

// Package workspace implements the analyzer, import resolver, and type
// resolver behind the Workspace façade.
package workspace

import (
	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
)

// SymbolKind classifies a SymbolInfo.
type SymbolKind int

const (
	KindMessage SymbolKind = iota
	KindEnum
	KindEnumValue
	KindField
	KindOneof
	KindService
	KindRpc
)

func (k SymbolKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindEnum:
		return "enum"
	case KindEnumValue:
		return "enum_value"
	case KindField:
		return "field"
	case KindOneof:
		return "oneof"
	case KindService:
		return "service"
	case KindRpc:
		return "rpc"
	default:
		return "unknown"
	}
}

// ToLSPSymbolKind maps a SymbolKind onto the LSP wire enum, used by the
// workspace/document-symbol adapters.
func (k SymbolKind) ToLSPSymbolKind() protocol.SymbolKind {
	switch k {
	case KindMessage:
		return protocol.SymbolKindClass
	case KindEnum:
		return protocol.SymbolKindEnum
	case KindEnumValue:
		return protocol.SymbolKindEnumMember
	case KindField:
		return protocol.SymbolKindField
	case KindOneof:
		return protocol.SymbolKindInterface
	case KindService:
		return protocol.SymbolKindInterface
	case KindRpc:
		return protocol.SymbolKindMethod
	default:
		return protocol.SymbolKindNull
	}
}

// SymbolInfo is a single entry in the workspace's flat symbol index.
type SymbolInfo struct {
	Name          string
	FullName      string
	Kind          SymbolKind
	Location      protocol.Location
	ContainerName string

	// Node is the originating AST node (one of *ast.MessageDefinition,
	// *ast.EnumDefinition, *ast.EnumValueDefinition, *ast.FieldDefinition,
	// *ast.MapFieldDefinition, *ast.GroupDefinition, *ast.OneofDefinition,
	// *ast.ServiceDefinition, or *ast.RpcDefinition), kept so callers like hover/completion can pull
	// richer detail without a second lookup.
	Node any
}

// builtinScalars are the protobuf scalar type keywords.
var builtinScalars = map[string]bool{
	"double": true, "float": true, "int32": true, "int64": true, "uint32": true, "uint64": true,
	"sint32": true, "sint64": true, "fixed32": true, "fixed64": true, "sfixed32": true, "sfixed64": true,
	"bool": true, "string": true, "bytes": true,
}

// IsBuiltinScalar reports whether name is one of protobuf's built-in scalar
// types.
func IsBuiltinScalar(name string) bool { return builtinScalars[name] }

func uriToDocURI(u ast.URI) protocol.URI { return protocol.URI(u) }
