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

// indexFileLocked walks f's declarations, registering a SymbolInfo for
// every named entity under its fully-qualified name.
func (w *Workspace) indexFileLocked(uri ast.URI, f *ast.ProtoFile) {
	docURI := uriToDocURI(uri)
	for _, m := range f.Messages {
		w.indexMessageLocked(uri, docURI, f.Package, "", m)
	}
	for _, e := range f.Enums {
		w.indexEnumLocked(uri, docURI, f.Package, "", e)
	}
	for _, s := range f.Services {
		w.indexServiceLocked(uri, docURI, f.Package, s)
	}
}

func joinScope(pkg, container string) string {
	switch {
	case pkg == "" && container == "":
		return ""
	case container == "":
		return pkg
	case pkg == "":
		return container
	default:
		return pkg + "." + container
	}
}

func fullName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

func (w *Workspace) registerLocked(uri ast.URI, info SymbolInfo) {
	w.symbols[info.FullName] = &info
	w.fileSymbolNames[uri] = append(w.fileSymbolNames[uri], info.FullName)
	if _, taken := w.simpleNameAlias[info.Name]; !taken {
		w.simpleNameAlias[info.Name] = info.FullName
	}
}

func (w *Workspace) indexMessageLocked(uri ast.URI, docURI protocol.URI, pkg, container string, m *ast.MessageDefinition) {
	scope := joinScope(pkg, container)
	full := fullName(scope, m.Name)
	w.registerLocked(uri, SymbolInfo{
		Name: m.Name, FullName: full, Kind: KindMessage,
		Location:      protocol.Location{URI: docURI, Range: m.Range},
		ContainerName: scope,
		Node:          m,
	})

	for _, fld := range m.Fields {
		w.registerLocked(uri, SymbolInfo{
			Name: fld.Name, FullName: fullName(full, fld.Name), Kind: KindField,
			Location:      protocol.Location{URI: docURI, Range: fld.Range},
			ContainerName: full,
			Node:          fld,
		})
	}
	for _, fld := range m.Maps {
		w.registerLocked(uri, SymbolInfo{
			Name: fld.Name, FullName: fullName(full, fld.Name), Kind: KindField,
			Location:      protocol.Location{URI: docURI, Range: fld.Range},
			ContainerName: full,
			Node:          fld,
		})
	}
	for _, grp := range m.Groups {
		w.registerLocked(uri, SymbolInfo{
			Name: grp.Name, FullName: fullName(full, grp.Name), Kind: KindField,
			Location:      protocol.Location{URI: docURI, Range: grp.Range},
			ContainerName: full,
			Node:          grp,
		})
		if grp.Body != nil {
			w.indexMessageLocked(uri, docURI, pkg, stripPkg(full, pkg), grp.Body)
		}
	}
	for _, oneof := range m.Oneofs {
		w.registerLocked(uri, SymbolInfo{
			Name: oneof.Name, FullName: fullName(full, oneof.Name), Kind: KindOneof,
			Location:      protocol.Location{URI: docURI, Range: oneof.Range},
			ContainerName: full,
			Node:          oneof,
		})
		for _, fld := range oneof.Fields {
			w.registerLocked(uri, SymbolInfo{
				Name: fld.Name, FullName: fullName(full, fld.Name), Kind: KindField,
				Location:      protocol.Location{URI: docURI, Range: fld.Range},
				ContainerName: full,
				Node:          fld,
			})
		}
	}
	for _, nested := range m.NestedMessages {
		w.indexMessageLocked(uri, docURI, pkg, stripPkg(full, pkg), nested)
	}
	for _, nested := range m.NestedEnums {
		w.indexEnumLocked(uri, docURI, pkg, stripPkg(full, pkg), nested)
	}
}

// stripPkg removes the leading "pkg." prefix from full, leaving the
// dotted container path indexMessageLocked/indexEnumLocked expect.
func stripPkg(full, pkg string) string {
	if pkg == "" {
		return full
	}
	if len(full) > len(pkg)+1 && full[:len(pkg)+1] == pkg+"." {
		return full[len(pkg)+1:]
	}
	return full
}

func (w *Workspace) indexEnumLocked(uri ast.URI, docURI protocol.URI, pkg, container string, e *ast.EnumDefinition) {
	scope := joinScope(pkg, container)
	full := fullName(scope, e.Name)
	w.registerLocked(uri, SymbolInfo{
		Name: e.Name, FullName: full, Kind: KindEnum,
		Location:      protocol.Location{URI: docURI, Range: e.Range},
		ContainerName: scope,
		Node:          e,
	})
	for _, v := range e.Values {
		w.registerLocked(uri, SymbolInfo{
			Name: v.Name, FullName: fullName(full, v.Name), Kind: KindEnumValue,
			Location:      protocol.Location{URI: docURI, Range: v.Range},
			ContainerName: full,
			Node:          v,
		})
	}
}

func (w *Workspace) indexServiceLocked(uri ast.URI, docURI protocol.URI, pkg string, s *ast.ServiceDefinition) {
	full := fullName(pkg, s.Name)
	w.registerLocked(uri, SymbolInfo{
		Name: s.Name, FullName: full, Kind: KindService,
		Location:      protocol.Location{URI: docURI, Range: s.Range},
		ContainerName: pkg,
		Node:          s,
	})
	for _, rpc := range s.Rpcs {
		w.registerLocked(uri, SymbolInfo{
			Name: rpc.Name, FullName: fullName(full, rpc.Name), Kind: KindRpc,
			Location:      protocol.Location{URI: docURI, Range: rpc.Range},
			ContainerName: full,
			Node:          rpc,
		})
	}
}
