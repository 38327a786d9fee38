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

import "github.com/DrBlury/protols/ast"

// TypeResolution is the outcome of resolving a type reference.
type TypeResolution struct {
	Symbol      SymbolInfo
	Found       bool
	// Accessible reports whether Symbol's file is fromURI itself or
	// reachable through fromURI's transitive imports. A Found-but-not-
	// Accessible result means the type exists somewhere in the workspace
	// but the referencing file never imported its defining file — the
	// diagnostics package reports this as a missing-import reference
	// rather than an unknown-type reference.
	Accessible bool
}

// ResolveType resolves typeName as written at scope (the full name of the
// enclosing message, or "" at file scope) within fromURI, following
// protobuf's scoping rules: an absolute name (leading '.') is looked up
// directly; a relative name is searched against scope and each of its
// ancestor scopes outward to the package root and then the empty package,
// the same precedence protoc itself uses.
func (w *Workspace) ResolveType(fromURI ast.URI, scope, typeName string) TypeResolution {
	if IsBuiltinScalar(typeName) {
		return TypeResolution{Found: false}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var info *SymbolInfo
	if rest, ok := stripLeadingDot(typeName); ok {
		info = w.symbols[rest]
	} else {
		for _, prefix := range ancestorPrefixes(scope) {
			candidate := fullName(prefix, typeName)
			if found, ok := w.symbols[candidate]; ok {
				info = found
				break
			}
		}
	}
	if info == nil {
		return TypeResolution{Found: false}
	}

	accessible := false
	for _, s := range w.accessibleSymbolsLocked(fromURI) {
		if s.FullName == info.FullName {
			accessible = true
			break
		}
	}
	return TypeResolution{Symbol: *info, Found: true, Accessible: accessible}
}

func stripLeadingDot(name string) (string, bool) {
	if len(name) > 0 && name[0] == '.' {
		return name[1:], true
	}
	return "", false
}

// ancestorPrefixes returns scope, its enclosing scopes outward, and
// finally "", in search-precedence order. For "a.B.C" it returns
// ["a.B.C", "a.B", "a", ""].
func ancestorPrefixes(scope string) []string {
	if scope == "" {
		return []string{""}
	}
	prefixes := []string{scope}
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == '.' {
			scope = scope[:i]
			prefixes = append(prefixes, scope)
		}
	}
	return append(prefixes, "")
}
