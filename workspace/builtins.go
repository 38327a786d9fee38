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
	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/builtin"
)

// BuiltinURIPrefix is the URI scheme prefix used for bundled well-known
// type stubs.
const BuiltinURIPrefix = builtin.URIPrefix

// registerBuiltins parses and indexes the bundled well-known type stubs.
// They are never evicted and never participate in import-resolution cache
// invalidation: they are effectively a second, permanent "files" map.
func (w *Workspace) registerBuiltins() {
	w.builtins = builtin.Files()
	for uri, f := range w.builtins {
		w.protoRoots[uri.Dir()] = true
		w.indexFileLocked(uri, f)
	}
}
