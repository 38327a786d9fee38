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

package parser

import "github.com/DrBlury/protols/ast"

// defaultSelector prefers the hand-written recursive-descent backend and
// falls back to the lenient scanner.
var defaultSelector = NewSelector(Recursive{}, Lenient{})

// Parse is the package-level parser entry point used by the rest of
// protols. It never fails: see Selector.Parse.
func Parse(text string, uri ast.URI) *ast.ProtoFile {
	return defaultSelector.Parse(text, uri)
}

// BackendStats reports the default selector's accumulated backend
// reliability statistics, useful for a CLI's --verbose output or LSP health
// check.
func BackendStats(backend string) Stats {
	return defaultSelector.StatsFor(backend)
}
