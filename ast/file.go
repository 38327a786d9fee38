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

package ast

// ImportKind distinguishes a plain import from `public`/`weak` variants.
type ImportKind int

const (
	ImportNormal ImportKind = iota
	ImportPublic
	ImportWeak
)

// ImportStmt is a single `import [weak|public] "path";` statement.
type ImportStmt struct {
	Path      string
	PathRange Range
	Kind      ImportKind

	Comments Comments
	Range    Range
}

// ParseDiagnostic is a best-effort syntax-error note attached directly to
// the tree by the parser. Package diagnostic turns these into full
// Diagnostic values with Kind == diagnostic.KindSyntax.
type ParseDiagnostic struct {
	Range   Range
	Message string
}

// ProtoFile is the root of the typed syntax tree for a single document.
type ProtoFile struct {
	URI URI

	Syntax  string // "proto2" | "proto3" | "" (unspecified, defaults to proto2)
	Edition string

	Package      string
	PackageRange Range

	Imports  []*ImportStmt
	Messages []*MessageDefinition
	Enums    []*EnumDefinition
	Services []*ServiceDefinition
	Extends  []*ExtendDefinition
	Options  []*Option

	// FloatingComments are comments not attached to any declaration: either
	// separated from the next declaration by a blank line, or trailing
	// after the last declaration.
	FloatingComments []Comment

	// ParseErrors are best-effort syntax-error notes; see ParseDiagnostic.
	ParseErrors []ParseDiagnostic

	// ParserBackend records which backend produced this tree ("recursive",
	// "lenient", "none" when every backend failed, or "" for a tree built by
	// hand rather than parsed).
	ParserBackend string

	Range Range
}

// IsProto3 reports whether the file is proto3 syntax. Editions files are
// not proto3 for the purposes of proto3-specific validation rules.
func (f *ProtoFile) IsProto3() bool {
	return f.Syntax == "proto3"
}

// IsProto2 reports whether the file is proto2 syntax, the default when
// neither `syntax` nor `edition` is declared.
func (f *ProtoFile) IsProto2() bool {
	return f.Syntax == "proto2" || (f.Syntax == "" && f.Edition == "")
}

// IsEdition reports whether the file uses the `edition = "...";` form.
func (f *ProtoFile) IsEdition() bool {
	return f.Edition != ""
}
