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

// Package diagnostic validates a single parsed file against protobuf's
// structural rules (tag numbers, enum numbering, naming convention,
// discouraged constructs) and against the workspace's type and import
// graph (unresolved references, non-canonical or unused imports).
package diagnostic

import (
	"encoding/json"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
)

// Kind classifies a Diagnostic, mirroring the distinct validation passes.
type Kind int

const (
	KindSyntax Kind = iota
	KindTagNumber
	KindNonIncreasing
	KindEnum
	KindNaming
	KindReference
	KindImport
	KindDiscouraged
	KindDeprecated
	KindExtensionRange
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindTagNumber:
		return "tag_number"
	case KindNonIncreasing:
		return "non_increasing"
	case KindEnum:
		return "enum"
	case KindNaming:
		return "naming"
	case KindReference:
		return "reference"
	case KindImport:
		return "import"
	case KindDiscouraged:
		return "discouraged"
	case KindDeprecated:
		return "deprecated"
	case KindExtensionRange:
		return "extension_range"
	default:
		return "unknown"
	}
}

// Data carries extra machine-readable context for a Diagnostic, serialized
// into protocol.Diagnostic.Data the way buflsp attaches its notes/help/debug
// triple; here it is narrower, just what a quick fix needs to act without
// re-deriving it from the message string.
type Data struct {
	// ImportPath is populated for KindReference ("add import X") and
	// KindImport ("should be imported via X") diagnostics.
	ImportPath string `json:"importPath,omitempty"`
}

// Diagnostic is one validator finding.
type Diagnostic struct {
	Range    ast.Range
	Severity protocol.DiagnosticSeverity
	Message  string
	Kind     Kind
	Data     *Data
}

// ToProtocol converts d into the LSP wire type, serializing Data into the
// Data field as a JSON string the same way buflsp's diagnosticData does,
// since protocol.Diagnostic.Data is an untyped interface{} that round-trips
// best as a pre-encoded string.
func (d Diagnostic) ToProtocol() protocol.Diagnostic {
	out := protocol.Diagnostic{
		Range:    d.Range,
		Severity: d.Severity,
		Message:  d.Message,
		Source:   "protols",
		Code:     d.Kind.String(),
	}
	if d.Data != nil {
		if encoded, err := json.Marshal(d.Data); err == nil {
			out.Data = string(encoded)
		}
	}
	return out
}

// ToProtocolDiagnostics converts a slice of Diagnostic to the wire type in
// one pass, the shape a textDocument/publishDiagnostics notification wants.
func ToProtocolDiagnostics(diags []Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = d.ToProtocol()
	}
	return out
}
