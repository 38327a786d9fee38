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

package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/diagnostic"
	"github.com/DrBlury/protols/parser"
	"github.com/DrBlury/protols/workspace"
)

func mustValidate(t *testing.T, ws *workspace.Workspace, uri ast.URI, source string) []diagnostic.Diagnostic {
	t.Helper()
	file := parser.Parse(source, uri)
	ws.UpdateFile(uri, file)
	return diagnostic.Validate(ws, uri)
}

func kinds(diags []diagnostic.Diagnostic) []diagnostic.Kind {
	out := make([]diagnostic.Kind, len(diags))
	for i, d := range diags {
		out[i] = d.Kind
	}
	return out
}

func TestValidateDuplicateFieldNumber(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///dup.proto", `
syntax = "proto3";
message Foo {
  string name = 1;
  string other = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindTagNumber)
}

func TestValidateNonIncreasingFieldNumber(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///nonincreasing.proto", `
syntax = "proto3";
message Foo {
  string b = 2;
  string a = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindNonIncreasing)
}

func TestValidateNonIncreasingFieldNumberUsesSourceOrderNotFalsePositive(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///interleaved_ok.proto", `
syntax = "proto3";
message Foo {
  oneof choice {
    string a = 1;
  }
  string b = 2;
}
`)
	require.NotContains(t, kinds(diags), diagnostic.KindNonIncreasing)
}

func TestValidateNonIncreasingFieldNumberCatchesInterleavedOneof(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///interleaved_bad.proto", `
syntax = "proto3";
message Foo {
  oneof choice {
    string a = 2;
  }
  string b = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindNonIncreasing)
}

func TestValidateReservedRangeOverlap(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///reserved.proto", `
syntax = "proto3";
message Foo {
  reserved 1 to 5;
  string name = 3;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindTagNumber)
}

func TestValidateEnumFirstValueMustBeZero(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///enum.proto", `
syntax = "proto3";
enum Status {
  ACTIVE = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindEnum)
	for _, d := range diags {
		if d.Kind == diagnostic.KindEnum {
			require.Equal(t, protocol.DiagnosticSeverityWarning, d.Severity)
		}
	}
}

func TestValidateNamingConventions(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///naming.proto", `
syntax = "proto3";
message foo_message {
  string BadFieldName = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindNaming)
}

func TestValidateNamingAllowsScreamingSnakeCaseFields(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///screaming.proto", `
syntax = "proto3";
message Foo {
  string HTTP_PORT = 1;
}
`)
	require.NotContains(t, kinds(diags), diagnostic.KindNaming)
}

func TestValidateUnknownReference(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///unknown.proto", `
syntax = "proto3";
message Foo {
  Bar bar = 1;
}
`)
	require.Contains(t, kinds(diags), diagnostic.KindReference)
}

func TestValidateNoDiagnosticsForCleanFile(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	diags := mustValidate(t, ws, "file:///clean.proto", `
syntax = "proto3";

message Account {
  string account_id = 1;
  string display_name = 2;
}
`)
	for _, d := range diags {
		require.NotEqual(t, diagnostic.KindTagNumber, d.Kind)
		require.NotEqual(t, diagnostic.KindNaming, d.Kind)
		require.NotEqual(t, diagnostic.KindReference, d.Kind)
	}
}

func TestValidateDeprecatedReference(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	uri := ast.URI("file:///deprecated.proto")
	file := parser.Parse(`
syntax = "proto3";

message Old {
  option deprecated = true;
  string name = 1;
}

message New {
  Old old = 1;
}
`, uri)
	ws.UpdateFile(uri, file)

	diags := diagnostic.Validate(ws, uri)
	require.Contains(t, kinds(diags), diagnostic.KindDeprecated)
}

func TestOrganizeImportsRewritesUsedImportToCanonicalPath(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	barURI := ast.URI("file:///pkg/bar.proto")
	ws.UpdateFile(barURI, parser.Parse(`
syntax = "proto3";
package pkg;
message Bar {}
`, barURI))

	mainURI := ast.URI("file:///pkg/main.proto")
	mainFile := parser.Parse(`
syntax = "proto3";
import "pkg/bar.proto";

message Foo {
  pkg.Bar bar = 1;
}
`, mainURI)
	ws.UpdateFile(mainURI, mainFile)

	edits := diagnostic.OrganizeImports(ws, mainURI)
	require.Len(t, edits, 1)
	require.Contains(t, edits[0].NewText, "bar.proto")
}
