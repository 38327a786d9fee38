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

package completion

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
	"github.com/DrBlury/protols/workspace"
)

func newWorkspaceWithFile(t *testing.T, uri ast.URI, source string) *workspace.Workspace {
	t.Helper()
	ws := workspace.New(zap.NewNop())
	ws.UpdateFile(uri, parser.Parse(source, uri))
	return ws
}

func hasLabel(items []Item, label string) bool {
	for _, it := range items {
		if it.Label == label {
			return true
		}
	}
	return false
}

func TestClassifyImportPath(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	items := classifyImportPath(ws, `import "`)
	require.NotEmpty(t, items)
	require.True(t, hasLabel(items, "google/protobuf/timestamp.proto"))
}

func TestClassifyImportPathFiltersByTypedPrefix(t *testing.T) {
	ws := workspace.New(zap.NewNop())
	items := classifyImportPath(ws, `import "google/protobuf/time`)
	require.NotEmpty(t, items)
	for _, it := range items {
		require.Contains(t, it.Label, "google/protobuf/time")
	}
}

func TestClassifyKeywordOffersPrefixMatchesOnly(t *testing.T) {
	items := classifyKeyword("  rep")
	require.True(t, hasLabel(items, "repeated"))
	require.False(t, hasLabel(items, "optional"))
}

func TestClassifyKeywordBailsInsideStatement(t *testing.T) {
	require.Nil(t, classifyKeyword("  string name = 1;"))
}

func TestClassifyTypeOffersScalarsAndMessagesWithEmptyPrefix(t *testing.T) {
	uri := ast.URI("file:///types.proto")
	ws := newWorkspaceWithFile(t, uri, `
syntax = "proto3";

message Account {
  string name = 1;
}
`)
	items := classifyType(ws, uri, "optional")
	require.True(t, hasLabel(items, "string"))
	require.True(t, hasLabel(items, "Account"))
}

func TestClassifyTypeFiltersByQualifiedPrefix(t *testing.T) {
	uri := ast.URI("file:///types2.proto")
	ws := newWorkspaceWithFile(t, uri, `
syntax = "proto3";

message Account {
  string name = 1;
}
`)
	items := classifyType(ws, uri, "  google.protobuf.Time")
	require.True(t, hasLabel(items, "Timestamp"))
	require.False(t, hasLabel(items, "Account"))

	for _, it := range items {
		if it.Label == "Timestamp" {
			require.NotNil(t, it.LabelDetails)
			require.Equal(t, "google.protobuf", it.LabelDetails.Description)
		}
	}
}

func TestClassifyFieldNameUsesCommonScalarNames(t *testing.T) {
	items := classifyFieldName("  string ")
	require.True(t, hasLabel(items, "name"))
}

func TestClassifyFieldNameUsesWellKnownTypeNames(t *testing.T) {
	items := classifyFieldName("  google.protobuf.Timestamp ")
	require.True(t, hasLabel(items, "created_at"))
}

func TestClassifyFieldNameFallsBackToPascalCaseHeuristic(t *testing.T) {
	items := classifyFieldName("  AccountProfile ")
	require.True(t, hasLabel(items, "account_profile_id"))
	require.True(t, hasLabel(items, "account_profile"))
}

func TestClassifyFieldNumberSkipsReservedRange(t *testing.T) {
	doc := `
syntax = "proto3";

message Foo {
  string a = 1;
  reserved 2 to 3;
}
`
	req := Request{
		FullDocument:     doc,
		LineBeforeCursor: "  string b = ",
		Position:         protocol.Position{Line: 5, Character: 15},
	}
	items := classifyFieldNumber(req, req.LineBeforeCursor)
	require.True(t, hasLabel(items, "4"))
}

func TestClassifyEnumValueNumberStartsAtZero(t *testing.T) {
	c := container{kind: containerEnum, usedNumbers: map[int32]bool{}}
	items := classifyEnumValueNumber(c)
	require.True(t, hasLabel(items, "0"))
}

func TestClassifyEnumValueNumberSkipsUsed(t *testing.T) {
	c := container{kind: containerEnum, usedNumbers: map[int32]bool{0: true, 1: true}}
	items := classifyEnumValueNumber(c)
	require.True(t, hasLabel(items, "2"))
}

func TestClassifyOptionKeyFiltersByPrefix(t *testing.T) {
	items := classifyOptionKey("  string name = 1 [(buf.validate.field).string.")
	require.True(t, hasLabel(items, "(buf.validate.field).string.min_len"))
	require.False(t, hasLabel(items, "(buf.validate.field).required"))
}

func TestClassifyOptionKeyOptionStatement(t *testing.T) {
	items := classifyOptionKey("option (google.api.")
	require.True(t, hasLabel(items, "(google.api.method_signature)"))
}

func TestClassifyCELExpressionOffersBuiltinsAndFieldNames(t *testing.T) {
	doc := `
syntax = "proto3";

message Foo {
  string name = 1;
  option (buf.validate.message).cel = {expression: "this."};
}
`
	req := Request{
		FullDocument:     doc,
		LineBeforeCursor: `  option (buf.validate.message).cel = {expression: "this.`,
		Position:         protocol.Position{Line: 5, Character: 58},
	}
	items := classifyCEL(req, req.LineBeforeCursor)
	require.True(t, hasLabel(items, "this.name"))
	require.True(t, hasLabel(items, "has"))
}

func TestClassifyCELIgnoresClosedString(t *testing.T) {
	require.Nil(t, classifyCEL(Request{}, `  option (buf.validate.message).cel = {expression: "done"};`))
}

func TestFieldNamesIn(t *testing.T) {
	names := fieldNamesIn(`
  string name = 1;
  int32 count = 2;
`)
	require.Equal(t, []string{"name", "count"}, names)
}
