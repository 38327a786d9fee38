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

package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
)

const uri = ast.URI("file:///pkg/account.proto")

func TestParseBasicMessageUsesRecursiveBackend(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";
package pkg;

message Account {
  string name = 1;
  int32 age = 2;
}
`, uri)
	require.Equal(t, "recursive", f.ParserBackend)
	require.Empty(t, f.ParseErrors)
	require.Equal(t, "proto3", f.Syntax)
	require.Equal(t, "pkg", f.Package)
	require.Len(t, f.Messages, 1)

	m := f.Messages[0]
	require.Equal(t, "Account", m.Name)
	require.Len(t, m.Fields, 2)
	require.Equal(t, "name", m.Fields[0].Name)
	require.Equal(t, "string", m.Fields[0].FieldType)
	require.Equal(t, int32(1), m.Fields[0].Number)
	require.Equal(t, "age", m.Fields[1].Name)
	require.Equal(t, int32(2), m.Fields[1].Number)
}

func TestParseImportKinds(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";
import "a.proto";
import weak "b.proto";
import public "c.proto";
`, uri)
	require.Empty(t, f.ParseErrors)
	require.Len(t, f.Imports, 3)
	require.Equal(t, "a.proto", f.Imports[0].Path)
	require.Equal(t, ast.ImportNormal, f.Imports[0].Kind)
	require.Equal(t, "b.proto", f.Imports[1].Path)
	require.Equal(t, ast.ImportWeak, f.Imports[1].Kind)
	require.Equal(t, "c.proto", f.Imports[2].Path)
	require.Equal(t, ast.ImportPublic, f.Imports[2].Kind)
}

func TestParseEditionsSyntax(t *testing.T) {
	f := parser.Parse(`edition = "2023";`, uri)
	require.Empty(t, f.ParseErrors)
	require.Equal(t, "2023", f.Edition)
	require.True(t, f.IsEdition())
}

func TestParseMapOneofAndNestedTypes(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

message Account {
  map<string, int32> balances = 1;

  oneof contact {
    string email = 2;
    string phone = 3;
  }

  message Address {
    string city = 1;
  }

  enum Status {
    ACTIVE = 0;
    CLOSED = 1;
  }
}
`, uri)
	require.Empty(t, f.ParseErrors)
	m := f.Messages[0]

	require.Len(t, m.Maps, 1)
	require.Equal(t, "balances", m.Maps[0].Name)
	require.Equal(t, "string", m.Maps[0].KeyType)
	require.Equal(t, "int32", m.Maps[0].ValueType)
	require.Equal(t, int32(1), m.Maps[0].Number)

	require.Len(t, m.Oneofs, 1)
	require.Equal(t, "contact", m.Oneofs[0].Name)
	require.Len(t, m.Oneofs[0].Fields, 2)
	require.Equal(t, "email", m.Oneofs[0].Fields[0].Name)

	require.Len(t, m.NestedMessages, 1)
	require.Equal(t, "Address", m.NestedMessages[0].Name)

	require.Len(t, m.NestedEnums, 1)
	require.Equal(t, "Status", m.NestedEnums[0].Name)
	require.Equal(t, int32(0), m.NestedEnums[0].Values[0].Number)
}

func TestParseProto2GroupsReservedAndExtensions(t *testing.T) {
	f := parser.Parse(`
syntax = "proto2";

message Account {
  optional group Detail = 1 {
    optional string note = 1;
  }

  reserved 2, 5 to 10, 20 to max;
  reserved "old_field", "also_old";

  extensions 100 to 199;
}
`, uri)
	require.Empty(t, f.ParseErrors)
	m := f.Messages[0]

	require.Len(t, m.Groups, 1)
	g := m.Groups[0]
	require.Equal(t, "Detail", g.Name)
	require.Equal(t, int32(1), g.Number)
	require.Equal(t, ast.ModifierOptional, g.Modifier)
	require.NotNil(t, g.Body)
	require.Len(t, g.Body.Fields, 1)
	require.Equal(t, "note", g.Body.Fields[0].Name)

	require.Len(t, m.Reserved, 2)
	require.Len(t, m.Reserved[0].Ranges, 3)
	require.Equal(t, int32(2), m.Reserved[0].Ranges[0].Start)
	require.Equal(t, int32(2), m.Reserved[0].Ranges[0].End)
	require.Equal(t, int32(5), m.Reserved[0].Ranges[1].Start)
	require.Equal(t, int32(10), m.Reserved[0].Ranges[1].End)
	require.Equal(t, int32(20), m.Reserved[0].Ranges[2].Start)
	require.Equal(t, int32(ast.MaxTagNumber), m.Reserved[0].Ranges[2].End)
	require.Equal(t, []string{"old_field", "also_old"}, m.Reserved[1].Names)

	require.Len(t, m.Extensions, 1)
	require.Equal(t, int32(100), m.Extensions[0].Ranges[0].Start)
	require.Equal(t, int32(199), m.Extensions[0].Ranges[0].End)
}

func TestParseEnumNegativeValuesAndOptions(t *testing.T) {
	f := parser.Parse(`
syntax = "proto2";

enum Status {
  option allow_alias = true;
  UNKNOWN = -1;
  ACTIVE = 0 [deprecated = true];
}
`, uri)
	require.Empty(t, f.ParseErrors)
	e := f.Enums[0]
	require.Len(t, e.Options, 1)
	require.Equal(t, "allow_alias", e.Options[0].Name)
	require.Len(t, e.Values, 2)
	require.Equal(t, int32(-1), e.Values[0].Number)
	require.Equal(t, int32(0), e.Values[1].Number)
	require.Len(t, e.Values[1].Options, 1)
	require.Equal(t, "deprecated", e.Values[1].Options[0].Name)
}

func TestParseServiceWithStreamingRpcAndOptions(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

service AccountService {
  option deprecated = true;

  rpc Get(GetRequest) returns (Account);
  rpc Watch(stream WatchRequest) returns (stream Account) {
    option idempotency_level = NO_SIDE_EFFECTS;
  }
}
`, uri)
	require.Empty(t, f.ParseErrors)
	require.Len(t, f.Services, 1)
	s := f.Services[0]
	require.Len(t, s.Options, 1)
	require.Len(t, s.Rpcs, 2)

	get := s.Rpcs[0]
	require.Equal(t, "Get", get.Name)
	require.Equal(t, "GetRequest", get.InputType)
	require.False(t, get.InputStream)
	require.Equal(t, "Account", get.OutputType)
	require.False(t, get.OutputStream)

	watch := s.Rpcs[1]
	require.Equal(t, "Watch", watch.Name)
	require.True(t, watch.InputStream)
	require.Equal(t, "WatchRequest", watch.InputType)
	require.True(t, watch.OutputStream)
	require.Len(t, watch.Options, 1)
}

func TestParseExtendBlock(t *testing.T) {
	f := parser.Parse(`
syntax = "proto2";

extend google.protobuf.FieldOptions {
  optional string validation_rule = 50000;
}
`, uri)
	require.Empty(t, f.ParseErrors)
	require.Len(t, f.Extends, 1)
	ext := f.Extends[0]
	require.Equal(t, "google.protobuf.FieldOptions", ext.Extendee)
	require.Len(t, ext.Fields, 1)
	require.Equal(t, "validation_rule", ext.Fields[0].Name)
	require.Equal(t, ast.ModifierOptional, ext.Fields[0].Modifier)
}

func TestParseFieldOptionsAndExtensionOptionName(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

message Account {
  string email = 1 [(buf.validate.field).string.email = true, deprecated = true];
}
`, uri)
	require.Empty(t, f.ParseErrors)
	opts := f.Messages[0].Fields[0].Options
	require.Len(t, opts, 2)
	require.Equal(t, "(buf.validate.field).string.email", opts[0].Name)
	require.Equal(t, "true", opts[0].Value)
	require.Equal(t, "deprecated", opts[1].Name)
}

func TestParseRecoversFromUnexpectedTopLevelToken(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

???

message Account {
  string name = 1;
}
`, uri)
	require.NotEmpty(t, f.ParseErrors)
	require.Len(t, f.Messages, 1)
	require.Equal(t, "Account", f.Messages[0].Name)
}

func TestParseRecoversFromUnclosedMessageBody(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

message Broken {
  string name = 1;
`, uri)
	require.NotEmpty(t, f.ParseErrors)
	require.Len(t, f.Messages, 1)
	require.Equal(t, "Broken", f.Messages[0].Name)
}

func TestParseAttachesLeadingAndTrailingComments(t *testing.T) {
	f := parser.Parse(`
syntax = "proto3";

// Account holds a single record.
message Account {
  string name = 1; // the display name
}
`, uri)
	require.Empty(t, f.ParseErrors)
	m := f.Messages[0]
	require.Len(t, m.Comments.Leading, 1)
	require.Equal(t, "// Account holds a single record.", m.Comments.Leading[0].Text)
	require.NotNil(t, m.Fields[0].Comments.Trailing)
	require.Equal(t, "// the display name", m.Fields[0].Comments.Trailing.Text)
}

// fakeBackend is a hand-built Backend used to drive the Selector through its
// fallback path without depending on Recursive/Lenient's actual behavior.
type fakeBackend struct {
	name   string
	tree   *ast.ProtoFile
	err    error
	panics bool
}

func (b fakeBackend) Name() string { return b.name }

func (b fakeBackend) Parse(text string, u ast.URI) (*ast.ProtoFile, error) {
	if b.panics {
		panic("boom")
	}
	return b.tree, b.err
}

func TestSelectorFallsBackToSecondBackendOnError(t *testing.T) {
	first := fakeBackend{name: "first", err: errors.New("nope")}
	second := fakeBackend{name: "second", tree: &ast.ProtoFile{URI: uri, ParserBackend: "second"}}
	sel := parser.NewSelector(first, second)

	tree := sel.Parse("irrelevant", uri)
	require.Equal(t, "second", tree.ParserBackend)

	firstStats := sel.StatsFor("first")
	require.Equal(t, 1, firstStats.Attempts)
	require.Equal(t, 0, firstStats.Successes)
	require.Equal(t, 1, firstStats.Failures)
	require.Error(t, firstStats.LastError)

	secondStats := sel.StatsFor("second")
	require.Equal(t, 1, secondStats.Attempts)
	require.Equal(t, 1, secondStats.Successes)
	require.Equal(t, 0, secondStats.Failures)
}

func TestSelectorRecoversFromBackendPanic(t *testing.T) {
	panicky := fakeBackend{name: "panicky", panics: true}
	fallback := fakeBackend{name: "fallback", tree: &ast.ProtoFile{URI: uri, ParserBackend: "fallback"}}
	sel := parser.NewSelector(panicky, fallback)

	tree := sel.Parse("irrelevant", uri)
	require.Equal(t, "fallback", tree.ParserBackend)
	require.Equal(t, 1, sel.StatsFor("panicky").Failures)
}

func TestSelectorSynthesizesFailureWhenEveryBackendFails(t *testing.T) {
	onlyFailure := fakeBackend{name: "only", err: errors.New("dead")}
	sel := parser.NewSelector(onlyFailure)

	tree := sel.Parse("irrelevant", uri)
	require.Equal(t, "none", tree.ParserBackend)
	require.Len(t, tree.ParseErrors, 1)
	require.Contains(t, tree.ParseErrors[0].Message, "dead")
}

func TestSelectorStatsForUnknownBackendIsZeroValue(t *testing.T) {
	sel := parser.NewSelector(fakeBackend{name: "only"})
	require.Equal(t, parser.Stats{}, sel.StatsFor("nonexistent"))
}

func TestBackendStatsTracksDefaultSelector(t *testing.T) {
	parser.Parse(`syntax = "proto3";`, uri)
	stats := parser.BackendStats("recursive")
	require.GreaterOrEqual(t, stats.Attempts, 1)
	require.GreaterOrEqual(t, stats.Successes, 1)
}
