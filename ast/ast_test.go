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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsHalfOpenRange(t *testing.T) {
	r := NewRange(1, 0, 3, 5)
	require.True(t, Contains(r, Position{Line: 1, Character: 0}))
	require.True(t, Contains(r, Position{Line: 2, Character: 100}))
	require.False(t, Contains(r, Position{Line: 3, Character: 5}))
	require.False(t, Contains(r, Position{Line: 0, Character: 0}))
	require.False(t, Contains(r, Position{Line: 3, Character: 6}))
	require.False(t, Contains(r, Position{Line: 4, Character: 0}))
}

func TestProtoFileSyntaxClassification(t *testing.T) {
	proto3 := &ProtoFile{Syntax: "proto3"}
	require.True(t, proto3.IsProto3())
	require.False(t, proto3.IsProto2())
	require.False(t, proto3.IsEdition())

	proto2 := &ProtoFile{Syntax: "proto2"}
	require.True(t, proto2.IsProto2())
	require.False(t, proto2.IsProto3())

	unspecified := &ProtoFile{}
	require.True(t, unspecified.IsProto2())

	edition := &ProtoFile{Edition: "2023"}
	require.True(t, edition.IsEdition())
	require.False(t, edition.IsProto2())
}

func TestCommentsLeadingText(t *testing.T) {
	var empty Comments
	require.Equal(t, "", empty.LeadingText())

	c := Comments{Leading: []Comment{{Text: "// a"}, {Text: "// b"}}}
	require.Equal(t, "// a\n// b", c.LeadingText())
}

func TestURIPathDirBase(t *testing.T) {
	u := URI("file:///pkg/sub/account.proto")
	require.Equal(t, "/pkg/sub/account.proto", u.Path())
	require.Equal(t, "/pkg/sub", u.Dir())
	require.Equal(t, "account.proto", u.Base())
	require.False(t, u.IsBuiltin())
}

func TestURIIsBuiltin(t *testing.T) {
	u := URI(BuiltinScheme + "google/protobuf/timestamp.proto")
	require.True(t, u.IsBuiltin())
}

func TestURINormalizeBackslashes(t *testing.T) {
	u := URI(`file:///pkg\sub\account.proto`)
	require.Equal(t, "file:///pkg/sub/account.proto", u.Normalize())
}

func TestJoinPath(t *testing.T) {
	require.Equal(t, "/pkg/account.proto", JoinPath("/pkg", "account.proto"))
	require.Equal(t, "/pkg", JoinPath("/pkg", ""))
}
