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

package stringutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLowerSnakeCase(t *testing.T) {
	tests := map[string]string{
		"FooBar":     "foo_bar",
		"fooBar":     "foo_bar",
		"foo_bar":    "foo_bar",
		"FOOBarBaz":  "foo_bar_baz",
		"JSONPacket": "json_packet",
		"already":    "already",
	}
	for in, want := range tests {
		require.Equal(t, want, ToLowerSnakeCase(in), in)
	}
}

func TestToUpperSnakeCase(t *testing.T) {
	require.Equal(t, "FOO_BAR", ToUpperSnakeCase("fooBar"))
	require.Equal(t, "FOO_BAR", ToUpperSnakeCase("foo_bar"))
}

func TestToPascalCase(t *testing.T) {
	require.Equal(t, "FooBar", ToPascalCase("foo_bar"))
	require.Equal(t, "FOOBAR", ToPascalCase("FOO_BAR"), "an all-upper word is kept intact rather than re-cased")
	require.Equal(t, "Foo", ToPascalCase("foo"))
}

func TestIsLowerSnakeCase(t *testing.T) {
	require.True(t, IsLowerSnakeCase("foo_bar"))
	require.True(t, IsLowerSnakeCase("foo"))
	require.False(t, IsLowerSnakeCase("FooBar"))
	require.False(t, IsLowerSnakeCase("FOO_BAR"))
}

func TestIsUpperSnakeCase(t *testing.T) {
	require.True(t, IsUpperSnakeCase("FOO_BAR"))
	require.True(t, IsUpperSnakeCase("FOO"))
	require.False(t, IsUpperSnakeCase("foo_bar"))
	require.False(t, IsUpperSnakeCase("FooBar"))
}

func TestIsPascalCase(t *testing.T) {
	require.True(t, IsPascalCase("FooBar"))
	require.True(t, IsPascalCase("Foo"))
	require.False(t, IsPascalCase("fooBar"))
	require.False(t, IsPascalCase("FOO_BAR"))
}

func TestSliceToHumanString(t *testing.T) {
	require.Equal(t, "", SliceToHumanString(nil))
	require.Equal(t, "a", SliceToHumanString([]string{"a"}))
	require.Equal(t, "a and b", SliceToHumanString([]string{"a", "b"}))
	require.Equal(t, "a, b, and c", SliceToHumanString([]string{"a", "b", "c"}))
	require.Equal(t, `"a" and "b"`, SliceToHumanStringQuoted([]string{"a", "b"}))
	require.Equal(t, "a or b", SliceToHumanStringOr([]string{"a", "b"}))
	require.Equal(t, `"a" or "b"`, SliceToHumanStringOrQuoted([]string{"a", "b"}))
}
