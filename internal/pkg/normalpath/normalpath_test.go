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

package normalpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, ".", Normalize(""))
	require.Equal(t, ".", Normalize("."))
	require.Equal(t, "a/b", Normalize("a/./b"))
	require.Equal(t, "a/b", Normalize("a//b/"))
}

func TestBaseDir(t *testing.T) {
	require.Equal(t, "b.proto", Base("a/b.proto"))
	require.Equal(t, "a", Dir("a/b.proto"))
	require.Equal(t, ".", Dir("b.proto"))
}

func TestJoin(t *testing.T) {
	require.Equal(t, "a/b", Join("a", "b"))
	require.Equal(t, "a/b", Join("", "a", "b"))
	require.Equal(t, "", Join("", ""))
	require.Equal(t, "a", Join("a", ""))
}

func TestRel(t *testing.T) {
	rel, err := Rel("a/b", "a/b/c/d.proto")
	require.NoError(t, err)
	require.Equal(t, "c/d.proto", rel)

	rel, err = Rel("a/b", "a/c.proto")
	require.NoError(t, err)
	require.Equal(t, "../c.proto", rel)
}

func TestComponents(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c.proto"}, Components("a/b/c.proto"))
	require.Nil(t, Components("."))
	require.Nil(t, Components(""))
}

func TestIsMatch(t *testing.T) {
	require.True(t, IsMatch(".", "a/b/c.proto"))
	require.True(t, IsMatch("a/b", "a/b/c.proto"))
	require.True(t, IsMatch("a/b/c.proto", "a/b/c.proto"))
	require.False(t, IsMatch("a/x", "a/b/c.proto"))
}

func TestByDir(t *testing.T) {
	groups := ByDir("a/b.proto", "a/c.proto", "d/e.proto")
	require.Equal(t, []string{"a/b.proto", "a/c.proto"}, groups["a"])
	require.Equal(t, []string{"d/e.proto"}, groups["d"])
}
