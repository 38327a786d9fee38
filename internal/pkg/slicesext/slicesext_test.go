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

package slicesext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToUniqueSorted(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, ToUniqueSorted([]string{"c", "a", "b", "a", "c"}))
	require.Equal(t, []int{1, 2, 3}, ToUniqueSorted([]int{3, 1, 2, 1}))
}

func TestDeduplicate(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, Deduplicate([]string{"a", "b", "a", "c", "b"}))
	require.Empty(t, Deduplicate([]string(nil)))
}

func TestDeduplicateAny(t *testing.T) {
	type pair struct{ key, value string }
	in := []pair{{"k1", "first"}, {"k2", "x"}, {"k1", "second"}}
	out := DeduplicateAny(in, func(p pair) string { return p.key })
	require.Equal(t, []pair{{"k1", "first"}, {"k2", "x"}}, out)
}

func TestDuplicates(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Duplicates([]string{"a", "b", "a", "c", "b"}))
	require.Empty(t, Duplicates([]string{"a", "b", "c"}))
}

func TestElementsContained(t *testing.T) {
	require.True(t, ElementsContained([]string{"a", "b", "c"}, []string{"a", "c"}))
	require.False(t, ElementsContained([]string{"a", "b"}, []string{"a", "z"}))
	require.True(t, ElementsContained([]string{"a"}, nil))
}

func TestMap(t *testing.T) {
	out := Map([]int{1, 2, 3}, func(n int) string { return string(rune('a' + n - 1)) })
	require.Equal(t, []string{"a", "b", "c"}, out)
}

func TestFilter(t *testing.T) {
	out := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	require.Equal(t, []int{2, 4}, out)
}

func TestToChunks(t *testing.T) {
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ToChunks([]int{1, 2, 3, 4, 5}, 2))
	require.Nil(t, ToChunks([]int{1, 2}, 0))
	require.Equal(t, [][]int{{1, 2, 3}}, ToChunks([]int{1, 2, 3}, 5))
}
