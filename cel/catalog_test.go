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

package cel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKeyword(t *testing.T) {
	require.True(t, IsKeyword("this"))
	require.True(t, IsKeyword("true"))
	require.False(t, IsKeyword("has"))
	require.False(t, IsKeyword("notakeyword"))
}

func TestIsMacro(t *testing.T) {
	require.True(t, IsMacro("has"))
	require.True(t, IsMacro("exists"))
	require.True(t, IsMacro("exists_one"))
	require.False(t, IsMacro("size"), "size is deliberately excluded in favor of its method form")
	require.False(t, IsMacro("startsWith"))
}

func TestOperatorSymbol(t *testing.T) {
	tests := []struct {
		funcName string
		want     string
	}{
		{"_&&_", "&&"},
		{"_||_", "||"},
		{"_==_", "=="},
		{"_?_:_", "?"},
	}
	for _, tt := range tests {
		got, ok := OperatorSymbol(tt.funcName)
		require.True(t, ok, tt.funcName)
		require.Equal(t, tt.want, got)
	}

	_, ok := OperatorSymbol("not_an_operator")
	require.False(t, ok)
}

func TestBuiltinFunctionsIsDefensiveCopy(t *testing.T) {
	fns := BuiltinFunctions()
	require.NotEmpty(t, fns)
	require.Contains(t, fns, "has")
	require.Contains(t, fns, "matches")

	fns[0] = "mutated"
	require.NotEqual(t, "mutated", BuiltinFunctions()[0])
}
