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

package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURIForUsesBuiltinScheme(t *testing.T) {
	uri := URIFor("google/protobuf/timestamp.proto")
	require.True(t, uri.IsBuiltin())
	require.Equal(t, "builtin:///google/protobuf/timestamp.proto", string(uri))
}

func TestSourcesIsADefensiveCopy(t *testing.T) {
	out := Sources()
	out["google/protobuf/any.proto"] = "mutated"
	require.NotEqual(t, "mutated", sources["google/protobuf/any.proto"])
}

func TestFilesParsesEveryBundledSource(t *testing.T) {
	files := Files()
	require.Len(t, files, len(sources))
	for importPath := range sources {
		f, ok := files[URIFor(importPath)]
		require.True(t, ok, importPath)
		require.NotNil(t, f)
		require.Empty(t, f.ParseErrors, importPath)
	}
}

func TestFilesDeclareExpectedMessages(t *testing.T) {
	files := Files()
	ts := files[URIFor("google/protobuf/timestamp.proto")]
	var names []string
	for _, m := range ts.Messages {
		names = append(names, m.Name)
	}
	require.Contains(t, names, "Timestamp")
}
