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

package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DrBlury/protols/ast"
)

func TestResolutionCacheKeyIsPathAloneWhenPathContainsASlash(t *testing.T) {
	a := ast.URI("file:///repo/a/one.proto")
	b := ast.URI("file:///repo/b/two.proto")
	require.Equal(t, resolutionCacheKey(a, "common/thing.proto"), resolutionCacheKey(b, "common/thing.proto"))
}

func TestResolutionCacheKeyIsPerImporterForBareFilenames(t *testing.T) {
	a := ast.URI("file:///repo/a/one.proto")
	b := ast.URI("file:///repo/b/two.proto")
	require.NotEqual(t, resolutionCacheKey(a, "common.proto"), resolutionCacheKey(b, "common.proto"))
}
