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

package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
	"github.com/DrBlury/protols/workspace"
)

func TestLoadConfigMissingFileYieldsZeroValue(t *testing.T) {
	cfg, err := workspace.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Empty(t, cfg.ImportPaths)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protols.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_real_field: true\n"), 0o644))
	_, err := workspace.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigAndApplyWiresImportPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protols.yaml")
	yamlBody := "import_paths:\n  - /vendor/proto\nworkspace_roots:\n  - /repo\nmappings:\n  - virtual: vendor\n    actual: /vendor/proto\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

	cfg, err := workspace.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"/vendor/proto"}, cfg.ImportPaths)
	require.Equal(t, []string{"/repo"}, cfg.WorkspaceRoots)
	require.Equal(t, []workspace.ConfigMapping{{Virtual: "vendor", Actual: "/vendor/proto"}}, cfg.Mappings)

	ws := workspace.New(zap.NewNop())
	ws.Apply(cfg)

	vendoredURI := ast.URI("file:///vendor/proto/a.proto")
	ws.UpdateFile(vendoredURI, parser.Parse("syntax = \"proto3\";\n", vendoredURI))

	mainURI := ast.URI("file:///repo/main.proto")
	resolved, ok := ws.ResolveImportToUri(mainURI, "a.proto")
	require.True(t, ok)
	require.Equal(t, vendoredURI, resolved)
}
