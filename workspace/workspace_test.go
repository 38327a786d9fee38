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
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
	"github.com/DrBlury/protols/workspace"
)

const accountSource = `
syntax = "proto3";
package pkg;

message Account {
  string name = 1;
}
`

const serviceSource = `
syntax = "proto3";
package pkg;

import "account.proto";

message Request {
  Account account = 1;
}

service AccountService {
  rpc Get(Request) returns (Account);
}
`

func newTestWorkspace(t *testing.T) (ws *workspace.Workspace, accountURI, serviceURI ast.URI) {
	t.Helper()
	accountURI = ast.URI("file:///pkg/account.proto")
	serviceURI = ast.URI("file:///pkg/service.proto")
	ws = workspace.New(zap.NewNop())
	ws.UpdateFile(accountURI, parser.Parse(accountSource, accountURI))
	ws.UpdateFile(serviceURI, parser.Parse(serviceSource, serviceURI))
	return ws, accountURI, serviceURI
}

func fullNames(syms []workspace.SymbolInfo) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.FullName
	}
	return out
}

func TestIndexingRegistersSymbolsAcrossFiles(t *testing.T) {
	ws, _, _ := newTestWorkspace(t)
	names := fullNames(ws.GetAllSymbols())
	require.Contains(t, names, "pkg.Account")
	require.Contains(t, names, "pkg.Account.name")
	require.Contains(t, names, "pkg.Request")
	require.Contains(t, names, "pkg.Request.account")
	require.Contains(t, names, "pkg.AccountService")
	require.Contains(t, names, "pkg.AccountService.Get")
}

func TestGetSymbolsInFileIsScopedAndOrdered(t *testing.T) {
	ws, accountURI, _ := newTestWorkspace(t)
	syms := ws.GetSymbolsInFile(accountURI)
	require.Len(t, syms, 2)
	require.Equal(t, "pkg.Account", syms[0].FullName)
	require.Equal(t, "pkg.Account.name", syms[1].FullName)
}

func TestRemoveFileEvictsItsSymbols(t *testing.T) {
	ws, accountURI, _ := newTestWorkspace(t)
	ws.RemoveFile(accountURI)
	require.NotContains(t, fullNames(ws.GetAllSymbols()), "pkg.Account")
	_, ok := ws.GetFile(accountURI)
	require.False(t, ok)
}

func TestImportResolutionIsRelativeToImporter(t *testing.T) {
	ws, accountURI, serviceURI := newTestWorkspace(t)
	resolved, ok := ws.ResolveImportToUri(serviceURI, "account.proto")
	require.True(t, ok)
	require.Equal(t, accountURI, resolved)
}

func TestGetAccessibleSymbolsFollowsImports(t *testing.T) {
	ws, _, serviceURI := newTestWorkspace(t)
	names := fullNames(ws.GetAccessibleSymbols(serviceURI))
	require.Contains(t, names, "pkg.Account")
	require.Contains(t, names, "pkg.Request")
}

func TestGetImportPathForFilePrefersProtoRoot(t *testing.T) {
	ws, accountURI, _ := newTestWorkspace(t)
	path, ok := ws.GetImportPathForFile(accountURI)
	require.True(t, ok)
	require.Equal(t, "account.proto", path)
}

func TestResolveTypeFindsAndChecksAccessibility(t *testing.T) {
	ws, _, serviceURI := newTestWorkspace(t)
	res := ws.ResolveType(serviceURI, "pkg.Request", "Account")
	require.True(t, res.Found)
	require.True(t, res.Accessible)
	require.Equal(t, "pkg.Account", res.Symbol.FullName)
}

func TestResolveTypeReportsUnknown(t *testing.T) {
	ws, _, serviceURI := newTestWorkspace(t)
	res := ws.ResolveType(serviceURI, "pkg.Request", "DoesNotExist")
	require.False(t, res.Found)
}

func TestFindReferencesCoversDeclarationAndEveryUse(t *testing.T) {
	ws, _, _ := newTestWorkspace(t)
	refs := ws.FindReferences("pkg.Account")
	require.Len(t, refs, 3)
}

func TestRenamePlanGroupsEditsByDocument(t *testing.T) {
	ws, accountURI, serviceURI := newTestWorkspace(t)
	edits := ws.RenamePlan("pkg.Account", "Customer")
	require.Len(t, edits[protocol.URI(accountURI)], 1)
	require.Len(t, edits[protocol.URI(serviceURI)], 2)
	for _, e := range edits[protocol.URI(serviceURI)] {
		require.Equal(t, "Customer", e.NewText)
	}
}

func TestToDocumentSymbolsNestsFieldsUnderTheirMessage(t *testing.T) {
	ws, accountURI, _ := newTestWorkspace(t)
	syms := ws.ToDocumentSymbols(accountURI)
	require.Len(t, syms, 1)
	require.Equal(t, "Account", syms[0].Name)
	require.Len(t, syms[0].Children, 1)
	require.Equal(t, "name", syms[0].Children[0].Name)
}

func TestToWorkspaceSymbolsFiltersByQuery(t *testing.T) {
	ws, _, _ := newTestWorkspace(t)
	syms := ws.ToWorkspaceSymbols("Request")
	var sawRequestMessage bool
	for _, s := range syms {
		require.NotEqual(t, "AccountService", s.Name)
		if s.Name == "Request" {
			sawRequestMessage = true
		}
	}
	require.True(t, sawRequestMessage)
}
