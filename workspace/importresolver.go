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
	"strings"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/internal/pkg/normalpath"
)

// resolutionCacheKey identifies one (importing file, literal import path)
// pair in importResolutions. An import path containing a '/' is keyed on
// the path alone, so every importer shares one cached resolution for it,
// including one first found by relativeToImporter; a bare filename import
// can legitimately mean a different neighbour depending on which directory
// it's written in, so the importing file's directory is folded into its key.
func resolutionCacheKey(fromURI ast.URI, importPath string) string {
	if strings.Contains(importPath, "/") {
		return importPath
	}
	return fromURI.Dir() + "\x00" + importPath
}

// resolveImportLocked resolves importPath as seen from fromURI, trying each
// strategy in turn and caching the outcome. Returns false if nothing
// matched under any strategy, including the builtin fallback.
func (w *Workspace) resolveImportLocked(fromURI ast.URI, importPath string) (ast.URI, bool) {
	key := resolutionCacheKey(fromURI, importPath)
	if uri, ok := w.importResolutions[key]; ok {
		return uri, true
	}

	mapped := importPath
	for _, m := range w.mappings {
		if rest, ok := stripVirtualPrefix(importPath, m.Virtual); ok {
			mapped = ast.JoinPath(m.Actual, rest)
			break
		}
	}

	candidates := []string{
		mapped,
	}
	if mapped != importPath {
		candidates = append(candidates, importPath)
	}

	for _, candidatePath := range candidates {
		if uri, ok := w.joinAgainstRoots(w.importPaths, candidatePath); ok {
			w.importResolutions[key] = uri
			return uri, true
		}
		if uri, ok := w.joinAgainstRoots(w.workspaceRoots, candidatePath); ok {
			w.importResolutions[key] = uri
			return uri, true
		}
		if uri, ok := w.joinAgainstProtoRoots(candidatePath); ok {
			w.importResolutions[key] = uri
			return uri, true
		}
	}

	if uri, ok := w.relativeToImporter(fromURI, importPath); ok {
		w.importResolutions[key] = uri
		return uri, true
	}
	if uri, ok := w.suffixMatch(importPath, true); ok {
		w.importResolutions[key] = uri
		return uri, true
	}
	if uri, ok := w.suffixMatch(importPath, false); ok {
		w.importResolutions[key] = uri
		return uri, true
	}
	if uri, ok := w.builtinMatch(importPath); ok {
		w.importResolutions[key] = uri
		return uri, true
	}
	return "", false
}

// stripVirtualPrefix reports whether importPath begins with virtual (at a
// path-component boundary) and, if so, returns the remainder.
func stripVirtualPrefix(importPath, virtual string) (string, bool) {
	virtual = strings.TrimSuffix(virtual, "/")
	if importPath == virtual {
		return "", true
	}
	if strings.HasPrefix(importPath, virtual+"/") {
		return importPath[len(virtual)+1:], true
	}
	return "", false
}

// joinAgainstRoots tries root+"/"+importPath for each configured root,
// returning the first that names a known file.
func (w *Workspace) joinAgainstRoots(roots []string, importPath string) (ast.URI, bool) {
	for _, root := range roots {
		joined := ast.JoinPath(root, importPath)
		if uri, ok := w.uriForPath(joined); ok {
			return uri, ok
		}
	}
	return "", false
}

// joinAgainstProtoRoots tries every directory known to contain at least one
// indexed file, the "derived proto roots" strategy: a workspace with no
// explicit configuration can still resolve imports between sibling files
// whose common ancestor has been visited.
func (w *Workspace) joinAgainstProtoRoots(importPath string) (ast.URI, bool) {
	for root := range w.protoRoots {
		joined := ast.JoinPath(root, importPath)
		if uri, ok := w.uriForPath(joined); ok {
			return uri, ok
		}
	}
	return "", false
}

// relativeToImporter resolves importPath relative to fromURI's own
// directory, the common case of a file importing a sibling by a path
// written relative to itself rather than to any configured root.
func (w *Workspace) relativeToImporter(fromURI ast.URI, importPath string) (ast.URI, bool) {
	joined := ast.JoinPath(fromURI.Dir(), importPath)
	return w.uriForPath(joined)
}

// suffixMatch scans every known file for one whose path ends with
// importPath. When boundaryOnly is true the match must land on a path
// separator (or the start of the string); the relaxed second pass exists
// for import paths written with a platform-specific separator or an
// unexpected number of leading directory components that still
// unambiguously name one known file.
func (w *Workspace) suffixMatch(importPath string, boundaryOnly bool) (ast.URI, bool) {
	want := strings.TrimPrefix(importPath, "/")
	var found ast.URI
	matches := 0
	for uri := range w.files {
		p := uri.Path()
		if !strings.HasSuffix(p, want) {
			continue
		}
		if boundaryOnly {
			cut := len(p) - len(want)
			if cut > 0 && p[cut-1] != '/' {
				continue
			}
		}
		found = uri
		matches++
	}
	if matches == 1 {
		return found, true
	}
	return "", false
}

// builtinMatch resolves importPath against the compiled-in well-known type
// stubs, the final fallback when no real file in the workspace provides it.
func (w *Workspace) builtinMatch(importPath string) (ast.URI, bool) {
	uri := ast.URI(BuiltinURIPrefix + strings.TrimPrefix(importPath, "/"))
	if _, ok := w.builtins[uri]; ok {
		return uri, true
	}
	return "", false
}

func (w *Workspace) uriForPath(path string) (ast.URI, bool) {
	want := ast.FileScheme + path
	if _, ok := w.files[ast.URI(want)]; ok {
		return ast.URI(want), true
	}
	return "", false
}

// invalidateResolutionsForLocked drops every cache entry keyed on uri as the
// importer, since its import statements (and hence relative resolution) may
// have just changed.
func (w *Workspace) invalidateResolutionsForLocked(uri ast.URI) {
	prefix := uri.Dir() + "\x00"
	for key := range w.importResolutions {
		if strings.HasPrefix(key, prefix) {
			delete(w.importResolutions, key)
		}
	}
}

// rescanPendingImportsLocked re-attempts resolution for every other known
// file's imports, since uri may now satisfy an import that previously
// failed to resolve (late binding: an importer can be opened before its
// imported file exists in the workspace).
func (w *Workspace) rescanPendingImportsLocked(uri ast.URI) {
	for otherURI, paths := range w.importsLiteral {
		if otherURI == uri {
			continue
		}
		for _, p := range paths {
			key := resolutionCacheKey(otherURI, p)
			if _, ok := w.importResolutions[key]; !ok {
				w.resolveImportLocked(otherURI, p)
			}
		}
	}
}

// GetImportsWithResolutions returns, for every import statement in uri, the
// statement itself paired with its resolved target URI (empty if
// unresolved).
func (w *Workspace) GetImportsWithResolutions(uri ast.URI) []ImportResolution {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, ok := w.files[uri]
	if !ok {
		return nil
	}
	out := make([]ImportResolution, 0, len(f.Imports))
	for _, imp := range f.Imports {
		resolved, ok := w.resolveImportLocked(uri, imp.Path)
		out = append(out, ImportResolution{Import: imp, ResolvedURI: resolved, Resolved: ok})
	}
	return out
}

// ImportResolution pairs an import statement with its resolved target.
type ImportResolution struct {
	Import      *ast.ImportStmt
	ResolvedURI ast.URI
	Resolved    bool
}

// GetImportedFileUris returns the resolved URIs of every import in uri,
// skipping ones that failed to resolve.
func (w *Workspace) GetImportedFileUris(uri ast.URI) []ast.URI {
	resolutions := w.GetImportsWithResolutions(uri)
	out := make([]ast.URI, 0, len(resolutions))
	for _, r := range resolutions {
		if r.Resolved {
			out = append(out, r.ResolvedURI)
		}
	}
	return out
}

// ResolveImportToUri is the exported, locking counterpart of
// resolveImportLocked, used by completion's import-path classifier to
// preview where a partially typed import string would land.
func (w *Workspace) ResolveImportToUri(fromURI ast.URI, importPath string) (ast.URI, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resolveImportLocked(fromURI, importPath)
}

// GetImportPathForFile is the inverse of import resolution: given a target
// file, it ranks every import path string that would currently resolve to
// it and returns the best one, used by organize-imports and by
// quick-fix "add missing import" actions.
func (w *Workspace) GetImportPathForFile(target ast.URI) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	targetPath := target.Path()
	var best string
	bestScore := -1
	consider := func(root string) {
		rel, ok := relUnder(root, targetPath)
		if !ok {
			return
		}
		score := len(root)
		if score > bestScore {
			bestScore = score
			best = rel
		}
	}
	for _, root := range w.importPaths {
		consider(root)
	}
	for _, root := range w.workspaceRoots {
		consider(root)
	}
	for root := range w.protoRoots {
		consider(root)
	}
	if best != "" {
		return best, true
	}
	if target.IsBuiltin() {
		return strings.TrimPrefix(string(target), BuiltinURIPrefix), true
	}
	return "", false
}

// relUnder reports whether path lies under root, returning the relative
// remainder if so.
func relUnder(root, path string) (string, bool) {
	if root == "" {
		return "", false
	}
	root = normalpath.Normalize(root)
	path = normalpath.Normalize(path)
	if path == root {
		return "", false
	}
	rel, err := normalpath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
