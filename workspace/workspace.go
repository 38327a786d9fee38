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
	"sort"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/internal/pkg/slicesext"
)

// Mapping is a virtual-path import mapping.
type Mapping struct {
	Virtual string
	Actual  string
}

// Workspace is the singleton semantic index. It is the analyzer, the
// import resolver, and the type resolver rolled into one façade; every
// mutation runs to completion on the calling goroutine, and the exported
// methods take an internal mutex only to make that safe to use from a
// concurrent host (e.g. an LSP server whose jsonrpc dispatch already
// serializes calls, but whose diagnostics publisher may run on another
// goroutine).
type Workspace struct {
	mu     sync.Mutex
	logger *zap.Logger

	files map[ast.URI]*ast.ProtoFile

	// symbols is the authoritative fullName -> SymbolInfo index.
	symbols map[string]*SymbolInfo
	// simpleNameAlias is a first-writer-wins convenience index, kept only
	// as a hint for quick-jump features; it is never used for type
	// resolution, since an unqualified name may collide across packages.
	simpleNameAlias map[string]string
	// fileSymbolNames supports O(len) eviction of a file's symbols on
	// updateFile/removeFile without a full index scan.
	fileSymbolNames map[ast.URI][]string

	// importsLiteral is URI -> the literal import path strings as written
	// in source order.
	importsLiteral map[ast.URI][]string

	// importResolutions is the resolver cache, keyed by resolutionCacheKey.
	importResolutions map[string]ast.URI

	importPaths    []string
	workspaceRoots []string
	mappings       []Mapping
	// protoRoots is derived: every directory containing a known file, plus
	// every configured importPath/workspaceRoot and externally declared
	// root.
	protoRoots map[string]bool

	builtins map[ast.URI]*ast.ProtoFile
}

// New constructs an empty Workspace and registers the bundled well-known
// type stubs.
func New(logger *zap.Logger) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Workspace{
		logger:            logger,
		files:             make(map[ast.URI]*ast.ProtoFile),
		symbols:           make(map[string]*SymbolInfo),
		simpleNameAlias:   make(map[string]string),
		fileSymbolNames:   make(map[ast.URI][]string),
		importsLiteral:    make(map[ast.URI][]string),
		importResolutions: make(map[string]ast.URI),
		protoRoots:        make(map[string]bool),
		builtins:          make(map[ast.URI]*ast.ProtoFile),
	}
	w.registerBuiltins()
	return w
}

// --- Mutations ---

// UpdateFile registers a parsed document. Parsing text is not this
// package's concern: callers hand in an already-parsed *ast.ProtoFile
// (typically via parser.Parse), keeping Workspace decoupled from a
// specific parser backend. UpdateFile is idempotent and incremental: it
// evicts the file's old symbols and resolutions before re-indexing.
func (w *Workspace) UpdateFile(uri ast.URI, file *ast.ProtoFile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updateFileLocked(uri, file)
}

func (w *Workspace) updateFileLocked(uri ast.URI, file *ast.ProtoFile) {
	// 1. Evict all symbols whose location URI equals the updated URI.
	w.evictSymbolsLocked(uri)

	// 2. Store the new tree.
	w.files[uri] = file
	w.protoRoots[uri.Dir()] = true

	// 3. Register the literal import list.
	paths := make([]string, 0, len(file.Imports))
	for _, imp := range file.Imports {
		paths = append(paths, imp.Path)
	}
	w.importsLiteral[uri] = paths

	// 4. Re-run resolution for the file's imports and cross-resolve against
	// pending imports elsewhere.
	w.invalidateResolutionsForLocked(uri)
	for _, imp := range file.Imports {
		w.resolveImportLocked(uri, imp.Path)
	}
	w.rescanPendingImportsLocked(uri)

	// 5. Walk the tree registering symbols.
	w.indexFileLocked(uri, file)

	w.logger.Debug("workspace: updated file", zap.String("uri", string(uri)))
}

// RemoveFile destroys a ProtoFile: its symbols are evicted and any
// importResolutions entries pointing at it are dropped.
func (w *Workspace) RemoveFile(uri ast.URI) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.evictSymbolsLocked(uri)
	delete(w.files, uri)
	delete(w.importsLiteral, uri)

	for key, resolved := range w.importResolutions {
		if resolved == uri {
			delete(w.importResolutions, key)
		}
	}
	w.rebuildProtoRootsLocked()
}

func (w *Workspace) evictSymbolsLocked(uri ast.URI) {
	for _, name := range w.fileSymbolNames[uri] {
		if info, ok := w.symbols[name]; ok && info.Location.URI == uriToDocURI(uri) {
			delete(w.symbols, name)
		}
	}
	delete(w.fileSymbolNames, uri)
	for simple, full := range w.simpleNameAlias {
		if info, ok := w.symbols[full]; !ok || info.Location.URI == uriToDocURI(uri) {
			if !ok {
				delete(w.simpleNameAlias, simple)
			}
		}
	}
}

func (w *Workspace) rebuildProtoRootsLocked() {
	roots := make(map[string]bool)
	for uri := range w.files {
		roots[uri.Dir()] = true
	}
	for uri := range w.builtins {
		roots[uri.Dir()] = true
	}
	for _, p := range w.importPaths {
		roots[p] = true
	}
	for _, p := range w.workspaceRoots {
		roots[p] = true
	}
	w.protoRoots = roots
}

// SetImportPaths replaces the configured external search roots. This
// clears the entire resolution cache, since any import may now resolve
// differently.
func (w *Workspace) SetImportPaths(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.importPaths = slicesext.Deduplicate(append([]string(nil), paths...))
	w.rebuildProtoRootsLocked()
	w.importResolutions = make(map[string]ast.URI)
	w.reresolveAllLocked()
}

// SetWorkspaceRoots replaces the configured workspace roots.
func (w *Workspace) SetWorkspaceRoots(roots []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workspaceRoots = slicesext.Deduplicate(append([]string(nil), roots...))
	w.rebuildProtoRootsLocked()
	w.importResolutions = make(map[string]ast.URI)
	w.reresolveAllLocked()
}

// SetImportPathMappings replaces the virtual->actual path mappings.
func (w *Workspace) SetImportPathMappings(mappings []Mapping) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mappings = append([]Mapping(nil), mappings...)
	w.importResolutions = make(map[string]ast.URI)
	w.reresolveAllLocked()
}

// AddProtoRoot adds a single externally-declared proto root (e.g. from a
// buf-config oracle), without clearing the resolution cache: it is
// additive and does not invalidate previously resolved imports.
func (w *Workspace) AddProtoRoot(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.protoRoots[dir] = true
}

func (w *Workspace) reresolveAllLocked() {
	for uri, paths := range w.importsLiteral {
		for _, p := range paths {
			w.resolveImportLocked(uri, p)
		}
	}
}

// --- Queries ---

// GetFile returns the ProtoFile for uri, including builtins.
func (w *Workspace) GetFile(uri ast.URI) (*ast.ProtoFile, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.files[uri]; ok {
		return f, true
	}
	f, ok := w.builtins[uri]
	return f, ok
}

// GetAllFiles returns every known file, including builtins, as a fresh
// copy; callers must not retain references to returned collections across
// subsequent mutations.
func (w *Workspace) GetAllFiles() map[ast.URI]*ast.ProtoFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[ast.URI]*ast.ProtoFile, len(w.files)+len(w.builtins))
	for k, v := range w.files {
		out[k] = v
	}
	for k, v := range w.builtins {
		out[k] = v
	}
	return out
}

// GetSymbol looks up a symbol by its fully-qualified name.
func (w *Workspace) GetSymbol(fullName string) (SymbolInfo, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	info, ok := w.symbols[fullName]
	if !ok {
		return SymbolInfo{}, false
	}
	return *info, true
}

// GetAllSymbols returns a copy of every indexed symbol.
func (w *Workspace) GetAllSymbols() []SymbolInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]SymbolInfo, 0, len(w.symbols))
	for _, info := range w.symbols {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

// GetSymbolsInFile returns every symbol defined in uri.
func (w *Workspace) GetSymbolsInFile(uri ast.URI) []SymbolInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := w.fileSymbolNames[uri]
	out := make([]SymbolInfo, 0, len(names))
	for _, name := range names {
		if info, ok := w.symbols[name]; ok {
			out = append(out, *info)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return protocol.CompareRange(out[i].Location.Range, out[j].Location.Range) < 0
	})
	return out
}

// GetAccessibleSymbols returns every symbol reachable from uri: its own
// declarations plus every symbol from its transitive imports. Used for
// type resolution and reused for completion candidate gathering.
func (w *Workspace) GetAccessibleSymbols(uri ast.URI) []SymbolInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.accessibleSymbolsLocked(uri)
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

// accessibleSymbolsLocked performs the transitive-import breadth-first walk
// shared by GetAccessibleSymbols and the type resolver's reachability
// check. The visited set doubles as the cycle guard: an import cycle just
// stops the walk from revisiting a file, it is not itself an error here
// (diagnostics reports cycles separately).
func (w *Workspace) accessibleSymbolsLocked(uri ast.URI) []SymbolInfo {
	visited := map[ast.URI]bool{uri: true}
	queue := []ast.URI{uri}
	var out []SymbolInfo
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, name := range w.fileSymbolNames[cur] {
			if info, ok := w.symbols[name]; ok {
				out = append(out, *info)
			}
		}
		for _, path := range w.importsLiteral[cur] {
			if resolved, ok := w.resolveImportLocked(cur, path); ok && !visited[resolved] {
				visited[resolved] = true
				queue = append(queue, resolved)
			}
		}
	}
	return out
}

// GetMessageDefinition looks up fullName and returns its AST node if it
// names a message.
func (w *Workspace) GetMessageDefinition(fullName string) (*ast.MessageDefinition, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	info, ok := w.symbols[fullName]
	if !ok || info.Kind != KindMessage {
		return nil, false
	}
	m, ok := info.Node.(*ast.MessageDefinition)
	return m, ok
}

// GetEnumDefinition looks up fullName and returns its AST node if it names
// an enum.
func (w *Workspace) GetEnumDefinition(fullName string) (*ast.EnumDefinition, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	info, ok := w.symbols[fullName]
	if !ok || info.Kind != KindEnum {
		return nil, false
	}
	e, ok := info.Node.(*ast.EnumDefinition)
	return e, ok
}
