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
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/parser"
)

// LoadDir walks root for .proto files, parses them concurrently (bounded by
// a worker per GOMAXPROCS via errgroup), and registers every result into w.
// Parsing runs off the lock; only the UpdateFile call for each result
// touches Workspace state, so parse errors in one file never block the
// others from being indexed.
func (w *Workspace) LoadDir(ctx context.Context, root string) error {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".proto") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	type parsed struct {
		uri  ast.URI
		tree *ast.ProtoFile
	}
	results := make([]parsed, len(paths))

	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				w.logger.Warn("protols: skipping unreadable file", zap.String("path", path), zap.Error(err))
				return nil
			}
			uri := ast.URI(ast.FileScheme + filepath.ToSlash(path))
			results[i] = parsed{uri: uri, tree: parser.Parse(string(data), uri)}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.workspaceRoots = append(w.workspaceRoots, root)
	w.rebuildProtoRootsLocked()
	for _, r := range results {
		if r.tree == nil {
			continue
		}
		w.updateFileLocked(r.uri, r.tree)
	}
	return nil
}
