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

// Package protolslint wires a Workspace and the diagnostic validator
// together into the batch-mode check the protols-lint command exposes,
// kept separate from cmd/protols-lint so it can be covered by tests that
// never touch a pflag.FlagSet.
package protolslint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/diagnostic"
	"github.com/DrBlury/protols/workspace"
)

// Options configures a Run call.
type Options struct {
	// Roots are directories to walk for .proto files.
	Roots []string
	// ConfigPath, if non-empty, is loaded as a workspace.Config.
	ConfigPath string
	Logger     *zap.Logger
}

// FileDiagnostics pairs a file's path with its reported diagnostics.
type FileDiagnostics struct {
	Path        string
	Diagnostics []diagnostic.Diagnostic
}

// jsonFileDiagnostics is FileDiagnostics in the LSP wire shape, used only
// when printing with --error-format json.
type jsonFileDiagnostics struct {
	Path        string                 `json:"path"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics"`
}

// Report is the outcome of one Run call.
type Report struct {
	Files []FileDiagnostics
}

// Run loads every .proto file under opts.Roots into a fresh Workspace and
// validates each one.
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ws := workspace.New(logger)
	if opts.ConfigPath != "" {
		cfg, err := workspace.LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		ws.Apply(cfg)
	}
	for _, root := range opts.Roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("protols-lint: %w", err)
		}
		if err := ws.LoadDir(ctx, abs); err != nil {
			return nil, fmt.Errorf("protols-lint: loading %s: %w", root, err)
		}
	}

	var uris []ast.URI
	for uri := range ws.GetAllFiles() {
		if uri.IsBuiltin() {
			continue
		}
		uris = append(uris, uri)
	}
	sort.Slice(uris, func(i, j int) bool { return uris[i] < uris[j] })

	report := &Report{}
	for _, uri := range uris {
		diags := diagnostic.Validate(ws, uri)
		if len(diags) == 0 {
			continue
		}
		sort.Slice(diags, func(i, j int) bool {
			if diags[i].Range.Start.Line != diags[j].Range.Start.Line {
				return diags[i].Range.Start.Line < diags[j].Range.Start.Line
			}
			return diags[i].Range.Start.Character < diags[j].Range.Start.Character
		})
		report.Files = append(report.Files, FileDiagnostics{Path: uri.Path(), Diagnostics: diags})
	}
	return report, nil
}

// HasErrors reports whether any diagnostic in the report has error severity.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount counts diagnostics with error severity across every file.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if d.Severity == protocol.DiagnosticSeverityError {
				n++
			}
		}
	}
	return n
}

// Print writes the report to w in either "text" or "json" form.
func (r *Report) Print(w io.Writer, format string) error {
	if format == "json" {
		out := make([]jsonFileDiagnostics, len(r.Files))
		for i, f := range r.Files {
			out[i] = jsonFileDiagnostics{Path: f.Path, Diagnostics: diagnostic.ToProtocolDiagnostics(f.Diagnostics)}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			fmt.Fprintf(
				w,
				"%s:%d:%d: %s (%s)\n",
				f.Path,
				d.Range.Start.Line+1,
				d.Range.Start.Character+1,
				d.Message,
				d.Kind,
			)
		}
	}
	return nil
}
