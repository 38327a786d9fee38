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

package completion

import (
	"regexp"
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/builtin"
	"github.com/DrBlury/protols/cel"
	"github.com/DrBlury/protols/workspace"
)

// Classify selects at most one dominant completion context for req and
// returns its candidates, checked in the priority order the editor-facing
// contexts are defined in: CEL, import path, type, field name, field
// number, enum-value number, option key, keyword.
func Classify(ws *workspace.Workspace, req Request) []Item {
	line := req.LineBeforeCursor
	uri := ast.URI(req.URI)

	if items := classifyCEL(req, line); items != nil {
		return items
	}
	if items := classifyImportPath(ws, line); items != nil {
		return items
	}
	if items := classifyType(ws, uri, line); items != nil {
		return items
	}
	if items := classifyFieldName(line); items != nil {
		return items
	}
	if req.FullDocument != "" {
		if items := classifyFieldNumber(req, line); items != nil {
			return items
		}
	}
	if items := classifyOptionKey(line); items != nil {
		return items
	}
	return classifyKeyword(line)
}

var celOptionLineRe = regexp.MustCompile(`\(buf\.validate\.`)

// classifyCEL matches a cursor inside a double-quoted CEL expression string
// within a buf.validate option: the line mentions "(buf.validate." and an
// odd number of unescaped quotes precede the cursor, meaning a string is
// currently open.
func classifyCEL(req Request, line string) []Item {
	if !celOptionLineRe.MatchString(line) {
		return nil
	}
	if strings.Count(line, `"`)%2 == 0 {
		return nil
	}

	var out []Item
	seedThis := true
	if req.FullDocument != "" {
		offset := offsetAt(req.FullDocument, req.Position)
		c := findContainer(req.FullDocument, offset)
		for c.kind == containerNone && c.bodyStart > 1 {
			// The cursor sits in an unnamed block such as the option's
			// message literal; step out to the block that encloses it.
			c = findContainer(req.FullDocument, c.bodyStart-1)
		}
		if c.kind == containerMessage {
			for _, name := range fieldNamesIn(req.FullDocument[c.bodyStart:c.bodyEnd]) {
				out = append(out, Item{
					Label:      "this." + name,
					Kind:       protocol.CompletionItemKindField,
					InsertText: "this." + name,
					SortText:   sortBucket(0, name),
					FilterText: name,
				})
				seedThis = false
			}
		}
	}
	if seedThis {
		out = append(out, Item{Label: "this", Kind: protocol.CompletionItemKindVariable, InsertText: "this", SortText: sortBucket(0, "this")})
	}
	for _, fn := range cel.BuiltinFunctions() {
		out = append(out, Item{
			Label:      fn,
			Kind:       protocol.CompletionItemKindFunction,
			InsertText: fn,
			SortText:   sortBucket(1, fn),
			FilterText: fn,
		})
	}
	return out
}

var fieldDeclRe = regexp.MustCompile(`^\s*(?:optional|required|repeated)?\s*[\w.<>,]+\s+([a-z_][a-z0-9_]*)\s*=\s*\d+`)

func fieldNamesIn(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if m := fieldDeclRe.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

var importLineRe = regexp.MustCompile(`\bimport\s+(?:public\s+|weak\s+)?"([^"]*)$`)

// classifyImportPath matches a cursor inside the quotes of an `import "..`
// statement, offering bundled well-known paths and every workspace file
// under both its canonical import path and its basename.
func classifyImportPath(ws *workspace.Workspace, line string) []Item {
	m := importLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	typed := m[1]

	var out []Item
	add := func(path string, bucket int) {
		if typed != "" && !strings.HasPrefix(path, typed) {
			return
		}
		out = append(out, Item{
			Label:      path,
			Kind:       protocol.CompletionItemKindFile,
			InsertText: path,
			SortText:   sortBucket(bucket, path),
			FilterText: path,
		})
	}
	for path := range builtin.Sources() {
		add(path, 0)
	}
	for uri := range ws.GetAllFiles() {
		if uri.IsBuiltin() {
			continue
		}
		if canonical, ok := ws.GetImportPathForFile(uri); ok {
			add(canonical, 1)
			add(uri.Base(), 2)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortText < out[j].SortText })
	return out
}

var typeContextRe = regexp.MustCompile(`(?:^|[\s{};])(?:optional|required|repeated)?\s*([\w.]*)$`)

// classifyType matches the cursor at the start of a field declaration, or
// right after an optional/required/repeated modifier: built-in scalars
// plus every message/enum name, preferring ones reachable from the current
// file. A qualified prefix like "google.protobuf." filters candidates to
// that qualifier's children.
func classifyType(ws *workspace.Workspace, uri ast.URI, line string) []Item {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" || strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, ";") {
		return nil
	}
	m := typeContextRe.FindStringSubmatch(trimmed)
	if m == nil {
		return nil
	}
	prefix := m[1]

	var out []Item
	seen := map[string]bool{}
	addSymbol := func(s workspace.SymbolInfo, bucket int) {
		if s.Kind != workspace.KindMessage && s.Kind != workspace.KindEnum {
			return
		}
		if prefix != "" && !strings.HasPrefix(s.FullName, prefix) {
			return
		}
		if seen[s.FullName] {
			return
		}
		seen[s.FullName] = true
		var labelDetails *protocol.CompletionItemLabelDetails
		if qualifier := strings.TrimSuffix(s.FullName, "."+s.Name); qualifier != s.FullName && qualifier != "" {
			labelDetails = &protocol.CompletionItemLabelDetails{Description: qualifier}
		}
		out = append(out, Item{
			Label:        s.Name,
			LabelDetails: labelDetails,
			Kind:         symbolCompletionKind(s.Kind),
			Detail:       s.FullName,
			InsertText:   s.Name,
			SortText:     sortBucket(bucket, s.FullName),
			FilterText:   s.Name + " " + s.FullName,
		})
	}
	for _, s := range ws.GetAccessibleSymbols(uri) {
		addSymbol(s, 1)
	}
	for _, s := range ws.GetAllSymbols() {
		addSymbol(s, 2)
	}
	if prefix == "" {
		for scalar := range scalarKeywords {
			out = append(out, Item{
				Label:      scalar,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: scalar,
				SortText:   sortBucket(0, scalar),
				FilterText: scalar,
			})
		}
	}
	return out
}

var scalarKeywords = map[string]bool{
	"double": true, "float": true, "int32": true, "int64": true, "uint32": true, "uint64": true,
	"sint32": true, "sint64": true, "fixed32": true, "fixed64": true, "sfixed32": true, "sfixed64": true,
	"bool": true, "string": true, "bytes": true,
}

func symbolCompletionKind(k workspace.SymbolKind) protocol.CompletionItemKind {
	if k == workspace.KindEnum {
		return protocol.CompletionItemKindEnum
	}
	return protocol.CompletionItemKindClass
}
