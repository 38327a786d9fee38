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

// Package completion classifies an in-progress edit position into a single
// dominant completion context (CEL expression, import path, type name,
// field name, field number, option key, or bare keyword) and emits
// candidate items for it.
package completion

import "go.lsp.dev/protocol"

// Request is everything the classifier needs to resolve one completion
// call: the document being edited, the cursor position within it, the text
// of the current line up to the cursor, and optionally the full document
// text (required for container-aware contexts like field-number
// assignment; omitted, those contexts are simply skipped).
type Request struct {
	URI              protocol.URI
	Position         protocol.Position
	LineBeforeCursor string
	FullDocument     string
}

// Item is one completion candidate.
type Item struct {
	Label         string
	LabelDetails  *protocol.CompletionItemLabelDetails
	Kind          protocol.CompletionItemKind
	Detail        string
	Documentation string
	InsertText    string
	TextEdit      *protocol.TextEdit
	SortText      string
	FilterText    string
}

// sortBucket produces a zero-padded sort prefix so items from an earlier
// bucket always list before a later one regardless of label text.
func sortBucket(bucket int, label string) string {
	const digits = "0123456789"
	return string(digits[bucket%10]) + label
}
