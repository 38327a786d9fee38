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

package diagnostic

import (
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
)

// lintIgnoreComment is the marker recognized both as a suppression and,
// when generating a quick fix, as the text inserted on its own line
// directly above a diagnostic.
const lintIgnoreComment = "protols:ignore"

// IsIgnored reports whether precedingLineText (the full text of the source line
// immediately preceding d's range) already carries a protols:ignore comment
// for d's kind, so a quick fix isn't offered twice for the same spot.
func IsIgnored(d Diagnostic, precedingLineText string) bool {
	trimmed := strings.TrimSpace(precedingLineText)
	if !strings.HasPrefix(trimmed, "//") {
		return false
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	if !strings.HasPrefix(trimmed, lintIgnoreComment) {
		return false
	}
	return strings.Contains(trimmed, d.Kind.String())
}

// IsFileWide reports whether d applies to the whole file rather than one
// declaration (reported at the file's very first position), in which case
// it cannot be suppressed with an inline comment and must instead be
// addressed directly or excluded via workspace configuration.
func IsFileWide(d Diagnostic) bool {
	return d.Range.Start.Line == 0 && d.Range.Start.Character == 0
}

// LintIgnoreAction builds the quick fix that inserts a
// "// protols:ignore <kind>" comment on the line above d, indented to match
// d's own line. Returns the zero value and false for a file-wide
// diagnostic, which this fix cannot suppress.
func LintIgnoreAction(uri protocol.DocumentURI, d Diagnostic, indentation string) (protocol.CodeAction, bool) {
	if IsFileWide(d) {
		return protocol.CodeAction{}, false
	}
	line := d.Range.Start.Line
	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line},
		},
		NewText: fmt.Sprintf("%s// %s %s\n", indentation, lintIgnoreComment, d.Kind.String()),
	}
	return protocol.CodeAction{
		Title: fmt.Sprintf("Suppress %s with %s", d.Kind.String(), lintIgnoreComment),
		Kind:  protocol.QuickFix,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentURI][]protocol.TextEdit{uri: {edit}},
		},
		Diagnostics: []protocol.Diagnostic{d.ToProtocol()},
	}, true
}
