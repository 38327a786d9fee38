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
	"strings"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/internal/pkg/stringutil"
)

// commonScalarFieldNames are offered after a bare "string" or numeric type
// with no other signal to narrow the suggestion.
var commonScalarFieldNames = map[string][]string{
	"string": {"name", "id", "title", "description", "value"},
	"bool":   {"enabled", "active", "deleted"},
	"int32":  {"count", "size", "index"},
	"int64":  {"count", "size", "index"},
}

// wellKnownFieldNames offers field names conventionally paired with a
// well-known message type.
var wellKnownFieldNames = map[string][]string{
	"google.protobuf.Timestamp": {"created_at", "updated_at", "deleted_at", "expires_at"},
	"google.protobuf.Duration":  {"timeout", "interval", "ttl"},
	"google.protobuf.FieldMask": {"update_mask", "field_mask", "read_mask"},
	"google.protobuf.Struct":    {"metadata", "attributes"},
	"google.protobuf.Any":       {"payload", "detail"},
}

var fieldNameContextRe = regexp.MustCompile(`(?:^|[\s{};])((?:optional|required|repeated)\s+)?([\w.]+)\s+$`)

// classifyFieldName matches the cursor right after a fully-specified field
// type (scalar keyword or message/enum name) with a trailing space, and
// before any field name has been typed.
func classifyFieldName(line string) []Item {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == line || trimmed == "" {
		return nil
	}
	m := fieldNameContextRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	typeName := m[2]

	var names []string
	if byType, ok := commonScalarFieldNames[typeName]; ok {
		names = append(names, byType...)
	}
	if byWellKnown, ok := wellKnownFieldNames[typeName]; ok {
		names = append(names, byWellKnown...)
	}
	if names == nil {
		if short := lastComponent(typeName); short != "" && stringutil.IsPascalCase(short) {
			base := stringutil.ToLowerSnakeCase(short)
			names = append(names, base+"_id", base, base+"_value")
		}
	}
	if len(names) > 5 {
		names = names[:5]
	}

	out := make([]Item, 0, len(names))
	for i, name := range names {
		out = append(out, Item{
			Label:      name,
			Kind:       protocol.CompletionItemKindField,
			InsertText: name,
			SortText:   sortBucket(0, string(rune('a'+i))+name),
			FilterText: name,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func lastComponent(fullName string) string {
	if idx := strings.LastIndexByte(fullName, '.'); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}
