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
	"fmt"
	"regexp"
	"strings"

	"go.lsp.dev/protocol"
)

var assignEqualsRe = regexp.MustCompile(`=\s*$`)

// classifyFieldNumber matches the cursor right after "= " at the end of a
// field or enum-value declaration line, inside a message/enum/oneof body,
// and offers the next unused field number (or the next unused enum
// value for an enum container).
func classifyFieldNumber(req Request, line string) []Item {
	if !assignEqualsRe.MatchString(strings.TrimRight(line, " \t")) {
		return nil
	}
	offset := offsetAt(req.FullDocument, req.Position)
	c := findContainer(req.FullDocument, offset)
	switch c.kind {
	case containerMessage, containerOneof:
		n := c.nextAvailableNumber()
		label := fmt.Sprintf("%d", n)
		return []Item{{
			Label:      label,
			Kind:       protocol.CompletionItemKindValue,
			Detail:     "next available field number",
			InsertText: label,
			SortText:   sortBucket(0, label),
		}}
	case containerEnum:
		return classifyEnumValueNumber(c)
	default:
		return nil
	}
}

// classifyEnumValueNumber offers the next unused enum value number,
// starting from 0 when the enum currently has none (proto3's requirement
// that the first value be zero).
func classifyEnumValueNumber(c container) []Item {
	n := int32(0)
	if len(c.usedNumbers) > 0 {
		n = 1
	}
	for c.usedNumbers[n] {
		n++
	}
	label := fmt.Sprintf("%d", n)
	return []Item{{
		Label:      label,
		Kind:       protocol.CompletionItemKindValue,
		Detail:     "next available enum value",
		InsertText: label,
		SortText:   sortBucket(0, label),
	}}
}

// optionValueDetail documents a single option path's accepted value shape.
type optionValueDetail struct {
	path   string
	detail string
}

// bufValidateFieldOptions is the static taxonomy of buf.validate.field
// constraint paths offered as option-key completions, grouped by scalar
// kind the way the protovalidate documentation groups them.
var bufValidateFieldOptions = []optionValueDetail{
	{"(buf.validate.field).required", "bool"},
	{"(buf.validate.field).string.min_len", "uint64"},
	{"(buf.validate.field).string.max_len", "uint64"},
	{"(buf.validate.field).string.pattern", "string (RE2 regex)"},
	{"(buf.validate.field).string.prefix", "string"},
	{"(buf.validate.field).string.suffix", "string"},
	{"(buf.validate.field).string.contains", "string"},
	{"(buf.validate.field).string.email", "bool"},
	{"(buf.validate.field).string.hostname", "bool"},
	{"(buf.validate.field).string.ip", "bool"},
	{"(buf.validate.field).string.uuid", "bool"},
	{"(buf.validate.field).int32.gt", "int32"},
	{"(buf.validate.field).int32.gte", "int32"},
	{"(buf.validate.field).int32.lt", "int32"},
	{"(buf.validate.field).int32.lte", "int32"},
	{"(buf.validate.field).int64.gt", "int64"},
	{"(buf.validate.field).int64.gte", "int64"},
	{"(buf.validate.field).int64.lt", "int64"},
	{"(buf.validate.field).int64.lte", "int64"},
	{"(buf.validate.field).double.gt", "double"},
	{"(buf.validate.field).double.gte", "double"},
	{"(buf.validate.field).double.lt", "double"},
	{"(buf.validate.field).double.lte", "double"},
	{"(buf.validate.field).repeated.min_items", "uint64"},
	{"(buf.validate.field).repeated.max_items", "uint64"},
	{"(buf.validate.field).repeated.unique", "bool"},
	{"(buf.validate.field).map.min_pairs", "uint64"},
	{"(buf.validate.field).map.max_pairs", "uint64"},
	{"(buf.validate.field).cel", "repeated Constraint"},
}

// googleAPIOptions is the static taxonomy of google.api.* option names
// offered on rpc and field declarations.
var googleAPIOptions = []optionValueDetail{
	{"(google.api.http).get", "string"},
	{"(google.api.http).post", "string"},
	{"(google.api.http).put", "string"},
	{"(google.api.http).patch", "string"},
	{"(google.api.http).delete", "string"},
	{"(google.api.http).body", "string"},
	{"(google.api.method_signature)", "string"},
	{"(google.api.field_behavior)", "repeated FieldBehavior"},
	{"(google.api.resource).type", "string"},
	{"(google.api.resource).pattern", "repeated string"},
}

var optionStatementRe = regexp.MustCompile(`\boption\s+([\w.()]*)$`)
var bracketOptionRe = regexp.MustCompile(`[\[,]\s*([\w.()]*)$`)

// classifyOptionKey matches the cursor inside an "option ...;" statement or
// inside a field's "[...]" option bracket, immediately after the start of
// an option-name token.
func classifyOptionKey(line string) []Item {
	var prefix string
	switch {
	case optionStatementRe.MatchString(line):
		prefix = optionStatementRe.FindStringSubmatch(line)[1]
	case bracketOptionRe.MatchString(line):
		prefix = bracketOptionRe.FindStringSubmatch(line)[1]
	default:
		return nil
	}

	var out []Item
	add := func(opts []optionValueDetail) {
		for _, o := range opts {
			if prefix != "" && !strings.HasPrefix(o.path, prefix) {
				continue
			}
			out = append(out, Item{
				Label:      o.path,
				Kind:       protocol.CompletionItemKindProperty,
				Detail:     o.detail,
				InsertText: o.path,
				SortText:   sortBucket(0, o.path),
				FilterText: o.path,
			})
		}
	}
	add(bufValidateFieldOptions)
	add(googleAPIOptions)
	if len(out) == 0 {
		return nil
	}
	return out
}

var keywordStatementRe = regexp.MustCompile(`(?:^|[\s{};])(o|op|opt|opti|optio|option|optional|r|re|req|requ|requi|requir|require|required|rep|repe|repea|repeat|repeate|repeated|s|st|str|stre|strea|stream)?$`)

var statementKeywords = []string{"optional", "required", "repeated", "stream"}

// classifyKeyword offers protobuf's bare statement-leading keywords when
// the cursor sits at the start of a new statement with no other context
// recognized, the last-resort bucket in the classification order.
func classifyKeyword(line string) []Item {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.ContainsAny(trimmed, "=;{}") {
		return nil
	}
	m := keywordStatementRe.FindStringSubmatch(strings.TrimRight(line, " \t"))
	if m == nil {
		return nil
	}
	typed := m[1]

	out := make([]Item, 0, len(statementKeywords))
	for _, kw := range statementKeywords {
		if typed != "" && !strings.HasPrefix(kw, typed) {
			continue
		}
		out = append(out, Item{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw,
			SortText:   sortBucket(0, kw),
			FilterText: kw,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
