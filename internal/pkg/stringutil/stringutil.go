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

// Package stringutil provides casing conversions and classification used by
// the naming-convention diagnostics: protobuf style requires PascalCase
// message/enum names, lower_snake_case fields, and UPPER_SNAKE_CASE enum
// values.
package stringutil

import "strings"

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsNumeric reports whether r is an ASCII digit.
func IsNumeric(r rune) bool { return r >= '0' && r <= '9' }

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool { return IsAlpha(r) || IsNumeric(r) }

// IsLowerAlpha reports whether r is a lowercase ASCII letter.
func IsLowerAlpha(r rune) bool { return r >= 'a' && r <= 'z' }

// IsUpperAlpha reports whether r is an uppercase ASCII letter.
func IsUpperAlpha(r rune) bool { return r >= 'A' && r <= 'Z' }

// splitWords breaks s into case/separator-delimited words: underscores,
// hyphens, dots, and whitespace all separate words, and a camelCase or
// PascalCase run of letters starts a new word at each lower-to-upper
// transition. A run of acronym letters stays one word, and the last capital
// of a run that is followed by a lowercase letter starts the next word, so
// "JSONPacket" splits into "JSON" and "Packet".
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(strings.TrimSpace(s))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ' || r == '\t':
			flush()
		case IsUpperAlpha(r) && len(cur) > 0 && IsLowerAlpha(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)
		case IsUpperAlpha(r) && len(cur) > 0 && IsUpperAlpha(cur[len(cur)-1]) &&
			i+1 < len(runes) && IsLowerAlpha(runes[i+1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// ToLowerSnakeCase converts s to lower_snake_case.
func ToLowerSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToUpperSnakeCase converts s to UPPER_SNAKE_CASE.
func ToUpperSnakeCase(s string) string {
	return strings.ToUpper(ToLowerSnakeCase(s))
}

// ToPascalCase converts s to PascalCase.
func ToPascalCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		if isAllUpper(w) {
			b.WriteString(w)
			continue
		}
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
		b.WriteString(strings.ToLower(string(r[1:])))
	}
	return b.String()
}

func isAllUpper(s string) bool {
	seenAlpha := false
	for _, r := range s {
		if IsLowerAlpha(r) {
			return false
		}
		if IsUpperAlpha(r) {
			seenAlpha = true
		}
	}
	return seenAlpha
}

// IsLowerSnakeCase reports whether s is already in lower_snake_case.
func IsLowerSnakeCase(s string) bool {
	return s != "" && s == ToLowerSnakeCase(s)
}

// IsUpperSnakeCase reports whether s is already in UPPER_SNAKE_CASE.
func IsUpperSnakeCase(s string) bool {
	return s != "" && s == ToUpperSnakeCase(s)
}

// IsPascalCase reports whether s is already in PascalCase.
func IsPascalCase(s string) bool {
	if s == "" || !IsUpperAlpha([]rune(s)[0]) {
		return false
	}
	return !strings.ContainsAny(s, "_- \t")
}

// JoinSliceQuoted joins elements wrapped in double quotes with sep.
func JoinSliceQuoted(elems []string, sep string) string {
	quoted := make([]string, len(elems))
	for i, e := range elems {
		quoted[i] = `"` + e + `"`
	}
	return strings.Join(quoted, sep)
}

// SliceToHumanString joins elems with commas and a trailing "and".
func SliceToHumanString(elems []string) string { return humanJoin(elems, "and", false) }

// SliceToHumanStringQuoted is SliceToHumanString with each element quoted.
func SliceToHumanStringQuoted(elems []string) string { return humanJoin(elems, "and", true) }

// SliceToHumanStringOr joins elems with commas and a trailing "or".
func SliceToHumanStringOr(elems []string) string { return humanJoin(elems, "or", false) }

// SliceToHumanStringOrQuoted is SliceToHumanStringOr with each element quoted.
func SliceToHumanStringOrQuoted(elems []string) string { return humanJoin(elems, "or", true) }

func humanJoin(elems []string, conj string, quoted bool) string {
	if len(elems) == 0 {
		return ""
	}
	format := func(s string) string {
		if quoted {
			return `"` + s + `"`
		}
		return s
	}
	if len(elems) == 1 {
		return format(elems[0])
	}
	if len(elems) == 2 {
		return format(elems[0]) + " " + conj + " " + format(elems[1])
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = format(e)
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", " + conj + " " + parts[len(parts)-1]
}
