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

// Package normalpath provides filepath-like helpers that operate on
// normalized paths: cleaned and forward-slashed, regardless of host
// platform. Import paths and workspace URIs are always written with "/",
// so every join and comparison in the import resolver goes through here
// rather than through path/filepath directly.
package normalpath

import (
	"path/filepath"
	"sort"
	"strings"
)

// Normalize cleans path and converts it to use "/" separators. "" and "."
// both normalize to ".".
func Normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
}

// Unnormalize converts path to the host platform's separator.
func Unnormalize(path string) string {
	return filepath.FromSlash(path)
}

// Base is filepath.Base on a normalized path, normalized again.
func Base(path string) string {
	return Normalize(filepath.Base(Unnormalize(path)))
}

// Dir is filepath.Dir on a normalized path, normalized again.
func Dir(path string) string {
	return Normalize(filepath.Dir(Unnormalize(path)))
}

// Join is filepath.Join over normalized paths, ignoring empty elements.
// Returns "" if every element is empty.
func Join(paths ...string) string {
	unnormalized := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			unnormalized = append(unnormalized, Unnormalize(p))
		}
	}
	joined := filepath.Join(unnormalized...)
	if joined == "" {
		return ""
	}
	return Normalize(joined)
}

// Rel is filepath.Rel over normalized paths, normalized again on success.
func Rel(basepath, targpath string) (string, error) {
	rel, err := filepath.Rel(Unnormalize(basepath), Unnormalize(targpath))
	if err != nil {
		return "", err
	}
	return Normalize(rel), nil
}

// Components splits a normalized path into its "/"-separated parts,
// dropping empty components produced by a leading or trailing slash.
func Components(path string) []string {
	path = Normalize(path)
	if path == "." {
		return nil
	}
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsMatch reports whether value equals path or is a directory ancestor of
// it. value == "." matches every path.
func IsMatch(value, path string) bool {
	if value == "." {
		return true
	}
	for cur := Normalize(path); cur != "."; cur = Dir(cur) {
		if value == cur {
			return true
		}
	}
	return false
}

// ByDir groups paths by their Dir, sorting each group.
func ByDir(paths ...string) map[string][]string {
	m := make(map[string][]string)
	for _, p := range paths {
		p = Normalize(p)
		d := Dir(p)
		m[d] = append(m[d], p)
	}
	for _, group := range m {
		sort.Strings(group)
	}
	return m
}
