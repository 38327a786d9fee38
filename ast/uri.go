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

package ast

import (
	"strings"

	"github.com/DrBlury/protols/internal/pkg/normalpath"
)

// URI identifies a document: either a "file://..." disk file or a
// "builtin:///..." bundled well-known stub.
type URI string

// BuiltinScheme is the URI scheme used for bundled well-known type stubs.
const BuiltinScheme = "builtin:///"

// FileScheme is the URI scheme used for on-disk documents.
const FileScheme = "file://"

// IsBuiltin reports whether u addresses a bundled well-known stub.
func (u URI) IsBuiltin() bool {
	return strings.HasPrefix(string(u), BuiltinScheme)
}

// Normalize returns u with backslashes rewritten to forward slashes, so
// that URIs compare equal regardless of a host platform's path separator.
func (u URI) Normalize() string {
	return strings.ReplaceAll(string(u), `\`, "/")
}

// Path strips the scheme from u, leaving a forward-slash path suitable for
// suffix/prefix comparisons. It does not percent-decode.
func (u URI) Path() string {
	s := u.Normalize()
	if i := strings.Index(s, "://"); i >= 0 {
		return s[i+3:]
	}
	return s
}

// Dir returns the directory portion of u's path (no trailing slash, "" for
// a bare filename).
func (u URI) Dir() string {
	p := u.Path()
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return ""
}

// Base returns the final path component of u.
func (u URI) Base() string {
	p := u.Path()
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// JoinPath joins a directory path and a relative path, collapsing "." and
// ".." segments without touching the filesystem.
func JoinPath(dir, rel string) string {
	if rel == "" {
		return dir
	}
	if joined := normalpath.Join(dir, rel); joined != "." {
		return joined
	}
	return ""
}
