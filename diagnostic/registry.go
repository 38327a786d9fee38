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

import "strings"

// registryModule names the canonical Buf Schema Registry module that
// provides a recognized import-path prefix.
var registryModule = map[string]string{
	"buf/validate/":  "bufbuild/protovalidate",
	"google/api/":    "googleapis/googleapis",
	"google/rpc/":    "googleapis/googleapis",
	"google/type/":   "googleapis/googleapis",
	"envoy/":         "envoyproxy/envoy",
	"validate/":      "bufbuild/protoc-gen-validate",
	"xds/":           "cncf/xds",
}

// isRegistryImport reports whether importPath is recognized as coming from
// a well-known Buf Schema Registry module, and if so the module that
// provides it. "google/protobuf/" is deliberately excluded: those are the
// compiled-in well-known types, not a registry dependency.
func isRegistryImport(importPath string) (module string, ok bool) {
	if strings.HasPrefix(importPath, "google/protobuf/") {
		return "", false
	}
	for prefix, mod := range registryModule {
		if strings.HasPrefix(importPath, prefix) {
			return mod, true
		}
	}
	return "", false
}
