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

package workspace

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk project configuration a host CLI or LSP loads
// before constructing a Workspace.
type Config struct {
	// ImportPaths are additional "-I"-style search roots, checked before the
	// workspace roots and the workspace's own derived roots.
	ImportPaths []string `yaml:"import_paths"`
	// WorkspaceRoots are directories that anchor import resolution the way
	// a buf.work.yaml module list does, each independently searched.
	WorkspaceRoots []string `yaml:"workspace_roots"`
	// Mappings remaps a virtual import prefix onto an actual directory,
	// e.g. to let generated vendor trees be imported under their
	// registry-style path.
	Mappings []ConfigMapping `yaml:"mappings"`
}

// ConfigMapping is the YAML shape of a Mapping entry.
type ConfigMapping struct {
	Virtual string `yaml:"virtual"`
	Actual  string `yaml:"actual"`
}

// LoadConfig reads and strictly decodes a YAML config file at path. A
// missing file is not an error; it yields the zero Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("protols: could not read config %q: %w", path, err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("protols: could not parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Apply pushes cfg's settings into w.
func (w *Workspace) Apply(cfg Config) {
	w.SetImportPaths(cfg.ImportPaths)
	w.SetWorkspaceRoots(cfg.WorkspaceRoots)
	mappings := make([]Mapping, 0, len(cfg.Mappings))
	for _, m := range cfg.Mappings {
		mappings = append(mappings, Mapping{Virtual: m.Virtual, Actual: m.Actual})
	}
	w.SetImportPathMappings(mappings)
}
