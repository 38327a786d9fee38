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

// Package parser turns protobuf source text into an *ast.ProtoFile. It
// never returns an error to its own callers: syntax problems become
// ParseDiagnostic notes on the returned tree, and the public Parse entry
// point always hands back a non-nil, usable tree.
//
// The contract is backend-pluggable: a richer hand-written recursive-descent
// backend is tried first, and a tolerant, purely lexical backend is used as
// a fallback if the first one fails outright (panics or returns an error),
// with statistics tracked so operators can see how often the fallback
// fires.
package parser

import (
	"sync"

	"github.com/DrBlury/protols/ast"
)

// Backend turns text into a tree, or fails with an error. A Backend must
// never panic across the Selector boundary; Selector recovers defensively
// anyway, treating a panic as a Parse failure.
type Backend interface {
	Name() string
	Parse(text string, uri ast.URI) (*ast.ProtoFile, error)
}

// Stats tracks a backend's reliability over the lifetime of a Selector:
// attempts, successes, failures, and the most recent error.
type Stats struct {
	Attempts  int
	Successes int
	Failures  int
	LastError error
}

// Selector tries each backend in order and returns the first successful
// result, falling back silently: a failed backend is never reported to the
// caller. Which backend produced a tree shows only in the tree's
// ParserBackend field and in Selector.StatsFor.
type Selector struct {
	mu       sync.Mutex
	backends []Backend
	stats    map[string]*Stats
}

// NewSelector builds a Selector that tries backends in the given order.
func NewSelector(backends ...Backend) *Selector {
	s := &Selector{backends: backends, stats: make(map[string]*Stats, len(backends))}
	for _, b := range backends {
		s.stats[b.Name()] = &Stats{}
	}
	return s
}

// Parse tries each backend in order, returning the first tree produced
// without a fatal error. If every backend fails, it returns an empty
// ProtoFile carrying a single ParseDiagnostic describing the failure.
func (s *Selector) Parse(text string, uri ast.URI) *ast.ProtoFile {
	var lastErr error
	for _, b := range s.backends {
		tree, err := s.tryBackend(b, text, uri)
		if err == nil {
			return tree
		}
		lastErr = err
	}
	msg := "parser: all backends failed"
	if lastErr != nil {
		msg = "parser: all backends failed: " + lastErr.Error()
	}
	return &ast.ProtoFile{
		URI:           uri,
		ParserBackend: "none",
		ParseErrors: []ast.ParseDiagnostic{
			{Range: ast.Range{}, Message: msg},
		},
	}
}

func (s *Selector) tryBackend(b Backend, text string, uri ast.URI) (tree *ast.ProtoFile, err error) {
	s.mu.Lock()
	st := s.stats[b.Name()]
	st.Attempts++
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = panicToError(r)
		}
		s.mu.Lock()
		if err != nil {
			st.Failures++
			st.LastError = err
		} else {
			st.Successes++
		}
		s.mu.Unlock()
	}()

	tree, err = b.Parse(text, uri)
	return tree, err
}

// StatsFor returns a copy of the tracked stats for the named backend, or
// the zero value if unknown.
func (s *Selector) StatsFor(name string) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stats[name]; ok {
		return *st
	}
	return Stats{}
}
