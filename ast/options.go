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

// Option is a single `name = value` pair, either a standalone `option`
// statement or an entry inside a field's `[...]` option block.
type Option struct {
	// Name is the dotted or parenthesized-extension option name, e.g.
	// "deprecated" or "(buf.validate.field).string.min_len".
	Name      string
	NameRange Range
	// Value is the option's textual value as written (string, number,
	// identifier, or a message-literal span). Interpreting it further (e.g.
	// as a CEL expression) is left to the consumers in package cel.
	Value      string
	ValueRange Range
	Range      Range
}

// BoolValue reports the option's value as a boolean and whether it parsed
// as one at all.
func (o *Option) BoolValue() (value bool, ok bool) {
	switch o.Value {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// IsDeprecated reports whether opts contains `deprecated = true`.
func IsDeprecated(opts []*Option) bool {
	for _, o := range opts {
		if o.Name == "deprecated" {
			v, ok := o.BoolValue()
			return ok && v
		}
	}
	return false
}

// FindOption returns the first option named name, or nil.
func FindOption(opts []*Option, name string) *Option {
	for _, o := range opts {
		if o.Name == name {
			return o
		}
	}
	return nil
}
