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

// EnumValueDefinition is a single `NAME = N [options];` entry.
type EnumValueDefinition struct {
	Name      string
	NameRange Range

	Number      int32
	NumberRange Range

	Options  []*Option
	Comments Comments
	Range    Range
}

func (v *EnumValueDefinition) Deprecated() bool { return IsDeprecated(v.Options) }

// EnumDefinition is an `enum Name { ... }` declaration.
//
// Invariant (proto3): Values[0].Number == 0 when len(Values) > 0.
type EnumDefinition struct {
	Name      string
	NameRange Range

	Values   []*EnumValueDefinition
	Reserved []*Reserved
	Options  []*Option

	Comments Comments
	Range    Range
}

func (e *EnumDefinition) Deprecated() bool { return IsDeprecated(e.Options) }

// AllowAlias reports whether the enum declares `option allow_alias = true;`,
// which licenses duplicate value numbers.
func (e *EnumDefinition) AllowAlias() bool {
	opt := FindOption(e.Options, "allow_alias")
	if opt == nil {
		return false
	}
	v, _ := opt.BoolValue()
	return v
}
