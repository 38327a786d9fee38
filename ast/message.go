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

// FieldModifier is a proto2/editions field label. Proto3 fields carry
// ModifierNone unless explicitly `optional` (proto3-optional) or `repeated`.
type FieldModifier int

const (
	ModifierNone FieldModifier = iota
	ModifierOptional
	ModifierRequired
	ModifierRepeated
)

func (m FieldModifier) String() string {
	switch m {
	case ModifierOptional:
		return "optional"
	case ModifierRequired:
		return "required"
	case ModifierRepeated:
		return "repeated"
	default:
		return ""
	}
}

// MaxTagNumber is the largest field number protobuf allows (2^29 - 1).
const MaxTagNumber = 1<<29 - 1

// ReservedTagRangeStart and ReservedTagRangeEnd bound the implementation-
// reserved tag band that may never be assigned to a field.
const (
	ReservedTagRangeStart = 19000
	ReservedTagRangeEnd   = 19999
)

// FieldDefinition is a single message field.
type FieldDefinition struct {
	Name      string
	NameRange Range

	FieldType string
	TypeRange Range

	Number      int32
	NumberRange Range

	Modifier FieldModifier

	Options  []*Option
	Comments Comments
	Range    Range
}

func (f *FieldDefinition) Deprecated() bool { return IsDeprecated(f.Options) }

// MapFieldDefinition is `map<keyType, valueType> name = number;`.
type MapFieldDefinition struct {
	Name      string
	NameRange Range

	KeyType        string
	KeyTypeRange   Range
	ValueType      string
	ValueTypeRange Range

	Number      int32
	NumberRange Range

	Options  []*Option
	Comments Comments
	Range    Range
}

func (m *MapFieldDefinition) Deprecated() bool { return IsDeprecated(m.Options) }

// OneofDefinition groups fields of which at most one may be set. Its fields
// share the enclosing message's field-number namespace.
type OneofDefinition struct {
	Name      string
	NameRange Range

	Fields  []*FieldDefinition
	Options []*Option

	Comments Comments
	Range    Range
}

// ReservedTagRange is an inclusive [Start, End] tag-number span reserved by
// a `reserved N to M;` (or `N to max;`) statement.
type ReservedTagRange struct {
	Start, End int32
	Range      Range
}

// Overlaps reports whether r and o share at least one tag number.
func (r ReservedTagRange) Overlaps(o ReservedTagRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Contains reports whether n falls within the reserved span.
func (r ReservedTagRange) Contains(n int32) bool {
	return n >= r.Start && n <= r.End
}

// Reserved is a single `reserved ...;` statement: either tag ranges or
// quoted field/value names, never both in the same statement.
type Reserved struct {
	Ranges []ReservedTagRange
	Names  []string
	Range  Range
}

// ExtensionsRange is a proto2 `extensions N to M [options];` statement.
type ExtensionsRange struct {
	Ranges  []ReservedTagRange
	Options []*Option
	Range   Range
}

// GroupDefinition is a proto2 `group Name = N { ... }` field-and-message
// hybrid: it occupies a field number in the enclosing container and also
// declares a nested message named Name.
type GroupDefinition struct {
	Name      string
	NameRange Range

	Number      int32
	NumberRange Range
	Modifier    FieldModifier

	Body *MessageDefinition

	Options  []*Option
	Comments Comments
	Range    Range
}

// MessageDefinition is a `message Name { ... }` declaration.
//
// Invariant: all direct-child field numbers (Fields + Maps + every Oneof's
// Fields + Groups) are pairwise distinct and do not overlap any Reserved
// range or Extensions reservation. This invariant is enforced by package
// diagnostic, not by the parser: a malformed message still parses to a tree,
// it simply carries fields whose numbers collide.
type MessageDefinition struct {
	Name      string
	NameRange Range

	Fields         []*FieldDefinition
	Maps           []*MapFieldDefinition
	Oneofs         []*OneofDefinition
	NestedMessages []*MessageDefinition
	NestedEnums    []*EnumDefinition
	Groups         []*GroupDefinition
	Reserved       []*Reserved
	Extensions     []*ExtensionsRange
	Options        []*Option

	Comments Comments
	Range    Range
}

func (m *MessageDefinition) Deprecated() bool { return IsDeprecated(m.Options) }

// AllFieldNumbers returns every direct-child field number together with the
// range that should be blamed in a diagnostic, in declaration order. Oneof
// fields are included (they share the message's namespace); nested message
// fields are not.
func (m *MessageDefinition) AllFieldNumbers() []struct {
	Number int32
	Range  Range
} {
	var out []struct {
		Number int32
		Range  Range
	}
	for _, f := range m.Fields {
		out = append(out, struct {
			Number int32
			Range  Range
		}{f.Number, f.NumberRange})
	}
	for _, mp := range m.Maps {
		out = append(out, struct {
			Number int32
			Range  Range
		}{mp.Number, mp.NumberRange})
	}
	for _, oo := range m.Oneofs {
		for _, f := range oo.Fields {
			out = append(out, struct {
				Number int32
				Range  Range
			}{f.Number, f.NumberRange})
		}
	}
	for _, g := range m.Groups {
		out = append(out, struct {
			Number int32
			Range  Range
		}{g.Number, g.NumberRange})
	}
	return out
}
