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

// RpcDefinition is `rpc Name (stream? Req) returns (stream? Resp) (";" | "{" ... "}");`.
type RpcDefinition struct {
	Name      string
	NameRange Range

	InputType      string
	InputTypeRange Range
	InputStream    bool

	OutputType      string
	OutputTypeRange Range
	OutputStream    bool

	Options  []*Option
	Comments Comments
	Range    Range
}

func (r *RpcDefinition) Deprecated() bool { return IsDeprecated(r.Options) }

// ServiceDefinition is a `service Name { ... }` declaration.
type ServiceDefinition struct {
	Name      string
	NameRange Range

	Rpcs    []*RpcDefinition
	Options []*Option

	Comments Comments
	Range    Range
}

func (s *ServiceDefinition) Deprecated() bool { return IsDeprecated(s.Options) }

// ExtendDefinition is a proto2 `extend Name { ... }` declaration, adding
// fields to a message declared elsewhere inside its extension ranges.
type ExtendDefinition struct {
	Extendee      string
	ExtendeeRange Range

	Fields []*FieldDefinition
	Groups []*GroupDefinition

	Comments Comments
	Range    Range
}
