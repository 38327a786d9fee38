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

// Package builtin bundles the well-known protobuf type definitions that a
// workspace resolves against even when no copy of them is present on disk:
// google/protobuf's wrapper and struct types, google.rpc.Status, and a
// google.type sample. Each is kept as literal .proto source and parsed with
// package parser at Files()-call time, so the stubs flow through exactly
// the same typed tree that on-disk files do.
package builtin

import "github.com/DrBlury/protols/ast"

// URIPrefix is the URI scheme used for bundled stubs; ast.URI.IsBuiltin
// recognizes it.
const URIPrefix = ast.BuiltinScheme

// sources maps a canonical import path to its embedded proto source.
var sources = map[string]string{
	"google/protobuf/any.proto":        anyProto,
	"google/protobuf/duration.proto":    durationProto,
	"google/protobuf/timestamp.proto":  timestampProto,
	"google/protobuf/empty.proto":      emptyProto,
	"google/protobuf/struct.proto":     structProto,
	"google/protobuf/wrappers.proto":   wrappersProto,
	"google/protobuf/field_mask.proto": fieldMaskProto,
	"google/rpc/status.proto":          rpcStatusProto,
	"google/rpc/code.proto":            rpcCodeProto,
	"google/type/date.proto":           typeDateProto,
}

// Sources returns a copy of the canonical import path -> proto source map,
// for callers (e.g. a CLI's --list-builtins flag) that want the raw text
// rather than a parsed tree.
func Sources() map[string]string {
	out := make(map[string]string, len(sources))
	for k, v := range sources {
		out[k] = v
	}
	return out
}

// URIFor returns the builtin:/// URI for a canonical import path.
func URIFor(importPath string) ast.URI {
	return ast.URI(URIPrefix + importPath)
}

const anyProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/anypb";

message Any {
  string type_url = 1;
  bytes value = 2;
}
`

const durationProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/durationpb";

message Duration {
  int64 seconds = 1;
  int32 nanos = 2;
}
`

const timestampProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/timestamppb";

message Timestamp {
  int64 seconds = 1;
  int32 nanos = 2;
}
`

const emptyProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/emptypb";

message Empty {}
`

const structProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/structpb";

message Struct {
  map<string, Value> fields = 1;
}

message Value {
  oneof kind {
    NullValue null_value = 1;
    double number_value = 2;
    string string_value = 3;
    bool bool_value = 4;
    Struct struct_value = 5;
    ListValue list_value = 6;
  }
}

message ListValue {
  repeated Value values = 1;
}

enum NullValue {
  NULL_VALUE = 0;
}
`

const wrappersProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/wrapperspb";

message DoubleValue {
  double value = 1;
}

message FloatValue {
  float value = 1;
}

message Int64Value {
  int64 value = 1;
}

message UInt64Value {
  uint64 value = 1;
}

message Int32Value {
  int32 value = 1;
}

message UInt32Value {
  uint32 value = 1;
}

message BoolValue {
  bool value = 1;
}

message StringValue {
  string value = 1;
}

message BytesValue {
  bytes value = 1;
}
`

const fieldMaskProto = `syntax = "proto3";

package google.protobuf;

option go_package = "google.golang.org/protobuf/types/known/fieldmaskpb";

message FieldMask {
  repeated string paths = 1;
}
`

const rpcStatusProto = `syntax = "proto3";

package google.rpc;

option go_package = "google.golang.org/genproto/googleapis/rpc/status";

import "google/protobuf/any.proto";

message Status {
  int32 code = 1;
  string message = 2;
  repeated google.protobuf.Any details = 3;
}
`

const rpcCodeProto = `syntax = "proto3";

package google.rpc;

option go_package = "google.golang.org/genproto/googleapis/rpc/code";

enum Code {
  OK = 0;
  CANCELLED = 1;
  UNKNOWN = 2;
  INVALID_ARGUMENT = 3;
  DEADLINE_EXCEEDED = 4;
  NOT_FOUND = 5;
  ALREADY_EXISTS = 6;
  PERMISSION_DENIED = 7;
  UNAUTHENTICATED = 16;
  RESOURCE_EXHAUSTED = 8;
  FAILED_PRECONDITION = 9;
  ABORTED = 10;
  OUT_OF_RANGE = 11;
  UNIMPLEMENTED = 12;
  INTERNAL = 13;
  UNAVAILABLE = 14;
  DATA_LOSS = 15;
}
`

const typeDateProto = `syntax = "proto3";

package google.type;

option go_package = "google.golang.org/genproto/googleapis/type/date;date";

message Date {
  int32 year = 1;
  int32 month = 2;
  int32 day = 3;
}
`
