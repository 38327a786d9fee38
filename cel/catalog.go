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

// Package cel supplies the CEL (Common Expression Language) vocabulary used
// to complete buf.validate constraint expressions: reserved keywords,
// macros, built-in functions, and the display symbol for an operator
// function, all backed by cel-go's own operator table rather than a
// hand-maintained copy of it.
package cel

import "github.com/google/cel-go/common/operators"

// keywords are CEL's reserved identifiers.
// https://github.com/google/cel-spec/blob/master/doc/langdef.md#syntax
var keywords = map[string]bool{
	"true": true, "false": true, "null": true, "this": true,
}

// IsKeyword reports whether name is a CEL reserved keyword.
func IsKeyword(name string) bool { return keywords[name] }

// IsMacro reports whether funcName is a CEL comprehension macro. "size" is
// deliberately excluded: it is more commonly invoked as a method than a
// macro, and macro completion would shadow the far more useful method form.
func IsMacro(funcName string) bool {
	switch funcName {
	case operators.Has, operators.All, operators.Exists, operators.ExistsOne,
		operators.Map, operators.Filter:
		return true
	default:
		return false
	}
}

// OperatorSymbol maps a CEL operator function name (e.g. "_&&_") to its
// display symbol (e.g. "&&"), backed by cel-go's own reverse operator
// table. The ternary operator is special-cased since cel-go registers it
// with an empty display name.
func OperatorSymbol(funcName string) (string, bool) {
	if symbol, found := operators.FindReverse(funcName); found && symbol != "" {
		return symbol, true
	}
	if funcName == operators.Conditional {
		return "?", true
	}
	return "", false
}

// builtinFunctions is the fixed catalog of CEL built-ins offered inside a
// buf.validate CEL expression, independent of the enclosing message's own
// field names.
var builtinFunctions = []string{
	"has", "size", "startsWith", "endsWith", "contains", "matches",
	"all", "exists", "exists_one", "map", "filter",
	"int", "uint", "double", "string", "bytes", "bool",
	"duration", "timestamp", "dyn", "type",
	"isNan", "isInf", "isFinite",
	"getDate", "getDayOfMonth", "getDayOfWeek", "getDayOfYear",
	"getFullYear", "getHours", "getMilliseconds", "getMinutes",
	"getMonth", "getSeconds",
}

// BuiltinFunctions returns the fixed CEL built-in catalog.
func BuiltinFunctions() []string {
	return append([]string(nil), builtinFunctions...)
}
