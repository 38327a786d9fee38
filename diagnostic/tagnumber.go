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

import (
	"fmt"
	"sort"

	"go.lsp.dev/protocol"

	"github.com/DrBlury/protols/ast"
)

// checkTagNumbers walks every message in f (recursively through nested
// messages and groups) and reports out-of-range, reserved-band, reserved-
// range-overlapping, and duplicate field numbers, plus the non-increasing
// warning and proto2 extension-range overlaps.
func checkTagNumbers(f *ast.ProtoFile) []Diagnostic {
	var out []Diagnostic
	var walk func(m *ast.MessageDefinition)
	walk = func(m *ast.MessageDefinition) {
		out = append(out, checkMessageTagNumbers(m)...)
		out = append(out, checkExtensionRanges(m)...)
		for _, nested := range m.NestedMessages {
			walk(nested)
		}
		for _, grp := range m.Groups {
			if grp.Body != nil {
				walk(grp.Body)
			}
		}
	}
	for _, m := range f.Messages {
		walk(m)
	}
	return out
}

func checkMessageTagNumbers(m *ast.MessageDefinition) []Diagnostic {
	var out []Diagnostic

	var reservedRanges []ast.ReservedTagRange
	for _, r := range m.Reserved {
		reservedRanges = append(reservedRanges, r.Ranges...)
	}
	for _, e := range m.Extensions {
		reservedRanges = append(reservedRanges, e.Ranges...)
	}

	numbers := m.AllFieldNumbers()
	seen := make(map[int32]bool, len(numbers))
	for _, n := range numbers {
		switch {
		case n.Number < 1 || n.Number > ast.MaxTagNumber:
			out = append(out, Diagnostic{
				Range:    n.Range,
				Severity: protocol.DiagnosticSeverityError,
				Message:  fmt.Sprintf("field number %d is out of range [1, %d]", n.Number, ast.MaxTagNumber),
				Kind:     KindTagNumber,
			})
		case n.Number >= ast.ReservedTagRangeStart && n.Number <= ast.ReservedTagRangeEnd:
			out = append(out, Diagnostic{
				Range:    n.Range,
				Severity: protocol.DiagnosticSeverityError,
				Message:  fmt.Sprintf("field number %d falls in the reserved implementation range [%d, %d]", n.Number, ast.ReservedTagRangeStart, ast.ReservedTagRangeEnd),
				Kind:     KindTagNumber,
			})
		}

		for _, rr := range reservedRanges {
			if rr.Contains(n.Number) {
				out = append(out, Diagnostic{
					Range:    n.Range,
					Severity: protocol.DiagnosticSeverityError,
					Message:  fmt.Sprintf("field number %d overlaps a reserved range [%d, %d]", n.Number, rr.Start, rr.End),
					Kind:     KindTagNumber,
				})
				break
			}
		}

		if seen[n.Number] {
			out = append(out, Diagnostic{
				Range:    n.Range,
				Severity: protocol.DiagnosticSeverityError,
				Message:  fmt.Sprintf("field number %d is already used in this message", n.Number),
				Kind:     KindTagNumber,
			})
		}
		seen[n.Number] = true
	}

	out = append(out, checkNonIncreasing(numbers)...)
	return out
}

// checkNonIncreasing warns on any field number that doesn't strictly
// increase over the one declared immediately before it. AllFieldNumbers
// groups its result by Fields, then Maps, then Oneof fields, then Groups —
// not by where they actually sit in the source — so the numbers are
// re-sorted by position first to recover true declaration order.
func checkNonIncreasing(numbers []struct {
	Number int32
	Range  ast.Range
}) []Diagnostic {
	ordered := append([]struct {
		Number int32
		Range  ast.Range
	}{}, numbers...)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].Range.Start, ordered[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})

	var out []Diagnostic
	var prev int32 = -1
	prevSet := false
	for _, n := range ordered {
		if prevSet && n.Number <= prev {
			out = append(out, Diagnostic{
				Range:    n.Range,
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  "field numbers should be strictly increasing in declaration order",
				Kind:     KindNonIncreasing,
			})
		}
		prev, prevSet = n.Number, true
	}
	return out
}

// checkExtensionRanges reports overlapping proto2 `extensions N to M;`
// statements within the same message.
func checkExtensionRanges(m *ast.MessageDefinition) []Diagnostic {
	var out []Diagnostic
	var all []ast.ReservedTagRange
	for _, e := range m.Extensions {
		all = append(all, e.Ranges...)
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].Overlaps(all[j]) {
				out = append(out, Diagnostic{
					Range:    all[j].Range,
					Severity: protocol.DiagnosticSeverityError,
					Message:  fmt.Sprintf("extension range [%d, %d] overlaps [%d, %d]", all[j].Start, all[j].End, all[i].Start, all[i].End),
					Kind:     KindExtensionRange,
				})
			}
		}
	}
	return out
}
