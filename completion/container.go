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

package completion

import (
	"regexp"
	"strings"
)

// containerKind classifies the brace-delimited block the cursor sits in.
type containerKind int

const (
	containerNone containerKind = iota
	containerMessage
	containerEnum
	containerService
	containerOneof
)

// container describes the enclosing block found by backward brace-counting
// from the cursor.
type container struct {
	kind          containerKind
	bodyStart     int // byte offset just after the opening '{'
	bodyEnd       int // byte offset of the matching '}', or len(text) if unclosed
	usedNumbers   map[int32]bool
	reservedRanges []struct{ start, end int32 }
}

var containerHeaderRe = regexp.MustCompile(`(?:^|[\s{};])(message|enum|service|oneof)\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{?\s*$`)

// findContainer walks backwards from offset counting braces to find the
// innermost enclosing '{', classifies it from its preamble, and forward-
// walks the matching '}'. Oneof containers are reported distinctly but
// their field numbers share the enclosing message's namespace, the same
// depth-1 carve-out the spec's container-detection rule describes.
func findContainer(text string, offset int) container {
	depth := 0
	pos := offset
	for pos > 0 {
		pos--
		switch text[pos] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				header := text[:pos]
				if idx := strings.LastIndexByte(header, '\n'); idx >= 0 {
					header = header[idx+1:]
				} else {
					// No newline precedes the brace, so the whole prefix is
					// the header. Only the brace's own line is examined: a
					// header whose keyword sits on an earlier line is not
					// recognized.
				}
				m := containerHeaderRe.FindStringSubmatch(header)
				kind := containerNone
				if m != nil {
					switch m[1] {
					case "message":
						kind = containerMessage
					case "enum":
						kind = containerEnum
					case "service":
						kind = containerService
					case "oneof":
						kind = containerOneof
					}
				}
				end := findMatchingClose(text, pos)
				return newContainer(kind, pos+1, end, text)
			}
			depth--
		}
	}
	return container{kind: containerNone, bodyStart: 0, bodyEnd: len(text)}
}

func findMatchingClose(text string, openPos int) int {
	depth := 1
	for i := openPos + 1; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(text)
}

var fieldNumberRe = regexp.MustCompile(`=\s*(\d+)\s*(?:\[|;)`)
var reservedRe = regexp.MustCompile(`reserved\s+([^;]+);`)
var reservedRangeRe = regexp.MustCompile(`(\d+)\s+to\s+(max|\d+)`)
var reservedSingleRe = regexp.MustCompile(`^\d+$`)

// newContainer scans the body text at direct-child depth (permitting depth
// 1 for oneof fields, since those share the message's field-number
// namespace) for already-used field numbers and reserved ranges.
func newContainer(kind containerKind, bodyStart, bodyEnd int, text string) container {
	c := container{kind: kind, bodyStart: bodyStart, bodyEnd: bodyEnd, usedNumbers: map[int32]bool{}}
	if bodyEnd > len(text) {
		bodyEnd = len(text)
	}
	body := text[bodyStart:bodyEnd]

	depth := 0
	inOneof := false
	var stmt strings.Builder
	flush := func() {
		line := stmt.String()
		stmt.Reset()
		if strings.HasPrefix(strings.TrimSpace(line), "reserved") {
			if m := reservedRe.FindStringSubmatch(line); m != nil {
				for _, part := range strings.Split(m[1], ",") {
					part = strings.TrimSpace(part)
					if rm := reservedRangeRe.FindStringSubmatch(part); rm != nil {
						start := atoi32(rm[1])
						end := start + 1000
						if rm[2] != "max" {
							end = atoi32(rm[2])
						}
						c.reservedRanges = append(c.reservedRanges, struct{ start, end int32 }{start, end})
					} else if reservedSingleRe.MatchString(part) {
						n := atoi32(part)
						c.reservedRanges = append(c.reservedRanges, struct{ start, end int32 }{n, n})
					}
				}
			}
			return
		}
		if m := fieldNumberRe.FindStringSubmatch(line); m != nil {
			c.usedNumbers[atoi32(m[1])] = true
		}
	}
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch ch {
		case '{':
			if depth == 0 {
				words := strings.Fields(stmt.String())
				inOneof = len(words) >= 2 && words[len(words)-2] == "oneof"
			}
			depth++
			stmt.WriteByte(ch)
		case '}':
			depth--
			stmt.WriteByte(ch)
		case ';':
			stmt.WriteByte(ch)
			if depth == 0 || (depth == 1 && kind == containerMessage && inOneof) {
				flush()
			} else {
				stmt.Reset()
			}
		default:
			stmt.WriteByte(ch)
		}
	}
	return c
}

func atoi32(s string) int32 {
	var n int32
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int32(r-'0')
	}
	return n
}

// nextAvailableNumber returns the lowest field number from 1 upward that is
// neither already used nor reserved, skipping the implementation-reserved
// band [19000, 19999].
func (c container) nextAvailableNumber() int32 {
	const reservedStart, reservedEnd = 19000, 19999
	n := int32(1)
	for {
		if n == reservedStart {
			n = reservedEnd + 1
			continue
		}
		if !c.usedNumbers[n] && !c.inReservedRange(n) {
			return n
		}
		n++
	}
}

func (c container) inReservedRange(n int32) bool {
	for _, r := range c.reservedRanges {
		if n >= r.start && n <= r.end {
			return true
		}
	}
	return false
}
