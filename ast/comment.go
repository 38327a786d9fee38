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

// Comment is a single // or /* */ comment token.
type Comment struct {
	Text  string
	Block bool
	Range Range
}

// Comments holds the comments attached to a declaration: zero or more
// leading comments, concatenated in source order, and at most one trailing
// comment on the statement's terminating ';'.
type Comments struct {
	Leading  []Comment
	Trailing *Comment
}

// LeadingText concatenates the leading comments' text in source order.
func (c Comments) LeadingText() string {
	if len(c.Leading) == 0 {
		return ""
	}
	out := c.Leading[0].Text
	for _, cm := range c.Leading[1:] {
		out += "\n" + cm.Text
	}
	return out
}
