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

package parser

import (
	"github.com/DrBlury/protols/ast"
	"github.com/DrBlury/protols/lexer"
)

// parseField parses `type name = number [options];` with no leading
// modifier keyword (the proto3 common case).
func (c *cursor) parseField(leading []ast.Comment, mod ast.FieldModifier) *ast.FieldDefinition {
	typeName, typeRange := c.parseDottedName()
	return c.finishField(leading, typeRange.Start, typeName, typeRange, mod)
}

// parseFieldAfterModifier parses the remainder of a field declaration once
// an `optional|required|repeated` keyword has already been consumed.
func (c *cursor) parseFieldAfterModifier(leading []ast.Comment, modTok lexer.Token, mod ast.FieldModifier) *ast.FieldDefinition {
	typeName, typeRange := c.parseDottedName()
	return c.finishField(leading, modTok.Start, typeName, typeRange, mod)
}

func (c *cursor) finishField(leading []ast.Comment, start ast.Position, typeName string, typeRange ast.Range, mod ast.FieldModifier) *ast.FieldDefinition {
	nameTok, _ := c.expectIdentLike()
	c.expectPunct("=")
	num, numRange := c.parseTagNumber()
	f := &ast.FieldDefinition{
		Name: nameTok.Text, NameRange: nameTok.Range(),
		FieldType: typeName, TypeRange: typeRange,
		Number: num, NumberRange: numRange,
		Modifier: mod,
	}
	if c.peek().IsPunct("[") {
		f.Options = c.parseFieldOptions()
	}
	end, _ := c.expectPunct(";")
	f.Range = ast.Range{Start: start, End: end.End}
	f.Comments.Leading = leading
	f.Comments.Trailing = c.collectTrailing(end.End.Line)
	return f
}

// parseMapField parses `map<keyType, valueType> name = number [options];`.
func (c *cursor) parseMapField(leading []ast.Comment) *ast.MapFieldDefinition {
	start := c.advance() // 'map'
	c.expectPunct("<")
	keyType, keyRange := c.parseDottedName()
	c.expectPunct(",")
	valueType, valueRange := c.parseDottedName()
	c.expectPunct(">")
	nameTok, _ := c.expectIdentLike()
	c.expectPunct("=")
	num, numRange := c.parseTagNumber()
	m := &ast.MapFieldDefinition{
		Name: nameTok.Text, NameRange: nameTok.Range(),
		KeyType: keyType, KeyTypeRange: keyRange,
		ValueType: valueType, ValueTypeRange: valueRange,
		Number: num, NumberRange: numRange,
	}
	if c.peek().IsPunct("[") {
		m.Options = c.parseFieldOptions()
	}
	end, _ := c.expectPunct(";")
	m.Range = ast.Range{Start: start.Start, End: end.End}
	m.Comments.Leading = leading
	m.Comments.Trailing = c.collectTrailing(end.End.Line)
	return m
}

// parseOneof parses `oneof name { field1 = 1; field2 = 2; }`.
func (c *cursor) parseOneof(leading []ast.Comment) *ast.OneofDefinition {
	start := c.advance() // 'oneof'
	nameTok, _ := c.expectIdentLike()
	o := &ast.OneofDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	o.Comments.Leading = leading

	c.expectPunct("{")
	for {
		fLeading := c.collectLeading()
		t := c.peek()
		switch {
		case t.IsPunct("}") || t.Kind == lexer.EOF:
			if fLeading != nil {
				c.floating = append(c.floating, fLeading...)
			}
			goto done
		case t.IsPunct(";"):
			c.advance()
			if fLeading != nil {
				c.floating = append(c.floating, fLeading...)
			}
		case t.IsKeyword("option"):
			o.Options = append(o.Options, c.parseOption())
			if fLeading != nil {
				c.floating = append(c.floating, fLeading...)
			}
		default:
			// Oneof fields have no modifier (spec invariant: "a oneof field
			// has no repeated modifier" — required/optional are likewise
			// grammatically absent here).
			o.Fields = append(o.Fields, c.parseField(fLeading, ast.ModifierNone))
		}
	}
done:
	end, _ := c.expectPunct("}")
	o.Range = ast.Range{Start: start.Start, End: end.End}
	return o
}

// parseGroup parses a proto2 `[modifier] group Name = N { ... }`.
func (c *cursor) parseGroup(leading []ast.Comment, modTok lexer.Token, mod ast.FieldModifier) *ast.GroupDefinition {
	c.advance() // 'group'
	nameTok, _ := c.expectIdentLike()
	c.expectPunct("=")
	num, numRange := c.parseTagNumber()
	g := &ast.GroupDefinition{
		Name: nameTok.Text, NameRange: nameTok.Range(),
		Number: num, NumberRange: numRange, Modifier: mod,
	}
	g.Comments.Leading = leading
	if c.peek().IsPunct("[") {
		g.Options = c.parseFieldOptions()
	}
	g.Body = &ast.MessageDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	if _, ok := c.expectPunct("{"); ok {
		c.parseMessageBody(g.Body)
		end, _ := c.expectPunct("}")
		g.Range = ast.Range{Start: modTok.Start, End: end.End}
		g.Body.Range = g.Range
	} else {
		g.Range = ast.Range{Start: modTok.Start, End: numRange.End}
	}
	return g
}

// parseReserved parses `reserved 1, 2, 5 to 10, 9 to max;` or
// `reserved "foo", "bar";`.
func (c *cursor) parseReserved(leading []ast.Comment) *ast.Reserved {
	_ = leading // reserved statements don't carry a Comments field in the data model; fold into floating
	start := c.advance() // 'reserved'
	r := &ast.Reserved{}
	if c.peek().Kind == lexer.String {
		for {
			s, _ := c.expectString()
			r.Names = append(r.Names, s.Value)
			if c.peek().IsPunct(",") {
				c.advance()
				continue
			}
			break
		}
	} else {
		for {
			startVal, startRange := c.parseTagNumber()
			entry := ast.ReservedTagRange{Start: startVal, End: startVal, Range: startRange}
			if c.peek().IsKeyword("to") {
				c.advance()
				if c.peek().IsKeyword("max") {
					maxTok := c.advance()
					entry.End = ast.MaxTagNumber
					entry.Range = ast.Range{Start: startRange.Start, End: maxTok.End}
				} else {
					endVal, endRange := c.parseTagNumber()
					entry.End = endVal
					entry.Range = ast.Range{Start: startRange.Start, End: endRange.End}
				}
			}
			r.Ranges = append(r.Ranges, entry)
			if c.peek().IsPunct(",") {
				c.advance()
				continue
			}
			break
		}
	}
	end, _ := c.expectPunct(";")
	r.Range = ast.Range{Start: start.Start, End: end.End}
	if leading != nil {
		c.floating = append(c.floating, leading...)
	}
	return r
}

// parseExtensionsRange parses a proto2 `extensions 100 to 199 [options];`.
func (c *cursor) parseExtensionsRange(leading []ast.Comment) *ast.ExtensionsRange {
	start := c.advance() // 'extensions'
	ext := &ast.ExtensionsRange{}
	for {
		startVal, startRange := c.parseTagNumber()
		entry := ast.ReservedTagRange{Start: startVal, End: startVal, Range: startRange}
		if c.peek().IsKeyword("to") {
			c.advance()
			if c.peek().IsKeyword("max") {
				maxTok := c.advance()
				entry.End = ast.MaxTagNumber
				entry.Range = ast.Range{Start: startRange.Start, End: maxTok.End}
			} else {
				endVal, endRange := c.parseTagNumber()
				entry.End = endVal
				entry.Range = ast.Range{Start: startRange.Start, End: endRange.End}
			}
		}
		ext.Ranges = append(ext.Ranges, entry)
		if c.peek().IsPunct(",") {
			c.advance()
			continue
		}
		break
	}
	if c.peek().IsPunct("[") {
		ext.Options = c.parseFieldOptions()
	}
	end, _ := c.expectPunct(";")
	ext.Range = ast.Range{Start: start.Start, End: end.End}
	if leading != nil {
		c.floating = append(c.floating, leading...)
	}
	return ext
}
