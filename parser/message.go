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

var messageBodyKeywords = map[string]bool{
	"reserved": true, "extensions": true, "oneof": true, "map": true, "group": true,
	"message": true, "enum": true, "option": true, "optional": true, "required": true, "repeated": true,
}

func (c *cursor) parseMessage(leading []ast.Comment) *ast.MessageDefinition {
	start := c.advance() // 'message'
	nameTok, _ := c.expectIdentLike()
	m := &ast.MessageDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	m.Comments.Leading = leading

	if _, ok := c.expectPunct("{"); !ok {
		m.Range = ast.Range{Start: start.Start, End: nameTok.End}
		return m
	}
	c.parseMessageBody(m)
	end, _ := c.expectPunct("}")
	m.Range = ast.Range{Start: start.Start, End: end.End}
	return m
}

func (c *cursor) parseMessageBody(m *ast.MessageDefinition) {
	for {
		leading := c.collectLeading()
		t := c.peek()
		switch {
		case t.IsPunct("}") || t.Kind == lexer.EOF:
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
			return
		case t.IsPunct(";"):
			c.advance()
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
		case t.IsKeyword("reserved"):
			m.Reserved = append(m.Reserved, c.parseReserved(leading))
		case t.IsKeyword("extensions"):
			m.Extensions = append(m.Extensions, c.parseExtensionsRange(leading))
		case t.IsKeyword("oneof"):
			m.Oneofs = append(m.Oneofs, c.parseOneof(leading))
		case t.IsKeyword("map"):
			m.Maps = append(m.Maps, c.parseMapField(leading))
		case t.IsKeyword("message"):
			m.NestedMessages = append(m.NestedMessages, c.parseMessage(leading))
		case t.IsKeyword("enum"):
			m.NestedEnums = append(m.NestedEnums, c.parseEnum(leading))
		case t.IsKeyword("option"):
			m.Options = append(m.Options, c.parseOption())
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
		case t.IsKeyword("optional") || t.IsKeyword("required") || t.IsKeyword("repeated"):
			c.parseModifiedMember(m, leading, t)
		case t.Kind == lexer.Ident || (t.Kind == lexer.Keyword && !messageBodyKeywords[t.Text]) || t.IsPunct("."):
			m.Fields = append(m.Fields, c.parseField(leading, ast.ModifierNone))
		default:
			c.errorf(tokRange(t), "unexpected %s in message body", describeTok(t))
			if leading != nil {
				c.floating = append(c.floating, leading...)
			}
			c.recover(messageBodyKeywords)
			if c.peek().IsKeyword("group") {
				// A group without a modifier is not parsed here, and recover
				// stops on it as a landmark; drop it so parsing moves on.
				c.advance()
			}
		}
	}
}

// parseModifiedMember handles `optional|required|repeated` which may
// precede either a regular field or a proto2 `group`.
func (c *cursor) parseModifiedMember(m *ast.MessageDefinition, leading []ast.Comment, modTok lexer.Token) {
	mod := modifierFromKeyword(modTok.Text)
	c.advance()
	if c.peek().IsKeyword("group") {
		m.Groups = append(m.Groups, c.parseGroup(leading, modTok, mod))
		return
	}
	m.Fields = append(m.Fields, c.parseFieldAfterModifier(leading, modTok, mod))
}

func modifierFromKeyword(s string) ast.FieldModifier {
	switch s {
	case "optional":
		return ast.ModifierOptional
	case "required":
		return ast.ModifierRequired
	case "repeated":
		return ast.ModifierRepeated
	default:
		return ast.ModifierNone
	}
}

func (c *cursor) parseEnum(leading []ast.Comment) *ast.EnumDefinition {
	start := c.advance() // 'enum'
	nameTok, _ := c.expectIdentLike()
	e := &ast.EnumDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	e.Comments.Leading = leading

	if _, ok := c.expectPunct("{"); !ok {
		e.Range = ast.Range{Start: start.Start, End: nameTok.End}
		return e
	}
	for {
		vLeading := c.collectLeading()
		t := c.peek()
		switch {
		case t.IsPunct("}") || t.Kind == lexer.EOF:
			if vLeading != nil {
				c.floating = append(c.floating, vLeading...)
			}
			goto done
		case t.IsPunct(";"):
			c.advance()
			if vLeading != nil {
				c.floating = append(c.floating, vLeading...)
			}
		case t.IsKeyword("reserved"):
			e.Reserved = append(e.Reserved, c.parseReserved(vLeading))
		case t.IsKeyword("option"):
			e.Options = append(e.Options, c.parseOption())
			if vLeading != nil {
				c.floating = append(c.floating, vLeading...)
			}
		case t.Kind == lexer.Ident || t.Kind == lexer.Keyword:
			e.Values = append(e.Values, c.parseEnumValue(vLeading))
		default:
			c.errorf(tokRange(t), "unexpected %s in enum body", describeTok(t))
			if vLeading != nil {
				c.floating = append(c.floating, vLeading...)
			}
			c.recover(map[string]bool{"reserved": true, "option": true})
		}
	}
done:
	end, _ := c.expectPunct("}")
	e.Range = ast.Range{Start: start.Start, End: end.End}
	return e
}

func (c *cursor) parseEnumValue(leading []ast.Comment) *ast.EnumValueDefinition {
	nameTok, _ := c.expectIdentLike()
	c.expectPunct("=")
	num, numRange, _ := c.parseSignedIntLiteral()
	v := &ast.EnumValueDefinition{
		Name: nameTok.Text, NameRange: nameTok.Range(),
		Number: int32(num), NumberRange: numRange,
	}
	if c.peek().IsPunct("[") {
		v.Options = c.parseFieldOptions()
	}
	end, _ := c.expectPunct(";")
	v.Range = ast.Range{Start: nameTok.Start, End: end.End}
	v.Comments.Leading = leading
	v.Comments.Trailing = c.collectTrailing(end.End.Line)
	return v
}

func (c *cursor) parseService(leading []ast.Comment) *ast.ServiceDefinition {
	start := c.advance() // 'service'
	nameTok, _ := c.expectIdentLike()
	s := &ast.ServiceDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	s.Comments.Leading = leading

	if _, ok := c.expectPunct("{"); !ok {
		s.Range = ast.Range{Start: start.Start, End: nameTok.End}
		return s
	}
	for {
		rLeading := c.collectLeading()
		t := c.peek()
		switch {
		case t.IsPunct("}") || t.Kind == lexer.EOF:
			if rLeading != nil {
				c.floating = append(c.floating, rLeading...)
			}
			goto done
		case t.IsPunct(";"):
			c.advance()
			if rLeading != nil {
				c.floating = append(c.floating, rLeading...)
			}
		case t.IsKeyword("option"):
			s.Options = append(s.Options, c.parseOption())
			if rLeading != nil {
				c.floating = append(c.floating, rLeading...)
			}
		case t.IsKeyword("rpc"):
			s.Rpcs = append(s.Rpcs, c.parseRpc(rLeading))
		default:
			c.errorf(tokRange(t), "unexpected %s in service body", describeTok(t))
			if rLeading != nil {
				c.floating = append(c.floating, rLeading...)
			}
			c.recover(map[string]bool{"option": true, "rpc": true})
		}
	}
done:
	end, _ := c.expectPunct("}")
	s.Range = ast.Range{Start: start.Start, End: end.End}
	return s
}

func (c *cursor) parseRpc(leading []ast.Comment) *ast.RpcDefinition {
	start := c.advance() // 'rpc'
	nameTok, _ := c.expectIdentLike()
	r := &ast.RpcDefinition{Name: nameTok.Text, NameRange: nameTok.Range()}
	r.Comments.Leading = leading

	c.expectPunct("(")
	if c.peek().IsKeyword("stream") {
		c.advance()
		r.InputStream = true
	}
	r.InputType, r.InputTypeRange = c.parseDottedName()
	c.expectPunct(")")
	c.expectKeyword("returns")
	c.expectPunct("(")
	if c.peek().IsKeyword("stream") {
		c.advance()
		r.OutputStream = true
	}
	r.OutputType, r.OutputTypeRange = c.parseDottedName()
	c.expectPunct(")")

	end := c.lastConsumedEnd()
	if c.peek().IsPunct("{") {
		c.advance()
		for {
			oLeading := c.collectLeading()
			t := c.peek()
			if t.IsPunct("}") || t.Kind == lexer.EOF {
				if oLeading != nil {
					c.floating = append(c.floating, oLeading...)
				}
				break
			}
			if t.IsKeyword("option") {
				r.Options = append(r.Options, c.parseOption())
				if oLeading != nil {
					c.floating = append(c.floating, oLeading...)
				}
				continue
			}
			if t.IsPunct(";") {
				c.advance()
				if oLeading != nil {
					c.floating = append(c.floating, oLeading...)
				}
				continue
			}
			c.errorf(tokRange(t), "unexpected %s in rpc body", describeTok(t))
			if oLeading != nil {
				c.floating = append(c.floating, oLeading...)
			}
			c.recover(map[string]bool{"option": true})
		}
		closeTok, _ := c.expectPunct("}")
		end = closeTok.End
	} else {
		// A bare ';' here is the only accepted terminator; unlike extend
		// bodies, an rpc may validly have no options at all.
		semi, _ := c.expectPunct(";")
		end = semi.End
		r.Comments.Trailing = c.collectTrailing(end.Line)
	}
	r.Range = ast.Range{Start: start.Start, End: end}
	return r
}

func (c *cursor) parseExtend(leading []ast.Comment) *ast.ExtendDefinition {
	start := c.advance() // 'extend'
	extendee, extendeeRange := c.parseDottedName()
	ext := &ast.ExtendDefinition{Extendee: extendee, ExtendeeRange: extendeeRange}
	ext.Comments.Leading = leading

	// The formal grammar always requires a body; a bare ';' here is
	// rejected rather than treated as an empty extend block.
	if _, ok := c.expectPunct("{"); !ok {
		ext.Range = ast.Range{Start: start.Start, End: extendeeRange.End}
		return ext
	}
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
		case t.IsKeyword("optional") || t.IsKeyword("required") || t.IsKeyword("repeated"):
			mod := modifierFromKeyword(t.Text)
			modTok := t
			c.advance()
			if c.peek().IsKeyword("group") {
				ext.Groups = append(ext.Groups, c.parseGroup(fLeading, modTok, mod))
				continue
			}
			ext.Fields = append(ext.Fields, c.parseFieldAfterModifier(fLeading, modTok, mod))
		default:
			ext.Fields = append(ext.Fields, c.parseField(fLeading, ast.ModifierNone))
		}
	}
done:
	end, _ := c.expectPunct("}")
	ext.Range = ast.Range{Start: start.Start, End: end.End}
	return ext
}
