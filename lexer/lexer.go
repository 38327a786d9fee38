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

package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DrBlury/protols/ast"
)

// Lexer tokenizes an entire document up front into a flat token slice,
// which the parser then walks with an index, a friendlier shape than a
// pull-based lexer for error recovery (the parser can just fast-forward
// the index to skip a malformed region).
type Lexer struct {
	src  []byte
	pos  int
	line uint32
	char uint32 // UTF-16 column on the current line

	diags []ast.ParseDiagnostic
}

// New constructs a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []byte(src)}
}

// Lex tokenizes the entire source, returning every token (including
// comments) and any lexical-error diagnostics encountered (unterminated
// strings, unterminated block comments).
func Lex(src string) ([]Token, []ast.ParseDiagnostic) {
	lx := New(src)
	var toks []Token
	for {
		tok := lx.next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks, lx.diags
}

func (lx *Lexer) pos0() ast.Position { return ast.Position{Line: lx.line, Character: lx.char} }

func (lx *Lexer) errorf(start, end ast.Position, format string, args ...any) {
	lx.diags = append(lx.diags, ast.ParseDiagnostic{
		Range:   ast.Range{Start: start, End: end},
		Message: fmt.Sprintf(format, args...),
	})
}

// peekRune returns the rune at the current position without consuming it.
func (lx *Lexer) peekRune() (rune, int) {
	if lx.pos >= len(lx.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRune(lx.src[lx.pos:])
	return r, sz
}

func (lx *Lexer) peekRuneAt(offset int) (rune, int) {
	if offset >= len(lx.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRune(lx.src[offset:])
	return r, sz
}

// advance consumes one rune, updating line/char/offset bookkeeping.
func (lx *Lexer) advance() rune {
	r, sz := lx.peekRune()
	if sz == 0 {
		return 0
	}
	lx.pos += sz
	if r == '\n' {
		lx.line++
		lx.char = 0
	} else {
		lx.char += utf16Len(r)
	}
	return r
}

// utf16Len returns how many UTF-16 code units r occupies.
func utf16Len(r rune) uint32 {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// next scans and returns the next token, which may be a comment.
func (lx *Lexer) next() Token {
	lx.skipInlineWhitespace()

	start := lx.pos0()
	startOff := lx.pos
	r, sz := lx.peekRune()
	if sz == 0 {
		return Token{Kind: EOF, Start: start, End: start, StartOffset: startOff, EndOffset: startOff}
	}

	switch {
	case r == '\n' || r == ' ' || r == '\t' || r == '\r':
		lx.advance()
		return lx.next()
	case r == '/' && lx.peekIs(1, '/'):
		return lx.lexLineComment(start, startOff)
	case r == '/' && lx.peekIs(1, '*'):
		return lx.lexBlockComment(start, startOff)
	case r == '"' || r == '\'':
		return lx.lexString(start, startOff, r)
	case isIdentStart(r):
		return lx.lexIdent(start, startOff)
	case isDigit(r):
		return lx.lexNumber(start, startOff)
	case r == '.' && isDigitAt(lx, 1):
		return lx.lexNumber(start, startOff)
	default:
		return lx.lexPunct(start, startOff)
	}
}

func isDigitAt(lx *Lexer, offset int) bool {
	r, _ := lx.peekRuneAt(lx.pos + offset)
	return isDigit(r)
}

// skipInlineWhitespace consumes runs of plain whitespace that precede the
// next meaningful rune, but does not consume comments (those become
// tokens).
func (lx *Lexer) skipInlineWhitespace() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			return
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			lx.advance()
			continue
		}
		return
	}
}

func (lx *Lexer) peekIs(offset int, want rune) bool {
	r, _ := lx.peekRuneAt(lx.pos + offset)
	return r == want
}

func (lx *Lexer) lexLineComment(start ast.Position, startOff int) Token {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || r == '\n' {
			break
		}
		lx.advance()
	}
	text := string(lx.src[startOff:lx.pos])
	return Token{Kind: LineComment, Text: text, Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}

func (lx *Lexer) lexBlockComment(start ast.Position, startOff int) Token {
	lx.advance() // '/'
	lx.advance() // '*'
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			lx.errorf(start, lx.pos0(), "unterminated block comment")
			break
		}
		if r == '*' && lx.peekIs(1, '/') {
			lx.advance()
			lx.advance()
			break
		}
		lx.advance()
	}
	text := string(lx.src[startOff:lx.pos])
	return Token{Kind: BlockComment, Text: text, Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}

func (lx *Lexer) lexString(start ast.Position, startOff int, quote rune) Token {
	lx.advance() // opening quote
	var decoded strings.Builder
	for {
		r, sz := lx.peekRune()
		if sz == 0 || r == '\n' {
			lx.errorf(start, lx.pos0(), "unterminated string literal")
			break
		}
		if r == quote {
			lx.advance()
			break
		}
		if r == '\\' {
			lx.advance()
			decoded.WriteRune(lx.decodeEscape())
			continue
		}
		decoded.WriteRune(r)
		lx.advance()
	}
	text := string(lx.src[startOff:lx.pos])
	return Token{Kind: String, Text: text, Value: decoded.String(), Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}

func (lx *Lexer) decodeEscape() rune {
	r, sz := lx.peekRune()
	if sz == 0 {
		return '\\'
	}
	switch r {
	case 'n':
		lx.advance()
		return '\n'
	case 't':
		lx.advance()
		return '\t'
	case 'r':
		lx.advance()
		return '\r'
	case '\\', '\'', '"', '?':
		lx.advance()
		return r
	case 'x':
		lx.advance()
		v := 0
		for i := 0; i < 2; i++ {
			d, _ := lx.peekRune()
			if !isHexDigit(d) {
				break
			}
			v = v*16 + hexVal(d)
			lx.advance()
		}
		return rune(v)
	default:
		if isDigit(r) {
			v := 0
			for i := 0; i < 3; i++ {
				d, _ := lx.peekRune()
				if !isDigit(d) {
					break
				}
				v = v*8 + int(d-'0')
				lx.advance()
			}
			return rune(v)
		}
		lx.advance()
		return r
	}
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func (lx *Lexer) lexIdent(start ast.Position, startOff int) Token {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentCont(r) {
			break
		}
		lx.advance()
	}
	text := string(lx.src[startOff:lx.pos])
	kind := Ident
	if IsKeyword(text) {
		kind = Keyword
	}
	return Token{Kind: kind, Text: text, Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}

// lexNumber accepts decimal, 0x.. hex, and octal integers, plus floats with
// a fractional part, exponent, or trailing 'f'/'F'.
func (lx *Lexer) lexNumber(start ast.Position, startOff int) Token {
	isFloat := false
	r, _ := lx.peekRune()
	if r == '0' && (lx.peekIs(1, 'x') || lx.peekIs(1, 'X')) {
		lx.advance()
		lx.advance()
		for {
			d, sz := lx.peekRune()
			if sz == 0 || !isHexDigit(d) {
				break
			}
			lx.advance()
		}
	} else {
		for {
			d, sz := lx.peekRune()
			if sz == 0 || !isDigit(d) {
				break
			}
			lx.advance()
		}
		if d, _ := lx.peekRune(); d == '.' && isDigitAt(lx, 1) {
			isFloat = true
			lx.advance()
			for {
				d, sz := lx.peekRune()
				if sz == 0 || !isDigit(d) {
					break
				}
				lx.advance()
			}
		}
		if d, _ := lx.peekRune(); d == 'e' || d == 'E' {
			save := lx.pos
			lx.advance()
			if s, _ := lx.peekRune(); s == '+' || s == '-' {
				lx.advance()
			}
			any := false
			for {
				dd, sz := lx.peekRune()
				if sz == 0 || !isDigit(dd) {
					break
				}
				any = true
				lx.advance()
			}
			if any {
				isFloat = true
			} else {
				lx.pos = save
			}
		}
	}
	if d, _ := lx.peekRune(); (d == 'f' || d == 'F') && isFloat {
		lx.advance()
	}
	text := string(lx.src[startOff:lx.pos])
	kind := Int
	if isFloat {
		kind = Float
	}
	return Token{Kind: kind, Text: text, Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}

var punctSet = map[byte]bool{
	'{': true, '}': true, '(': true, ')': true, '[': true, ']': true, '<': true, '>': true,
	';': true, ',': true, '.': true, '=': true, '+': true, '-': true, ':': true,
}

func (lx *Lexer) lexPunct(start ast.Position, startOff int) Token {
	r := lx.advance()
	if !punctSet[byte(r)] {
		lx.errorf(start, lx.pos0(), "unexpected character %q", r)
		return Token{Kind: Invalid, Text: string(r), Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
	}
	return Token{Kind: Punct, Text: string(r), Start: start, End: lx.pos0(), StartOffset: startOff, EndOffset: lx.pos}
}
