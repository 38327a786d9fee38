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
	"testing"

	"github.com/stretchr/testify/require"
)

func kindsOf(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks, diags := Lex(`message Foo`)
	require.Empty(t, diags)
	require.Equal(t, []Kind{Keyword, Ident, EOF}, kindsOf(toks))
	require.Equal(t, "message", toks[0].Text)
	require.Equal(t, "Foo", toks[1].Text)
}

func TestLexStringEscapes(t *testing.T) {
	toks, diags := Lex(`"a\nb\"c"`)
	require.Empty(t, diags)
	require.Equal(t, String, toks[0].Kind)
	require.Equal(t, "a\nb\"c", toks[0].Value)
}

func TestLexUnterminatedStringProducesDiagnostic(t *testing.T) {
	_, diags := Lex(`"unterminated`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "unterminated string")
}

func TestLexUnterminatedBlockCommentProducesDiagnostic(t *testing.T) {
	_, diags := Lex(`/* never closed`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "unterminated block comment")
}

func TestLexIntegerAndFloat(t *testing.T) {
	toks, _ := Lex(`1 1.5 0x1A 1e10`)
	require.Equal(t, Int, toks[0].Kind)
	require.Equal(t, Float, toks[1].Kind)
	require.Equal(t, Int, toks[2].Kind)
	require.Equal(t, Float, toks[3].Kind)
}

func TestLexPunctuation(t *testing.T) {
	toks, diags := Lex(`{}();`)
	require.Empty(t, diags)
	require.True(t, toks[0].IsPunct("{"))
	require.True(t, toks[1].IsPunct("}"))
	require.True(t, toks[2].IsPunct("("))
	require.True(t, toks[3].IsPunct(")"))
	require.True(t, toks[4].IsPunct(";"))
}

func TestLexInvalidCharacterProducesDiagnostic(t *testing.T) {
	toks, diags := Lex(`@`)
	require.Equal(t, Invalid, toks[0].Kind)
	require.Len(t, diags, 1)
}

func TestLexLineAndBlockComments(t *testing.T) {
	toks, diags := Lex("// hi\n/* block */")
	require.Empty(t, diags)
	require.Equal(t, []Kind{LineComment, BlockComment, EOF}, kindsOf(toks))
}

func TestLexTracksUTF16Columns(t *testing.T) {
	toks, _ := Lex("foo")
	require.Equal(t, uint32(0), toks[0].Start.Character)
	require.Equal(t, uint32(3), toks[0].End.Character)
}

func TestIsKeyword(t *testing.T) {
	require.True(t, IsKeyword("message"))
	require.True(t, IsKeyword("repeated"))
	require.False(t, IsKeyword("Foo"))
}
