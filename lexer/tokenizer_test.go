// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func id(s string) Token { return NewIdentifier(s) }
func num(v float64) Token { return NewNumber(v) }
func eof() Token { return Token{Kind: EndOfInput} }
func illegal(s string) Token { return Token{Kind: Illegal, Text: s} }

func collect(t *testing.T, input string) []Token {
	t.Helper()
	tok := New(strings.NewReader(input))
	var out []Token
	for i := 0; i < 1000; i++ {
		cur := tok.Current()
		out = append(out, cur)
		if cur.Kind == EndOfInput {
			return out
		}
		tok.Advance()
	}
	t.Fatalf("token stream for %q did not end", input)
	return nil
}

func TestTokenizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			"fib definition",
			"def fib(x) if x < 3 then 1 else fib(x - 1) + fib(x - 2)",
			[]Token{
				{Kind: KeywordDef}, id("fib"), id("("), id("x"), id(")"),
				id("if"), id("x"), id("<"), num(3), id("then"),
				num(1),
				id("else"),
				id("fib"), id("("), id("x"), id("-"), num(1), id(")"),
				id("+"), id("fib"), id("("), id("x"), id("-"), num(2), id(")"),
				eof(),
			},
		},
		{
			"multiline definition",
			`
				def fib(x)
					if x < 3 then
						1
					else
						fib(x - 1)
			`,
			[]Token{
				{Kind: KeywordDef}, id("fib"), id("("), id("x"), id(")"),
				id("if"), id("x"), id("<"), num(3), id("then"),
				num(1),
				id("else"),
				id("fib"), id("("), id("x"), id("-"), num(1), id(")"),
				eof(),
			},
		},
		{
			"extern",
			"extern sin(a)",
			[]Token{{Kind: KeywordExtern}, id("sin"), id("("), id("a"), id(")"), eof()},
		},
		{
			"comment",
			"5 # comment\n6",
			[]Token{num(5), num(6), eof()},
		},
		{
			"comment at end of input",
			"x # trailing",
			[]Token{id("x"), eof()},
		},
		{
			"empty",
			"",
			[]Token{eof()},
		},
		{
			"only whitespace",
			" \t\r\n ",
			[]Token{eof()},
		},
		{
			"alphanumeric identifiers",
			"x1 y22z define externs",
			[]Token{id("x1"), id("y22z"), id("define"), id("externs"), eof()},
		},
		{
			"decimal numbers",
			"1.5 0.25 10.",
			[]Token{num(1.5), num(0.25), num(10), eof()},
		},
		{
			"number followed by identifier",
			"4x",
			[]Token{num(4), id("x"), eof()},
		},
		{
			"malformed number",
			"1.2.3 + 4",
			[]Token{illegal("1.2.3"), id("+"), num(4), eof()},
		},
		{
			"punctuation without spaces",
			"a*(b,c)",
			[]Token{id("a"), id("*"), id("("), id("b"), id(","), id("c"), id(")"), eof()},
		},
		{
			"single character at end of input",
			"a+",
			[]Token{id("a"), id("+"), eof()},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, collect(t, tt.input))
		})
	}
}

func TestCommentTransparency(t *testing.T) {
	require.Equal(t, collect(t, "5\n6"), collect(t, "5 # comment\n6"))
	require.Equal(t, collect(t, "a b"), collect(t, "a # one\n# two\nb # three"))
}

func TestEndOfInputIsSticky(t *testing.T) {
	require := require.New(t)
	tok := New(strings.NewReader("x"))
	tok.Advance()
	for i := 0; i < 3; i++ {
		require.Equal(EndOfInput, tok.Current().Kind)
		tok.Advance()
	}
	require.NoError(tok.Err())
}

func TestPosition(t *testing.T) {
	require := require.New(t)
	tok := New(strings.NewReader("def f(x)\n  x + 1"))

	expected := []Position{
		{1, 1}, {1, 5}, {1, 6}, {1, 7}, {1, 8},
		{2, 3}, {2, 5}, {2, 7},
	}
	for _, pos := range expected {
		require.Equal(pos, tok.Position(), "token %s", tok.Current())
		tok.Advance()
	}
	require.Equal(EndOfInput, tok.Current().Kind)
}

func TestOffset(t *testing.T) {
	require := require.New(t)
	tok := New(strings.NewReader("a b"))
	require.Equal(1, tok.Offset())
	tok.Advance()
	require.Equal(2, tok.Offset())
	tok.Advance()
	require.Equal(3, tok.Offset())
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadErrorEndsStream(t *testing.T) {
	require := require.New(t)
	boom := errors.New("boom")
	tok := New(&failingReader{data: []byte("a b"), err: boom})

	require.Equal(id("a"), tok.Current())
	tok.Advance()
	require.Equal(id("b"), tok.Current())
	tok.Advance()
	require.Equal(EndOfInput, tok.Current().Kind)
	require.Equal(boom, tok.Err())
}

func TestTokenAccessors(t *testing.T) {
	require := require.New(t)

	require.Equal("x", id("x").Ident())
	require.Equal(2.5, num(2.5).Number())
	require.Panics(func() { num(1).Ident() })
	require.Panics(func() { id("x").Number() })
	require.Panics(func() { eof().Ident() })

	require.True(id("(").Is('('))
	require.False(id("((").Is('('))
	require.False(illegal("(").Is('('))

	require.True(id("foo").IsName())
	require.False(id("+").IsName())
	require.False(Token{Kind: KeywordDef}.IsName())
}

func TestTokenString(t *testing.T) {
	require := require.New(t)
	require.Equal("end of input", eof().String())
	require.Equal("'def'", Token{Kind: KeywordDef}.String())
	require.Equal("'extern'", Token{Kind: KeywordExtern}.String())
	require.Equal(`"foo"`, id("foo").String())
	require.Equal("1.5", num(1.5).String())
	require.Equal(`illegal literal "1.2.3"`, illegal("1.2.3").String())
}

func TestTraceLogging(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.TraceLevel)

	tok := New(strings.NewReader("a 1"))
	tok.SetLogger(logrus.NewEntry(logger))
	tok.Advance()
	tok.Advance()

	out := buf.String()
	require.Contains(out, "token=1")
	require.Contains(out, "token=\"end of input\"")
}
