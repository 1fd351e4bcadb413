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
	"bufio"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Tokenizer turns a byte stream into a stream of tokens with exactly one
// token of lookahead. It is not safe for concurrent use.
type Tokenizer struct {
	r   io.ByteReader
	ch  byte // last character read
	eof bool
	err error

	line, col int // position of ch

	cur   Token
	pos   Position
	count int

	log *logrus.Entry
}

// New creates a Tokenizer reading from r and advances it to the first
// token. The reader is consumed strictly forward, one byte at a time.
func New(r io.Reader) *Tokenizer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	t := &Tokenizer{r: br, ch: ' ', line: 1}
	t.Advance()
	return t
}

// SetLogger attaches a logger. Every produced token is logged at trace
// level.
func (t *Tokenizer) SetLogger(log *logrus.Entry) {
	t.log = log
}

// Current returns the current token.
func (t *Tokenizer) Current() Token { return t.cur }

// Position returns the position where the current token starts.
func (t *Tokenizer) Position() Position { return t.pos }

// Offset returns the number of tokens produced so far, including the
// current one.
func (t *Tokenizer) Offset() int { return t.count }

// Err returns the first read error other than io.EOF. Such an error ends
// the token stream just like the end of the input does.
func (t *Tokenizer) Err() error { return t.err }

// Advance computes the next token and makes it the current one.
func (t *Tokenizer) Advance() {
	t.count++
	t.cur, t.pos = t.scan()

	if t.log != nil && t.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		t.log.WithFields(logrus.Fields{
			"token": t.cur.String(),
			"pos":   t.pos.String(),
		}).Trace("token")
	}
}

func (t *Tokenizer) scan() (Token, Position) {
	for {
		if t.eof {
			return Token{Kind: EndOfInput}, t.here()
		}

		for isSpace(t.ch) {
			if !t.read() {
				return Token{Kind: EndOfInput}, t.here()
			}
		}

		start := t.here()
		switch {
		case isAlpha(t.ch):
			buf := []byte{t.ch}
			for t.read() && isAlnum(t.ch) {
				buf = append(buf, t.ch)
			}

			switch ident := string(buf); ident {
			case "def":
				return Token{Kind: KeywordDef}, start
			case "extern":
				return Token{Kind: KeywordExtern}, start
			default:
				return NewIdentifier(ident), start
			}
		case isDigit(t.ch):
			buf := []byte{t.ch}
			for t.read() && (isDigit(t.ch) || t.ch == '.') {
				buf = append(buf, t.ch)
			}

			lit := string(buf)
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return Token{Kind: Illegal, Text: lit}, start
			}
			return NewNumber(v), start
		case t.ch == '#':
			// Comments run to the end of the line and never reach the parser.
			for t.read() && t.ch != '\n' {
			}
		default:
			c := t.ch
			t.read()
			return NewIdentifier(string(c)), start
		}
	}
}

// read pulls the next character. It returns false once the stream is
// exhausted; a zero-byte read is told apart from a character that is
// read but rejected by the caller's scan loop.
func (t *Tokenizer) read() bool {
	b, err := t.r.ReadByte()
	if err != nil {
		if err != io.EOF && t.err == nil {
			t.err = err
		}
		t.eof = true
		return false
	}

	if t.ch == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	t.ch = b
	return true
}

func (t *Tokenizer) here() Position {
	return Position{Line: t.line, Col: t.col}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
