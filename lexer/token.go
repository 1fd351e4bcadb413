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
	"fmt"
	"strconv"
)

// Kind is the variant of a Token.
type Kind byte

const (
	// EndOfInput is produced once the input is exhausted, and forever after.
	EndOfInput Kind = iota
	// KeywordDef is the `def` keyword.
	KeywordDef
	// KeywordExtern is the `extern` keyword.
	KeywordExtern
	// Identifier is either a name or a single punctuation/operator character.
	Identifier
	// Number is a numeric literal.
	Number
	// Illegal is a literal that could not be decoded, e.g. `1.2.3`.
	Illegal
)

func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "EndOfInput"
	case KeywordDef:
		return "KeywordDef"
	case KeywordExtern:
		return "KeywordExtern"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case Illegal:
		return "Illegal"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Token is a single lexical unit. Text is set for Identifier and Illegal
// tokens, Value for Number tokens.
type Token struct {
	Kind  Kind
	Text  string
	Value float64
}

// Position is a 1-based line and column in the input.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// NewIdentifier returns an Identifier token with the given text.
func NewIdentifier(text string) Token {
	return Token{Kind: Identifier, Text: text}
}

// NewNumber returns a Number token with the given value.
func NewNumber(v float64) Token {
	return Token{Kind: Number, Value: v}
}

// Ident returns the text of an Identifier token. Calling it on any other
// kind of token is a programming error and panics.
func (t Token) Ident() string {
	if t.Kind != Identifier {
		panic(fmt.Sprintf("lexer: Ident called on %s token", t.Kind))
	}
	return t.Text
}

// Number returns the value of a Number token. Calling it on any other kind
// of token is a programming error and panics.
func (t Token) Number() float64 {
	if t.Kind != Number {
		panic(fmt.Sprintf("lexer: Number called on %s token", t.Kind))
	}
	return t.Value
}

// Is reports whether t is the single character identifier c.
func (t Token) Is(c byte) bool {
	return t.Kind == Identifier && len(t.Text) == 1 && t.Text[0] == c
}

// IsName reports whether t is an identifier proper, as opposed to a
// punctuation or operator character.
func (t Token) IsName() bool {
	return t.Kind == Identifier && len(t.Text) > 0 && isAlpha(t.Text[0])
}

// String returns a human readable representation used in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case EndOfInput:
		return "end of input"
	case KeywordDef:
		return "'def'"
	case KeywordExtern:
		return "'extern'"
	case Identifier:
		return strconv.Quote(t.Text)
	case Number:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case Illegal:
		return fmt.Sprintf("illegal literal %q", t.Text)
	default:
		return t.Kind.String()
	}
}
