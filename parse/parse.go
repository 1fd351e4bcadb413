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

package parse // import "github.com/dolthub/go-kaleidoscope/parse"

import (
	"context"
	"io"
	"strings"

	"github.com/dolthub/go-kaleidoscope/ast"
	"github.com/dolthub/go-kaleidoscope/lexer"
)

// Parse parses every top-level construct read from r. A nil precedence
// table means DefaultPrecedence.
func Parse(ctx context.Context, r io.Reader, prec *Precedence, opts ...Option) ([]ast.Node, error) {
	return New(lexer.New(r), prec, opts...).Parse(ctx)
}

// String parses every top-level construct in s with the default
// precedence table.
func String(ctx context.Context, s string, opts ...Option) ([]ast.Node, error) {
	return Parse(ctx, strings.NewReader(s), nil, opts...)
}

// Expression parses s as a single expression with the default precedence
// table. The whole input must be consumed.
func Expression(s string, opts ...Option) (ast.Expression, error) {
	p := New(lexer.New(strings.NewReader(s)), nil, opts...)

	e, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind != lexer.EndOfInput {
		return nil, ErrTrailingInput.New(p.tok.Position(), p.cur())
	}

	return e, nil
}
