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

package parse

import (
	"context"

	"github.com/hashicorp/go-multierror"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-kaleidoscope/ast"
	"github.com/dolthub/go-kaleidoscope/lexer"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for diagnostics and for the trace of
// grammar rules, which is emitted at trace level.
func WithLogger(log *logrus.Entry) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithTracer sets the tracer used to create spans for top-level constructs.
func WithTracer(t opentracing.Tracer) Option {
	return func(p *Parser) {
		p.tracer = t
	}
}

// Parser builds syntax trees from the tokens of a Tokenizer, using
// recursive descent for primary expressions and precedence climbing for
// chains of binary operators. It holds the tokenizer exclusively for its
// whole lifetime and is not safe for concurrent use.
type Parser struct {
	tok    *lexer.Tokenizer
	prec   *Precedence
	log    *logrus.Entry
	tracer opentracing.Tracer
}

// New creates a parser reading from tok, which must be positioned at its
// first token. The precedence table is copied, so registering operators on
// prec afterwards does not affect the parser. A nil table means
// DefaultPrecedence.
func New(tok *lexer.Tokenizer, prec *Precedence, opts ...Option) *Parser {
	if prec == nil {
		prec = DefaultPrecedence()
	}

	p := &Parser{
		tok:    tok,
		prec:   prec.clone(),
		log:    logrus.NewEntry(logrus.StandardLogger()),
		tracer: opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(p)
	}

	tok.SetLogger(p.log)
	return p
}

// Parse parses top-level constructs until the end of the input. A
// construct that fails is reported and skipped, and parsing resumes right
// after the offending token. The returned error aggregates every failure;
// the nodes of the constructs that succeeded are returned regardless.
func (p *Parser) Parse(ctx context.Context) ([]ast.Node, error) {
	span, ctx := p.span(ctx, "parse")
	defer span.Finish()

	var (
		nodes  []ast.Node
		result *multierror.Error
	)

	for p.cur().Kind != lexer.EndOfInput {
		start := p.tok.Offset()
		node, err := p.ParseTopLevel(ctx)
		if err != nil {
			p.log.WithError(err).Error("parse error")
			result = multierror.Append(result, err)
			// Rules never consume the token they fail on.
			p.tok.Advance()
			continue
		}

		if p.tok.Offset() == start {
			panic(ErrNoProgress.New(p.tok.Position(), p.cur()))
		}

		nodes = append(nodes, node)
	}

	if err := p.tok.Err(); err != nil {
		result = multierror.Append(result, ErrRead.Wrap(err))
	}

	span.SetTag("nodes", len(nodes))
	if err := result.ErrorOrNil(); err != nil {
		ext.Error.Set(span, true)
		return nodes, err
	}

	return nodes, nil
}

// ParseTopLevel parses a single top-level construct: a definition, an
// extern declaration or a bare expression, which is wrapped into an
// anonymous function.
func (p *Parser) ParseTopLevel(ctx context.Context) (ast.Node, error) {
	var (
		node ast.Node
		err  error
	)

	switch p.cur().Kind {
	case lexer.KeywordDef:
		span, _ := p.span(ctx, "parse.definition")
		defer span.Finish()
		node, err = p.ParseDefinition()
		finish(span, err)
	case lexer.KeywordExtern:
		span, _ := p.span(ctx, "parse.extern")
		defer span.Finish()
		node, err = p.ParseExtern()
		finish(span, err)
	default:
		span, _ := p.span(ctx, "parse.toplevel")
		defer span.Finish()
		node, err = p.ParseTopLevelExpression()
		finish(span, err)
	}

	if err != nil {
		return nil, err
	}
	return node, nil
}

// ParseDefinition parses `def prototype expression`.
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	p.trace("definition")
	p.tok.Advance() // def

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return ast.NewFunction(proto, body), nil
}

// ParseExtern parses `extern prototype`.
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.trace("extern")
	p.tok.Advance() // extern
	return p.ParsePrototype()
}

// ParseTopLevelExpression parses an expression and wraps it into an
// anonymous function with no parameters.
func (p *Parser) ParseTopLevelExpression() (*ast.Function, error) {
	p.trace("toplevel")
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAnonymousFunction(body), nil
}

// ParsePrototype parses `name '(' name* ')'`.
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	p.trace("prototype")
	if !p.cur().IsName() {
		return nil, p.unexpected("function name in prototype")
	}

	name := p.cur().Ident()
	p.tok.Advance()

	if !p.cur().Is('(') {
		return nil, p.unexpected("'(' in prototype")
	}
	p.tok.Advance()

	var params []string
	for !p.cur().Is(')') {
		if !p.cur().IsName() {
			return nil, p.unexpected("parameter name or ')' in prototype")
		}
		params = append(params, p.cur().Ident())
		p.tok.Advance()
	}
	p.tok.Advance() // )

	return ast.NewPrototype(name, params...), nil
}

// ParseExpression parses a primary expression followed by any number of
// binary operators and their operands.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	p.trace("expression")
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	p.trace("primary")
	tok := p.cur()
	switch {
	case tok.Is('('):
		return p.parseParenExpr()
	case tok.IsName():
		return p.parseIdentifierExpr()
	case tok.Kind == lexer.Number:
		return p.parseNumberExpr(), nil
	case tok.Kind == lexer.Illegal:
		return nil, lexer.ErrMalformedNumber.New(p.tok.Position(), tok.Text)
	default:
		return nil, ErrExpectedExpression.New(p.tok.Position(), tok)
	}
}

func (p *Parser) parseNumberExpr() ast.Expression {
	n := ast.NewNumber(p.cur().Number())
	p.tok.Advance()
	return n
}

// parseParenExpr parses `'(' expression ')'`. Parentheses only group, they
// leave no trace in the tree.
func (p *Parser) parseParenExpr() (ast.Expression, error) {
	p.tok.Advance() // (

	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if !p.cur().Is(')') {
		return nil, p.unexpected("')'")
	}
	p.tok.Advance()

	return inner, nil
}

// parseIdentifierExpr parses a variable reference or a call
// `name '(' (expression (',' expression)*)? ')'`.
func (p *Parser) parseIdentifierExpr() (ast.Expression, error) {
	name := p.cur().Ident()
	p.tok.Advance()

	if !p.cur().Is('(') {
		return ast.NewVariable(name), nil
	}
	p.tok.Advance()

	var args []ast.Expression
	if !p.cur().Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur().Is(')') {
				break
			}

			if !p.cur().Is(',') {
				return nil, p.unexpected("')' or ',' in argument list")
			}
			p.tok.Advance()
		}
	}
	p.tok.Advance() // )

	return ast.NewCall(name, args...), nil
}

// parseBinOpRHS folds binary operators whose precedence is at least
// minPrec into lhs. An operator followed by a tighter binding one gets its
// right-hand side folded first; equal precedence associates to the left.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expression) (ast.Expression, error) {
	for {
		prec := p.precedence(p.cur())
		if prec < minPrec {
			return lhs, nil
		}

		op := p.cur().Ident()
		p.tok.Advance()

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if next := p.precedence(p.cur()); prec < next {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = ast.NewBinaryOp(op, lhs, rhs)
	}
}

// precedence returns the precedence of tok if it is a known binary
// operator, or -1.
func (p *Parser) precedence(tok lexer.Token) int {
	if tok.Kind != lexer.Identifier {
		return -1
	}
	if prec, ok := p.prec.Lookup(tok.Text); ok {
		return prec
	}
	return -1
}

func (p *Parser) cur() lexer.Token {
	return p.tok.Current()
}

func (p *Parser) unexpected(expected string) error {
	return ErrUnexpectedToken.New(p.tok.Position(), expected, p.cur())
}

func (p *Parser) trace(rule string) {
	if !p.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	p.log.WithFields(logrus.Fields{
		"token": p.cur().String(),
		"pos":   p.tok.Position().String(),
	}).Trace(rule)
}

func (p *Parser) span(ctx context.Context, name string) (opentracing.Span, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	return opentracing.StartSpanFromContextWithTracer(ctx, p.tracer, name)
}

func finish(span opentracing.Span, err error) {
	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("error", err.Error())
	}
}
