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

package kaleidoscope // import "github.com/dolthub/go-kaleidoscope"

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-kaleidoscope/ast"
	"github.com/dolthub/go-kaleidoscope/lexer"
	"github.com/dolthub/go-kaleidoscope/parse"
)

// Engine turns source code into syntax trees. It is safe for concurrent
// use: every parse runs on its own tokenizer and parser.
type Engine struct {
	prec   *parse.Precedence
	cache  *parseCache
	log    *logrus.Entry
	tracer opentracing.Tracer
}

// New creates a new Engine with the given config. A nil config uses the
// defaults.
func New(cfg *Config) (*Engine, error) {
	c := cfg.normalize()

	prec := parse.DefaultPrecedence()
	for _, op := range c.operators() {
		if err := prec.Register(op, c.Operators[op]); err != nil {
			return nil, ErrInvalidConfig.Wrap(err, "operators."+op)
		}
	}

	log, err := NewLogger(c.LogLevel)
	if err != nil {
		return nil, err
	}

	cache, err := newParseCache(c.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		prec:   prec,
		cache:  cache,
		log:    log,
		tracer: opentracing.NoopTracer{},
	}, nil
}

// NewDefault creates a new Engine with the default config.
func NewDefault() *Engine {
	e, err := New(nil)
	if err != nil {
		panic(err)
	}
	return e
}

// WithLogger replaces the logger of the engine.
func (e *Engine) WithLogger(log *logrus.Entry) *Engine {
	e.log = log
	return e
}

// Logger returns the logger of the engine.
func (e *Engine) Logger() *logrus.Entry {
	return e.log
}

// WithTracer sets the tracer used for the spans of every parse.
func (e *Engine) WithTracer(t opentracing.Tracer) *Engine {
	e.tracer = t
	return e
}

// Operators returns the binary operators known by the engine.
func (e *Engine) Operators() []string {
	return e.prec.Operators()
}

// Parse parses every top-level construct read from r. When some construct
// fails the returned error describes every failure and the trees of the
// constructs that succeeded are still returned.
func (e *Engine) Parse(ctx context.Context, r io.Reader) ([]ast.Node, error) {
	return e.parse(ctx, r)
}

// ParseString is like Parse, but results are cached by source.
func (e *Engine) ParseString(ctx context.Context, src string) ([]ast.Node, error) {
	if nodes, ok := e.cache.Get(src); ok {
		e.log.WithField("source_size", len(src)).Debug("parse cache hit")
		return nodes, nil
	}

	nodes, err := e.parse(ctx, strings.NewReader(src))
	if err != nil {
		return nodes, err
	}

	e.cache.Put(src, nodes)
	return nodes, nil
}

func (e *Engine) parse(ctx context.Context, r io.Reader) ([]ast.Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	id := uuid.New().String()
	log := e.log.WithField(ParseIDLogField, id)

	span, ctx := opentracing.StartSpanFromContextWithTracer(
		ctx,
		e.tracer,
		"engine.parse",
		opentracing.Tag{Key: ParseIDLogField, Value: id},
	)
	defer span.Finish()

	start := time.Now()
	p := parse.New(lexer.New(r), e.prec, parse.WithLogger(log), parse.WithTracer(e.tracer))
	nodes, err := p.Parse(ctx)

	var count int
	for _, n := range nodes {
		count += ast.Count(n)
	}

	entry := log.WithFields(logrus.Fields{
		"constructs": len(nodes),
		"nodes":      count,
		"duration":   time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Debug("parsed source with errors")
	} else {
		entry.Debug("parsed source")
	}

	return nodes, err
}

// Lexeme is a token and the position where it starts.
type Lexeme struct {
	lexer.Token
	Pos lexer.Position
}

// Tokenize returns every token read from r, ending with the EndOfInput
// token.
func (e *Engine) Tokenize(r io.Reader) ([]Lexeme, error) {
	tok := lexer.New(r)
	tok.SetLogger(e.log)

	var out []Lexeme
	for {
		out = append(out, Lexeme{tok.Current(), tok.Position()})
		if tok.Current().Kind == lexer.EndOfInput {
			break
		}
		tok.Advance()
	}

	if err := tok.Err(); err != nil {
		return out, parse.ErrRead.Wrap(err)
	}
	return out, nil
}

// Format returns the canonical form of src, one top-level construct per
// line. Binary operations keep only the parentheses required by the
// engine's operator precedences. The canonical form is checked to parse
// back to the same trees.
func (e *Engine) Format(ctx context.Context, src string) (string, error) {
	nodes, err := e.ParseString(ctx, src)
	if err != nil {
		return "", err
	}

	printer := ast.Printer{Precedence: e.prec.Lookup}

	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(printer.Format(n))
		b.WriteByte('\n')
	}
	out := b.String()

	reparsed, err := e.ParseString(ctx, out)
	if err != nil {
		return "", ErrRoundTrip.Wrap(err, "reparse failed")
	}

	if len(reparsed) != len(nodes) {
		return "", ErrRoundTrip.New("number of constructs changed")
	}

	for i := range nodes {
		if !ast.Equal(nodes[i], reparsed[i]) {
			return "", ErrRoundTrip.New(printer.Format(nodes[i]))
		}
	}

	return out, nil
}
