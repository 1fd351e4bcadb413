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
	"sort"
	"strings"
)

// Precedence maps single character binary operators to their binding
// strength. Higher values bind tighter.
type Precedence struct {
	ops map[string]int
}

// NewPrecedence returns an empty precedence table.
func NewPrecedence() *Precedence {
	return &Precedence{ops: make(map[string]int)}
}

// DefaultPrecedence returns the table with the builtin operators.
func DefaultPrecedence() *Precedence {
	p := NewPrecedence()
	p.ops["<"] = 10
	p.ops["+"] = 20
	p.ops["-"] = 20
	p.ops["*"] = 30
	return p
}

// reserved characters have a meaning of their own in the grammar.
const reserved = "(),#"

// Register adds op to the table, replacing its precedence if it is already
// there. Operators must be registered before the table is handed to a
// parser.
func (p *Precedence) Register(op string, prec int) error {
	if len(op) != 1 {
		return ErrInvalidOperator.New(op)
	}

	c := op[0]
	if c <= ' ' || c > '~' || isAlnum(c) || strings.IndexByte(reserved, c) >= 0 {
		return ErrInvalidOperator.New(op)
	}

	if prec < 1 {
		return ErrInvalidPrecedence.New(prec, op)
	}

	p.ops[op] = prec
	return nil
}

// Lookup returns the precedence of op.
func (p *Precedence) Lookup(op string) (int, bool) {
	prec, ok := p.ops[op]
	return prec, ok
}

// Operators returns the registered operators sorted by character.
func (p *Precedence) Operators() []string {
	ops := make([]string, 0, len(p.ops))
	for op := range p.ops {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (p *Precedence) clone() *Precedence {
	c := NewPrecedence()
	for op, prec := range p.ops {
		c.ops[op] = prec
	}
	return c
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
