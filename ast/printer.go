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

package ast

import (
	"fmt"
	"strings"
)

// Printer prints top-level nodes in their canonical source form.
type Printer struct {
	// Precedence returns the precedence of a binary operator. Binary
	// operations are only parenthesized where their precedence requires it.
	// When Precedence is nil, or does not know an operator, the operation is
	// fully parenthesized.
	Precedence func(op string) (int, bool)
}

// Format returns the canonical source form of a top-level node, that is, a
// form that can be fed back to the parser at top level. With a Precedence
// set, a construct only starts with '(' if its source did, so formatted
// constructs can be joined without one turning into the arguments of a
// call ending the previous one.
func (p Printer) Format(n Node) string {
	switch n := n.(type) {
	case *Prototype:
		return "extern " + n.String()
	case *Function:
		if n.Prototype.IsAnonymous() {
			return p.expr(n.Body)
		}
		return fmt.Sprintf("def %s %s", n.Prototype, p.expr(n.Body))
	case Expression:
		return p.expr(n)
	default:
		return n.String()
	}
}

func (p Printer) expr(e Expression) string {
	switch e := e.(type) {
	case *BinaryOp:
		prec, ok := p.precedence(e.Operator)
		if !ok {
			return e.String()
		}
		return fmt.Sprintf("%s %s %s",
			p.operand(e.Left, prec, false),
			e.Operator,
			p.operand(e.Right, prec, true),
		)
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = p.expr(a)
		}
		return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
	default:
		return e.String()
	}
}

// operand prints an operand of a binary operation with precedence parent.
// Operations bind to the left, so a right operand of equal precedence needs
// parentheses and a left one does not.
func (p Printer) operand(e Expression, parent int, right bool) string {
	s := p.expr(e)

	b, ok := e.(*BinaryOp)
	if !ok {
		return s
	}

	prec, ok := p.precedence(b.Operator)
	if !ok {
		return s
	}

	if prec < parent || (right && prec == parent) {
		return "(" + s + ")"
	}
	return s
}

func (p Printer) precedence(op string) (int, bool) {
	if p.Precedence == nil {
		return 0, false
	}
	return p.Precedence(op)
}
