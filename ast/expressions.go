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
	"strconv"
	"strings"
)

// Number is a numeric literal.
type Number struct {
	Value float64
}

var _ Expression = (*Number)(nil)

// NewNumber creates a new numeric literal.
func NewNumber(v float64) *Number {
	return &Number{Value: v}
}

func (n *Number) expression() {}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (n *Number) DebugString() string {
	return fmt.Sprintf("Number(%s)", n)
}

func (n *Number) Children() []Node { return nil }

func (n *Number) WithChildren(children ...Node) (Node, error) {
	if len(children) != 0 {
		return nil, ErrInvalidChildrenNumber.New(n, len(children), 0)
	}
	return n, nil
}

// Variable is a reference to a named value.
type Variable struct {
	Name string
}

var _ Expression = (*Variable)(nil)

// NewVariable creates a new variable reference.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (v *Variable) expression() {}

func (v *Variable) String() string { return v.Name }

func (v *Variable) DebugString() string {
	return fmt.Sprintf("Variable(%s)", v.Name)
}

func (v *Variable) Children() []Node { return nil }

func (v *Variable) WithChildren(children ...Node) (Node, error) {
	if len(children) != 0 {
		return nil, ErrInvalidChildrenNumber.New(v, len(children), 0)
	}
	return v, nil
}

// BinaryOp is the application of a binary operator to two operands.
type BinaryOp struct {
	Operator string
	Left     Expression
	Right    Expression
}

var _ Expression = (*BinaryOp)(nil)

// NewBinaryOp creates a new binary operation.
func NewBinaryOp(op string, left, right Expression) *BinaryOp {
	return &BinaryOp{Operator: op, Left: left, Right: right}
}

func (b *BinaryOp) expression() {}

// String always parenthesizes the operation, so the output reparses to the
// same tree whatever the precedence of the operator.
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

func (b *BinaryOp) DebugString() string {
	p := NewTreePrinter()
	_ = p.WriteNode("BinaryOp(%s)", b.Operator)
	_ = p.WriteChildren(b.Left.DebugString(), b.Right.DebugString())
	return p.String()
}

func (b *BinaryOp) Children() []Node {
	return []Node{b.Left, b.Right}
}

func (b *BinaryOp) WithChildren(children ...Node) (Node, error) {
	if len(children) != 2 {
		return nil, ErrInvalidChildrenNumber.New(b, len(children), 2)
	}

	left, err := asExpression(b, children[0])
	if err != nil {
		return nil, err
	}
	right, err := asExpression(b, children[1])
	if err != nil {
		return nil, err
	}

	return NewBinaryOp(b.Operator, left, right), nil
}

// Call is a call of a function by name.
type Call struct {
	Callee string
	Args   []Expression
}

var _ Expression = (*Call)(nil)

// NewCall creates a new call expression.
func NewCall(callee string, args ...Expression) *Call {
	return &Call{Callee: callee, Args: args}
}

func (c *Call) expression() {}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

func (c *Call) DebugString() string {
	p := NewTreePrinter()
	_ = p.WriteNode("Call(%s)", c.Callee)
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.DebugString()
	}
	_ = p.WriteChildren(args...)
	return p.String()
}

func (c *Call) Children() []Node {
	children := make([]Node, len(c.Args))
	for i, a := range c.Args {
		children[i] = a
	}
	return children
}

func (c *Call) WithChildren(children ...Node) (Node, error) {
	if len(children) != len(c.Args) {
		return nil, ErrInvalidChildrenNumber.New(c, len(children), len(c.Args))
	}

	var args []Expression
	if len(children) > 0 {
		args = make([]Expression, len(children))
	}
	for i, child := range children {
		e, err := asExpression(c, child)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}

	return NewCall(c.Callee, args...), nil
}
