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

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrInvalidChildType is returned when the WithChildren method of a node
	// is called with a child of the wrong type.
	ErrInvalidChildType = errors.NewKind("%T: invalid child type, got %T, expected %s")
)

// AnonymousFunctionName is the name given to the function wrapping a bare
// top-level expression.
const AnonymousFunctionName = "__anon_expr"

// Node is a node of the syntax tree. Nodes are immutable once built and
// every composite node exclusively owns its children.
type Node interface {
	fmt.Stringer
	// DebugString returns a tree representation of the node.
	DebugString() string
	// Children returns the children of the node.
	Children() []Node
	// WithChildren returns a copy of the node with its children replaced.
	WithChildren(children ...Node) (Node, error)
}

// Expression is a node that produces a value: a number, a variable, a binary
// operation or a call.
type Expression interface {
	Node
	expression()
}

// Format returns the canonical source form of a top-level node with every
// binary operation fully parenthesized. Use a Printer with the operator
// precedences to print several constructs that are parsed back together.
func Format(n Node) string {
	return Printer{}.Format(n)
}

func asExpression(parent Node, child Node) (Expression, error) {
	e, ok := child.(Expression)
	if !ok {
		return nil, ErrInvalidChildType.New(parent, child, "ast.Expression")
	}
	return e, nil
}
