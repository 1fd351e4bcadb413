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

// Prototype is the signature of a function: its name and the ordered names
// of its parameters. Duplicate parameter names are not rejected here.
type Prototype struct {
	Name   string
	Params []string
}

var _ Node = (*Prototype)(nil)

// NewPrototype creates a new prototype.
func NewPrototype(name string, params ...string) *Prototype {
	return &Prototype{Name: name, Params: params}
}

// IsAnonymous reports whether this is the prototype of a wrapped top-level
// expression.
func (p *Prototype) IsAnonymous() bool {
	return p.Name == AnonymousFunctionName && len(p.Params) == 0
}

func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, " "))
}

func (p *Prototype) DebugString() string {
	return fmt.Sprintf("Prototype %s(%s)", p.Name, strings.Join(p.Params, ", "))
}

func (p *Prototype) Children() []Node { return nil }

func (p *Prototype) WithChildren(children ...Node) (Node, error) {
	if len(children) != 0 {
		return nil, ErrInvalidChildrenNumber.New(p, len(children), 0)
	}
	return p, nil
}

// Function is a function definition: a prototype and a body.
type Function struct {
	Prototype *Prototype
	Body      Expression
}

var _ Node = (*Function)(nil)

// NewFunction creates a new function definition.
func NewFunction(proto *Prototype, body Expression) *Function {
	return &Function{Prototype: proto, Body: body}
}

// NewAnonymousFunction wraps a top-level expression into a function with no
// parameters so it shares the representation of named functions.
func NewAnonymousFunction(body Expression) *Function {
	return NewFunction(NewPrototype(AnonymousFunctionName), body)
}

func (f *Function) String() string {
	if f.Prototype.IsAnonymous() {
		return f.Body.String()
	}
	return fmt.Sprintf("def %s %s", f.Prototype, f.Body)
}

func (f *Function) DebugString() string {
	p := NewTreePrinter()
	_ = p.WriteNode("Function")
	_ = p.WriteChildren(f.Prototype.DebugString(), f.Body.DebugString())
	return p.String()
}

func (f *Function) Children() []Node {
	return []Node{f.Prototype, f.Body}
}

func (f *Function) WithChildren(children ...Node) (Node, error) {
	if len(children) != 2 {
		return nil, ErrInvalidChildrenNumber.New(f, len(children), 2)
	}

	proto, ok := children[0].(*Prototype)
	if !ok {
		return nil, ErrInvalidChildType.New(f, children[0], "*ast.Prototype")
	}
	body, err := asExpression(f, children[1])
	if err != nil {
		return nil, err
	}

	return NewFunction(proto, body), nil
}
