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

// Visitor is called by Walk for every node of a tree.
type Visitor interface {
	// Visit is called with each node, and with nil once all the children
	// of a node were walked. Returning nil skips the children of node.
	Visit(node Node) Visitor
}

// Walk visits node and then, unless v.Visit(node) returns nil, each of its
// children in order with the returned visitor. node must not be nil.
func Walk(v Visitor, node Node) {
	w := v.Visit(node)
	if w == nil {
		return
	}

	for _, child := range node.Children() {
		Walk(w, child)
	}
	w.Visit(nil)
}

// funcVisitor adapts a function to the Visitor interface.
type funcVisitor func(Node) bool

func (f funcVisitor) Visit(node Node) Visitor {
	if !f(node) {
		return nil
	}
	return f
}

// Inspect walks the tree calling f with every node, and with nil after the
// children of a node. Children of a node are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	Walk(funcVisitor(f), node)
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	var n int
	Inspect(node, func(node Node) bool {
		if node != nil {
			n++
		}
		return true
	})
	return n
}
