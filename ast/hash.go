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
	"reflect"

	"github.com/mitchellh/hashstructure"
)

type hashable struct {
	Type string
	Node Node
}

// Hash returns a structural hash of the tree rooted at n. Two trees built
// from the same source, or from a source and its canonical form, hash to
// the same value.
func Hash(n Node) (uint64, error) {
	return hashstructure.Hash(hashable{Type: fmt.Sprintf("%T", n), Node: n}, nil)
}

// hashNode is replaced in tests to force collisions.
var hashNode = Hash

// Equal reports whether a and b are structurally identical. Hashes are
// compared first and a match is confirmed node by node, so colliding
// digests never make different trees equal.
func Equal(a, b Node) bool {
	ha, err := hashNode(a)
	if err != nil {
		return false
	}
	hb, err := hashNode(b)
	if err != nil {
		return false
	}
	if ha != hb {
		return false
	}
	return equalTree(a, b)
}

func equalTree(a, b Node) bool {
	if !equalNode(a, b) {
		return false
	}

	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !equalTree(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// equalNode compares the values held by a and b, ignoring children.
func equalNode(a, b Node) bool {
	switch a := a.(type) {
	case *Number:
		b, ok := b.(*Number)
		return ok && a.Value == b.Value
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.Name == b.Name
	case *BinaryOp:
		b, ok := b.(*BinaryOp)
		return ok && a.Operator == b.Operator
	case *Call:
		b, ok := b.(*Call)
		return ok && a.Callee == b.Callee
	case *Prototype:
		b, ok := b.(*Prototype)
		if !ok || a.Name != b.Name || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return true
	case *Function:
		_, ok := b.(*Function)
		return ok
	default:
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
}
