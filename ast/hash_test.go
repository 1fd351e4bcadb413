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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	require := require.New(t)

	build := func() Node {
		return NewFunction(
			NewPrototype("f", "a", "b"),
			NewBinaryOp("+", NewVariable("a"), NewCall("g", NewVariable("b"), NewNumber(1))),
		)
	}

	h1, err := Hash(build())
	require.NoError(err)
	h2, err := Hash(build())
	require.NoError(err)
	require.Equal(h1, h2)

	require.True(Equal(build(), build()))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b Node
	}{
		{"operator", NewBinaryOp("+", NewNumber(1), NewNumber(2)), NewBinaryOp("-", NewNumber(1), NewNumber(2))},
		{"operand order", NewBinaryOp("+", NewNumber(1), NewNumber(2)), NewBinaryOp("+", NewNumber(2), NewNumber(1))},
		{"grouping",
			NewBinaryOp("-", NewBinaryOp("-", NewVariable("a"), NewVariable("b")), NewVariable("c")),
			NewBinaryOp("-", NewVariable("a"), NewBinaryOp("-", NewVariable("b"), NewVariable("c"))),
		},
		{"argument order", NewCall("f", NewVariable("a"), NewVariable("b")), NewCall("f", NewVariable("b"), NewVariable("a"))},
		{"parameter order", NewPrototype("f", "a", "b"), NewPrototype("f", "b", "a")},
		{"node type", NewVariable("f"), NewPrototype("f")},
		{"number", NewNumber(1), NewNumber(1.5)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, Equal(tt.a, tt.b))
			require.True(t, Equal(tt.a, tt.a))
		})
	}
}

func TestEqualHashCollision(t *testing.T) {
	require := require.New(t)

	defer func(h func(Node) (uint64, error)) { hashNode = h }(hashNode)
	hashNode = func(Node) (uint64, error) { return 42, nil }

	require.False(Equal(NewNumber(1), NewNumber(2)))
	require.False(Equal(NewVariable("a"), NewNumber(1)))
	require.False(Equal(
		NewCall("f", NewVariable("a")),
		NewCall("f", NewVariable("a"), NewVariable("b")),
	))
	require.False(Equal(NewPrototype("f", "a"), NewPrototype("f", "b")))
	require.True(Equal(
		NewBinaryOp("+", NewVariable("a"), NewNumber(1)),
		NewBinaryOp("+", NewVariable("a"), NewNumber(1)),
	))
}
