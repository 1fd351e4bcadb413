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

const expectedTree = `Call(f)
 ├─ BinaryOp(+)
 │   ├─ Number(1)
 │   └─ Number(2)
 └─ BinaryOp(*)
     ├─ Variable(a)
     └─ Variable(b)
`

func TestTreePrinter(t *testing.T) {
	require := require.New(t)

	p := NewTreePrinter()
	require.NoError(p.WriteNode("Call(%s)", "f"))

	p2 := NewTreePrinter()
	require.NoError(p2.WriteNode("BinaryOp(+)"))
	require.NoError(p2.WriteChildren(
		"Number(1)",
		"Number(2)",
	))

	p3 := NewTreePrinter()
	require.NoError(p3.WriteNode("BinaryOp(*)"))
	require.NoError(p3.WriteChildren(
		"Variable(a)",
		"Variable(b)",
	))

	require.NoError(p.WriteChildren(
		p2.String(),
		p3.String(),
	))

	require.Equal(expectedTree, p.String())
}

func TestTreePrinterErrors(t *testing.T) {
	require := require.New(t)

	p := NewTreePrinter()
	require.Equal(ErrNodeNotWritten, p.WriteChildren("a"))
	require.NoError(p.WriteNode("root"))
	require.Equal(ErrNodeAlreadyWritten, p.WriteNode("root"))
	require.NoError(p.WriteChildren("a"))
	require.Equal(ErrChildrenAlreadyWritten, p.WriteChildren("b"))
}
