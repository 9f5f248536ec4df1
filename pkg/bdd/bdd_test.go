// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAndOrXorAgreeWithTruthTable(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	a, _ := table.Var("A")
	b, _ := table.Var("B")

	and := table.And(a, b)
	or := table.Or(a, b)
	xor := table.Xor(a, b)

	for _, assignment := range [][]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		wantAnd := assignment[0] && assignment[1]
		wantOr := assignment[0] || assignment[1]
		wantXor := assignment[0] != assignment[1]

		require.Equal(t, wantAnd, table.Eval(and, assignment))
		require.Equal(t, wantOr, table.Eval(or, assignment))
		require.Equal(t, wantXor, table.Eval(xor, assignment))
	}
}

func TestNotNegates(t *testing.T) {
	table := NewTable([]string{"A"})
	a, _ := table.Var("A")
	notA := table.Not(a)

	require.True(t, table.Eval(notA, []bool{false}))
	require.False(t, table.Eval(notA, []bool{true}))
}

// TestHashConsingGivesIdenticalRefs covers spec.md §3.1/§4.4's "BDD is the
// identity": two structurally identical formulas built independently
// (each re-deriving its Var refs from scratch) collapse to the same Ref
// under the same table.
func TestHashConsingGivesIdenticalRefs(t *testing.T) {
	table := NewTable([]string{"A", "B"})

	firstA, _ := table.Var("A")
	firstB, _ := table.Var("B")
	first := table.And(firstA, firstB)

	secondA, _ := table.Var("A")
	secondB, _ := table.Var("B")
	second := table.And(secondA, secondB)

	require.Equal(t, first, second)
}

func TestConstFoldsImmediately(t *testing.T) {
	table := NewTable([]string{"A"})
	require.Equal(t, True, table.Const(true))
	require.Equal(t, False, table.Const(false))
}

func TestVarUnknownNameFails(t *testing.T) {
	table := NewTable([]string{"A"})
	_, ok := table.Var("B")
	require.False(t, ok)
}
