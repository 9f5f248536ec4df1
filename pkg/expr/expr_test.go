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
package expr

import (
	"testing"

	"github.com/afele/liberty/pkg/bdd"
	"github.com/stretchr/testify/require"
)

// TestPrecedenceMatchesParenthesized covers spec.md §8 scenario S2: "A+B*C"
// must parse to the same function as the fully-parenthesized "A+(B*C)",
// and re-formatting the unparenthesized form must not introduce redundant
// parens.
func TestPrecedenceMatchesParenthesized(t *testing.T) {
	table := bdd.NewTable([]string{"A", "B", "C"})

	implicit, err := Parse("A+B*C", table)
	require.NoError(t, err)

	explicit, err := Parse("A+(B*C)", table)
	require.NoError(t, err)

	require.True(t, implicit.Equal(explicit))
	require.Equal(t, "A+B*C", implicit.String())
}

func TestNotPrintsAsPrefix(t *testing.T) {
	table := bdd.NewTable([]string{"A"})

	e, err := Parse("A'", table)
	require.NoError(t, err)
	require.Equal(t, "!A", e.String())
}

func TestUnknownVariableIsReferenceError(t *testing.T) {
	table := bdd.NewTable([]string{"A"})

	_, err := Parse("A+B", table)
	require.Error(t, err)
}

func TestEqualityIsTableScoped(t *testing.T) {
	tableA := bdd.NewTable([]string{"A"})
	tableB := bdd.NewTable([]string{"A"})

	a, err := Parse("A", tableA)
	require.NoError(t, err)

	b, err := Parse("A", tableB)
	require.NoError(t, err)

	require.False(t, a.Equal(b))
}
