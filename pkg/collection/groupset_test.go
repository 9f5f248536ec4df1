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
package collection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type namedItem struct {
	id string
}

func (n namedItem) Id() string { return n.id }

// TestInsertKeepsFirstOnIdCollision covers spec.md §8 property 6: no two
// elements with the same id coexist, and the first registration wins.
func TestInsertKeepsFirstOnIdCollision(t *testing.T) {
	g := NewGroupSet[namedItem, string]()

	require.True(t, g.Insert(namedItem{"a"}))
	require.False(t, g.Insert(namedItem{"a"}))
	require.Equal(t, 1, g.Len())

	got, ok := g.Get("a")
	require.True(t, ok)
	require.Equal(t, "a", got.id)
}

// TestByIDOrdersAscendingRegardlessOfInsertOrder covers spec.md §8
// property 6's "ordering at emit is by id ascending."
func TestByIDOrdersAscendingRegardlessOfInsertOrder(t *testing.T) {
	g := NewGroupSet[namedItem, string]()
	g.Insert(namedItem{"c"})
	g.Insert(namedItem{"a"})
	g.Insert(namedItem{"b"})

	byID := g.ByID()
	require.Len(t, byID, 3)
	require.Equal(t, []string{"a", "b", "c"}, idsOf(byID))

	require.Equal(t, []string{"c", "a", "b"}, idsOf(g.InOrder()))
}

func TestReplacePreservesPosition(t *testing.T) {
	g := NewGroupSet[namedItem, string]()
	g.Insert(namedItem{"a"})
	g.Insert(namedItem{"b"})

	g.Replace(namedItem{"a"})

	require.Equal(t, []string{"a", "b"}, idsOf(g.InOrder()))
}

func idsOf(items []namedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}

	return out
}
