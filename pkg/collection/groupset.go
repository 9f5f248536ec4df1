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
	"cmp"
	"sort"
)

// Identifiable is implemented by every entity that can live in a GroupSet:
// cells, pins, timings, table templates, and so on all carry some notion of
// identity (a name, or a composite tuple) used for id-based lookup and
// duplicate detection.
type Identifiable[I comparable] interface {
	Id() I
}

// GroupSet is the cross-cutting container named in the spec: it preserves
// insertion order (for "vec" slot emission) while also offering id-based
// lookup and ascending-by-id iteration (for "set" slot emission and
// duplicate detection). It generalizes the teacher's AnySortedSet, which
// keeps a single sorted order; here insertion order and id order are kept
// simultaneously since the two attribute-dispatch slot kinds need both.
type GroupSet[T Identifiable[I], I cmp.Ordered] struct {
	items []T
	index map[I]int
}

// NewGroupSet constructs an empty GroupSet.
func NewGroupSet[T Identifiable[I], I cmp.Ordered]() *GroupSet[T, I] {
	return &GroupSet[T, I]{index: make(map[I]int)}
}

// Len returns the number of elements.
func (g *GroupSet[T, I]) Len() int { return len(g.items) }

// Get looks up an element by id.
func (g *GroupSet[T, I]) Get(id I) (T, bool) {
	var empty T

	pos, ok := g.index[id]
	if !ok {
		return empty, false
	}

	return g.items[pos], true
}

// Has reports whether an id is already present.
func (g *GroupSet[T, I]) Has(id I) bool {
	_, ok := g.index[id]
	return ok
}

// Insert appends an item in insertion order. If its id already exists, the
// existing entry is kept (first wins, per the IdCollision policy) and false
// is returned so the caller can raise a diagnostic.
func (g *GroupSet[T, I]) Insert(item T) bool {
	id := item.Id()
	if _, ok := g.index[id]; ok {
		return false
	}

	g.index[id] = len(g.items)
	g.items = append(g.items, item)

	return true
}

// Replace overwrites an existing entry in place, preserving its position
// (used by "default"-like overwrite policies layered on top of a set, such
// as a documented "last writer wins" override).
func (g *GroupSet[T, I]) Replace(item T) {
	id := item.Id()
	if pos, ok := g.index[id]; ok {
		g.items[pos] = item
		return
	}

	g.Insert(item)
}

// InOrder returns elements in insertion order, for "vec" slot emission.
func (g *GroupSet[T, I]) InOrder() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)

	return out
}

// ByID returns elements sorted ascending by id, for "set" slot emission.
func (g *GroupSet[T, I]) ByID() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Id() < out[j].Id()
	})

	return out
}
