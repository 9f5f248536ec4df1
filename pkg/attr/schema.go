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

// Package attr implements the attribute dispatcher of spec.md §4.3: each
// group type's static name -> (kind, slot) schema, plus the Bag fallback
// that unregistered or mistyped attributes fall into. Per spec.md §9 the
// actual per-attribute parse/format functions are compile-time match arms
// living in pkg/model's per-group parsers, not a runtime registry; Schema
// here documents each group's shape and lets a per-group parser ask Has
// before falling back to the Bag. pkg/format does not read it.
package attr

// Kind classifies which of the three Liberty attribute shapes a schema
// entry matches.
type Kind uint8

const (
	// Simple is `key : value ;`.
	Simple Kind = iota
	// Complex is `key ( v1, v2, … ) ;`.
	Complex
	// Group is `key ( title, … ) { … }`.
	Group
)

// Slot classifies how repeated writes to the same field combine.
type Slot uint8

const (
	// SlotDefault: last writer wins.
	SlotDefault Slot = iota
	// SlotOption: Some/None, set at most meaningfully once.
	SlotOption
	// SlotVec: appends in source order.
	SlotVec
	// SlotSet: appends and dedups by id, first wins.
	SlotSet
)

// Rule is one schema entry.
type Rule struct {
	Name string
	Kind Kind
	Slot Slot
}

// Schema is a group type's static attribute table, in declaration order.
// The canonical formatter (pkg/format) does not walk it: each of its
// writers spells out its own emission order.
type Schema struct {
	Rules []Rule
}

// Names returns the schema's attribute names of the given kind, in
// declaration order.
func (s Schema) Names(kind Kind) []string {
	var out []string

	for _, r := range s.Rules {
		if r.Kind == kind {
			out = append(out, r.Name)
		}
	}

	return out
}

// Has reports whether name is a registered attribute of this schema,
// regardless of kind. Used by per-group parsers to decide between dispatch
// and Bag fallback without duplicating the name list.
func (s Schema) Has(name string) bool {
	for _, r := range s.Rules {
		if r.Name == name {
			return true
		}
	}

	return false
}
