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
package lut

// Template is a reusable, library-level LUT schema: an ordered list of
// variable roles (1..3 of them) and optional default index vectors. Table
// instances reference a template by name; the reference is resolved after
// the whole library parses, so forward references work (spec.md §4.5).
type Template struct {
	Name           string
	GroupName      string // "lu_table_template" or "power_lu_table_template"
	Variables      []Variable
	VariableText   []string // raw variable_N text, preserved for Variable == Other
	DefaultIndices [][]float64
}

// Id implements collection.Identifiable so Templates can live in a
// collection.GroupSet keyed by name.
func (t *Template) Id() string { return t.Name }

// Registry resolves template names to Templates, the way the Library's
// post-build pointers work for wire-loads and operating conditions
// (spec.md §3.2).
type Registry struct {
	byName map[string]*Template
	order  []string
}

// NewRegistry constructs an empty template registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Template)}
}

// Add registers a template, keyed by name. A duplicate name keeps the first
// registration (the IdCollision policy), returning false so the caller can
// raise a diagnostic.
func (r *Registry) Add(t *Template) bool {
	if _, ok := r.byName[t.Name]; ok {
		return false
	}

	r.byName[t.Name] = t
	r.order = append(r.order, t.Name)

	return true
}

// Resolve looks up a template by name.
func (r *Registry) Resolve(name string) (*Template, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns every registered template in registration order, for the
// canonical formatter to re-emit the library's template declarations.
func (r *Registry) All() []*Template {
	out := make([]*Template, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}

	return out
}
