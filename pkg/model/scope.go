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
package model

import (
	"sort"

	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/bdd"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/lut"
)

// BuildScope is the single mutable resolver context threaded through a
// library's build() pass (spec.md §3.3, §5: "the only shared mutable
// object during parse"). It owns the library-level post-build pointer
// tables (templates, wire-loads, operating conditions, bus types) that
// cross-references are resolved against after the whole library parses, so
// forward references work (spec.md §4.5).
type BuildScope struct {
	Cfg       ParseConfig
	Diags     *diag.Builder
	Defines   *attr.Defines
	Templates *lut.Registry

	wireLoads map[string]*WireLoad
	opConds   map[string]*OperatingConditions
	busTypes  map[string]*BusType
}

// NewBuildScope constructs an empty library-level resolver scope.
func NewBuildScope(cfg ParseConfig, diags *diag.Builder) *BuildScope {
	return &BuildScope{
		Cfg:       cfg,
		Diags:     diags,
		Defines:   attr.NewDefines(),
		Templates: lut.NewRegistry(),
		wireLoads: make(map[string]*WireLoad),
		opConds:   make(map[string]*OperatingConditions),
		busTypes:  make(map[string]*BusType),
	}
}

// AddWireLoad registers a wire_load model, first wins on name collision.
func (s *BuildScope) AddWireLoad(wl *WireLoad, span diag.Span) {
	if _, ok := s.wireLoads[wl.Name]; ok {
		s.Diags.Report(span, diag.IdCollision, "duplicate wire_load "+quote(wl.Name))
		return
	}

	s.wireLoads[wl.Name] = wl
}

// AddOperatingConditions registers an operating_conditions group.
func (s *BuildScope) AddOperatingConditions(oc *OperatingConditions, span diag.Span) {
	if _, ok := s.opConds[oc.Name]; ok {
		s.Diags.Report(span, diag.IdCollision, "duplicate operating_conditions "+quote(oc.Name))
		return
	}

	s.opConds[oc.Name] = oc
}

// AddBusType registers a library `type` table entry.
func (s *BuildScope) AddBusType(bt *BusType, span diag.Span) {
	if _, ok := s.busTypes[bt.Name]; ok {
		s.Diags.Report(span, diag.IdCollision, "duplicate type "+quote(bt.Name))
		return
	}

	s.busTypes[bt.Name] = bt
}

// ResolveWireLoad looks up a wire_load model by name, reporting a
// diag.Reference diagnostic and returning (nil, false) if it is absent
// (spec.md §3.2: "recorded as unresolved without failing the overall
// parse").
func (s *BuildScope) ResolveWireLoad(name string, span diag.Span) (*WireLoad, bool) {
	wl, ok := s.wireLoads[name]
	if !ok {
		s.Diags.Report(span, diag.Reference, "unresolved wire_load reference "+quote(name))
	}

	return wl, ok
}

// ResolveOperatingConditions looks up an operating_conditions group by name.
func (s *BuildScope) ResolveOperatingConditions(name string, span diag.Span) (*OperatingConditions, bool) {
	oc, ok := s.opConds[name]
	if !ok {
		s.Diags.Report(span, diag.Reference, "unresolved operating_conditions reference "+quote(name))
	}

	return oc, ok
}

// ResolveBusType looks up a library `type` table entry by name.
func (s *BuildScope) ResolveBusType(name string, span diag.Span) (*BusType, bool) {
	bt, ok := s.busTypes[name]
	if !ok {
		s.Diags.Report(span, diag.Reference, "unresolved bus_type reference "+quote(name))
	}

	return bt, ok
}

func quote(s string) string { return "\"" + s + "\"" }

// CellScope is the per-cell BDD variable-set state populated during a
// cell's before_build step (its pin and ff/latch variable names) and
// consumed by every boolean-expression field nested beneath it (pin
// functions, timing `when` conditions), per spec.md §3.1 and §4.7.
type CellScope struct {
	Signal *bdd.Table // over pin names + ff/latch state variables
	Power  *bdd.Table // over pg_pin names
}

// newCellScope builds both BDD tables from the given name sets, sorting
// each lexicographically first per spec.md §4.4 ("a BDD is built with a
// variable order taken from the lexicographic sort of the node name set").
func newCellScope(signalNames, powerNames map[string]bool) *CellScope {
	return &CellScope{
		Signal: bdd.NewTable(sortedKeys(signalNames)),
		Power:  bdd.NewTable(sortedKeys(powerNames)),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
