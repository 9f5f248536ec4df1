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
	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/bdd"
	"github.com/afele/liberty/pkg/collection"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// CellCore is the group of children shared, field for field, by both Cell
// and its test_cell shadow (spec.md's original_source note: "a Cell may
// carry a nested test_cell group... structurally identical to a Cell minus
// nested TestCell"). It is embedded rather than duplicated so the two
// before_build/after_build walks share one implementation.
type CellCore struct {
	Pins                *collection.GroupSet[*Pin, string]
	Buses               *collection.GroupSet[*Bus, string]
	Bundles             *collection.GroupSet[*Bundle, string]
	FFs                 []*FF
	Latches             []*Latch
	LeakagePowers       []*LeakagePower
	StateTable          *StateTable
	IntrinsicParasitics []*IntrinsicParasitic
	DynamicCurrents     []*DynamicCurrent

	Attributes *attr.Bag
}

func newCellCore() CellCore {
	return CellCore{
		Pins:    collection.NewGroupSet[*Pin, string](),
		Buses:   collection.NewGroupSet[*Bus, string](),
		Bundles: collection.NewGroupSet[*Bundle, string](),

		Attributes: attr.NewBag(),
	}
}

// Cell is a Library-scoped group (spec.md §3.1): it owns every signal and
// power/ground declaration beneath it and carries the two BDD variable
// sets (signal, power/ground) established during build() before any
// boolean-expression field nested beneath it is resolved.
type Cell struct {
	Name             string
	Area             value.Float
	CellFootprint    string
	CellLeakagePower value.Float

	PgPins *collection.GroupSet[*PgPin, string]

	CellCore

	TestCell *TestCell

	SignalVars *bdd.Table
	PowerVars  *bdd.Table
}

// Id implements collection.Identifiable.
func (c *Cell) Id() string { return c.Name }

// TestCell is a Cell's scan-test shadow: the same CellCore shape, minus a
// further nested test_cell (original_source's `cell::mod.rs` field of the
// same name).
type TestCell struct {
	CellCore

	SignalVars *bdd.Table
	PowerVars  *bdd.Table
}

func buildCell(g *synt.Group, scope *BuildScope) *Cell {
	signalNames := cellSignalNames(g)
	powerNames := pgPinNames(g)
	cellScope := newCellScope(signalNames, powerNames)

	c := &Cell{
		Name:       titleString(g),
		PgPins:     collection.NewGroupSet[*PgPin, string](),
		CellCore:   newCellCore(),
		SignalVars: cellScope.Signal,
		PowerVars:  cellScope.Power,
	}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			buildCellSimple(&c.CellCore, n, scope, cellSimpleSlot(c, n.Name))
		case *synt.Group:
			if n.Name == "pg_pin" {
				p := buildPgPin(n, scope)
				if !c.PgPins.Insert(p) {
					scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate pg_pin "+quote(p.Name))
				}

				continue
			}

			if n.Name == "test_cell" {
				c.TestCell = buildTestCell(n, scope)
				continue
			}

			buildCellGroup(&c.CellCore, n, cellScope, scope)
		default:
			attr.StashUnknown(c.Attributes, node, scope.Defines, "cell")
		}
	}

	return c
}

// cellSimpleSlot resolves a cell-level simple attribute name to its
// destination, since the three cell-only scalars (area, cell_footprint,
// cell_leakage_power) live outside CellCore.
func cellSimpleSlot(c *Cell, name string) func(*synt.Simple, *diag.Builder) bool {
	switch name {
	case "area":
		return func(s *synt.Simple, diags *diag.Builder) bool {
			c.Area = parseFloatAttr(s, diags)
			return true
		}
	case "cell_footprint":
		return func(s *synt.Simple, _ *diag.Builder) bool {
			c.CellFootprint = s.Value.Text
			return true
		}
	case "cell_leakage_power":
		return func(s *synt.Simple, diags *diag.Builder) bool {
			c.CellLeakagePower = parseFloatAttr(s, diags)
			return true
		}
	default:
		return nil
	}
}

func buildTestCell(g *synt.Group, scope *BuildScope) *TestCell {
	signalNames := cellSignalNames(g)
	powerNames := pgPinNames(g)
	cellScope := newCellScope(signalNames, powerNames)

	tc := &TestCell{
		CellCore:   newCellCore(),
		SignalVars: cellScope.Signal,
		PowerVars:  cellScope.Power,
	}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			buildCellSimple(&tc.CellCore, n, scope, nil)
		case *synt.Group:
			if n.Name == "pg_pin" {
				// pg_pins inside test_cell only feed its own power scope;
				// a shadow Cell has no separate PgPins collection to
				// populate, so they're retained via the generic bag.
				attr.StashUnknown(tc.Attributes, n, scope.Defines, "test_cell")
				continue
			}

			buildCellGroup(&tc.CellCore, n, cellScope, scope)
		default:
			attr.StashUnknown(tc.Attributes, node, scope.Defines, "test_cell")
		}
	}

	return tc
}

// buildCellSimple dispatches a cell- or test_cell-level simple attribute.
// extra, when non-nil, claims attributes unique to the full Cell (area,
// cell_footprint, cell_leakage_power) before falling into the shared Bag.
func buildCellSimple(core *CellCore, n *synt.Simple, scope *BuildScope, extra func(*synt.Simple, *diag.Builder) bool) {
	if extra != nil {
		if extra(n, scope.Diags) {
			return
		}
	}

	attr.StashUnknown(core.Attributes, n, scope.Defines, "cell")
}

// buildCellGroup dispatches a cell- or test_cell-level nested group that
// CellCore owns (pin/bus/bundle/ff/latch/leakage_power/statetable/
// intrinsic_parasitic/dynamic_current), stashing anything else.
func buildCellGroup(core *CellCore, n *synt.Group, cellScope *CellScope, scope *BuildScope) {
	switch n.Name {
	case "pin":
		p := buildPin(n, cellScope, scope)
		if !core.Pins.Insert(p) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate pin "+quote(p.Name))
		}
	case "bus":
		b := buildBus(n, cellScope, scope)
		if !core.Buses.Insert(b) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate bus "+quote(b.Name))
		}
	case "bundle":
		bd := buildBundle(n, scope)
		if !core.Bundles.Insert(bd) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate bundle "+quote(bd.Name))
		}
	case "ff":
		core.FFs = append(core.FFs, buildFF(n, cellScope, scope))
	case "latch":
		core.Latches = append(core.Latches, buildLatch(n, cellScope, scope))
	case "leakage_power":
		core.LeakagePowers = append(core.LeakagePowers, buildLeakagePower(n, scope))
	case "statetable":
		core.StateTable = buildStateTable(n, scope)
	case "intrinsic_parasitic":
		core.IntrinsicParasitics = append(core.IntrinsicParasitics, buildIntrinsicParasitic(n, scope))
	case "dynamic_current":
		core.DynamicCurrents = append(core.DynamicCurrents, buildDynamicCurrent(n, scope))
	default:
		attr.StashUnknown(core.Attributes, n, scope.Defines, "cell")
	}
}

// cellSignalNames gathers the union of direct pin names, bus-nested pin
// names, and ff/latch state-variable names beneath a cell (or test_cell)
// group, per spec.md §3.1's Cell invariant: "the logic-node set is the
// union of pin names and ff/latch variable names." This runs before any
// child is actually built, so forward-referencing functions resolve.
func cellSignalNames(g *synt.Group) map[string]bool {
	names := map[string]bool{}

	for _, sub := range g.Body {
		gr, ok := sub.(*synt.Group)
		if !ok {
			continue
		}

		switch gr.Name {
		case "pin":
			if n := titleString(gr); n != "" {
				names[n] = true
			}
		case "bus":
			for _, busPin := range groupsNamed(gr, "pin") {
				if n := titleString(busPin); n != "" {
					names[n] = true
				}
			}
		case "ff", "latch":
			for _, t := range gr.TitleStrings() {
				if t != "" {
					names[t] = true
				}
			}
		}
	}

	return names
}
