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
	"github.com/afele/liberty/pkg/collection"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/lut"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
	log "github.com/sirupsen/logrus"
)

// Library is the top-level group (spec.md §3.1). It owns every
// unit/operating-condition/wire-load/template/voltage-map declaration that
// cells resolve post-build pointers against, plus the cell set itself.
type Library struct {
	Name string

	Units       Units
	VoltageUnit value.VoltageUnit

	DelayModel      string
	DefaultWireLoad string

	NomProcess     value.Float
	NomVoltage     value.Float
	NomTemperature value.Float

	TypeTable  *collection.GroupSet[*BusType, string]
	Templates  *lut.Registry
	WireLoads  *collection.GroupSet[*WireLoad, string]
	OpConds    *collection.GroupSet[*OperatingConditions, string]
	VoltageMap *VoltageMap

	Cells *collection.GroupSet[*Cell, string]

	Attributes *attr.Bag
}

// Id implements collection.Identifiable, so a Library can itself live in a
// GroupSet if a caller models multiple libraries together.
func (l *Library) Id() string { return l.Name }

// Build runs the bottom-up build() pass of spec.md §3.3 over a raw group
// tree produced by pkg/synt: library-level post-build pointer tables
// (templates, wire-loads, operating conditions, bus types) are registered
// in a first pass so forward references resolve, then cells are built
// against that fully-populated BuildScope.
func Build(top *synt.Group, cfg ParseConfig) (*Library, diag.Diagnostics) {
	diags := diag.NewBuilder()
	scope := NewBuildScope(cfg, diags)

	lib := &Library{
		Name:       titleString(top),
		TypeTable:  collection.NewGroupSet[*BusType, string](),
		WireLoads:  collection.NewGroupSet[*WireLoad, string](),
		OpConds:    collection.NewGroupSet[*OperatingConditions, string](),
		Cells:      collection.NewGroupSet[*Cell, string](),
		VoltageMap: &VoltageMap{},
		Attributes: attr.NewBag(),
	}

	for _, node := range top.Body {
		switch n := node.(type) {
		case *synt.Simple:
			buildLibrarySimple(lib, n, scope)
		case *synt.Complex:
			buildLibraryComplex(lib, n, scope)
		case *synt.Group:
			buildLibraryGroup(lib, n, scope)
		}
	}

	for _, node := range top.Body {
		g, ok := node.(*synt.Group)
		if !ok || g.Name != "cell" {
			continue
		}

		c := buildCell(g, scope)
		if !lib.Cells.Insert(c) {
			diags.Report(diag.NewSpan(g.Line), diag.IdCollision, "duplicate cell "+quote(c.Name))
		}
	}

	lib.Templates = scope.Templates

	log.Debugf("liberty/model: built library %q with %d cell(s)", lib.Name, lib.Cells.Len())

	return lib, diags.Build()
}

func buildLibrarySimple(lib *Library, n *synt.Simple, scope *BuildScope) {
	switch n.Name {
	case "delay_model":
		lib.DelayModel = n.Value.Text
	case "default_wire_load":
		lib.DefaultWireLoad = n.Value.Text
	case "time_unit":
		if err := value.ParseTimeUnit(n.Value.Text); err == nil {
			lib.Units.TimeUnit = n.Value.Text
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, err.Error())
			attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
		}
	case "voltage_unit":
		lib.Units.VoltageUnit = n.Value.Text

		if u, err := value.ParseVoltageUnit(n.Value.Text); err == nil {
			lib.VoltageUnit = u
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, err.Error())
			attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
		}
	case "current_unit":
		lib.Units.CurrentUnit = n.Value.Text
	case "pulling_resistance_unit":
		lib.Units.PullingResistanceUnit = n.Value.Text
	case "leakage_power_unit":
		lib.Units.LeakagePowerUnit = n.Value.Text
	case "capacitive_load_unit":
		lib.Units.CapacitiveLoadUnit = n.Value.Text
	case "nom_process":
		lib.NomProcess = parseFloatAttr(n, scope.Diags)
	case "nom_voltage":
		lib.NomVoltage = parseFloatAttr(n, scope.Diags)
	case "nom_temperature":
		lib.NomTemperature = parseFloatAttr(n, scope.Diags)
	default:
		attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
	}
}

func buildLibraryComplex(lib *Library, n *synt.Complex, scope *BuildScope) {
	switch n.Name {
	case "voltage_map":
		if e, ok := buildVoltageMapEntry(n, scope.Diags); ok {
			lib.VoltageMap.Entries = append(lib.VoltageMap.Entries, e)
		} else {
			attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
		}
	case "define":
		buildDefine(n, scope)
	default:
		attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
	}
}

func buildLibraryGroup(lib *Library, n *synt.Group, scope *BuildScope) {
	switch n.Name {
	case "type":
		bt := buildBusType(n, scope.Diags)
		if !lib.TypeTable.Insert(bt) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate type "+quote(bt.Name))
			return
		}

		scope.AddBusType(bt, diag.NewSpan(n.Line))
	case "lu_table_template", "power_lu_table_template":
		t := buildTemplate(n, scope.Diags)
		if !scope.Templates.Add(t) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate table template "+quote(t.Name))
		}
	case "wire_load":
		wl := buildWireLoad(n, scope.Diags)
		if !lib.WireLoads.Insert(wl) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate wire_load "+quote(wl.Name))
			return
		}

		scope.AddWireLoad(wl, diag.NewSpan(n.Line))
	case "operating_conditions":
		oc := buildOperatingConditions(n, scope.Diags)
		if !lib.OpConds.Insert(oc) {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision, "duplicate operating_conditions "+quote(oc.Name))
			return
		}

		scope.AddOperatingConditions(oc, diag.NewSpan(n.Line))
	case "cell":
		// handled in the second pass, once every post-build pointer table
		// above is fully populated.
	default:
		attr.StashUnknown(lib.Attributes, n, scope.Defines, "library")
	}
}

// buildDefine parses a `define(attribute_name, group_name, type);`
// declaration (spec.md §4.2): an otherwise-unknown simple attribute name,
// scoped to one group kind, that should parse into a typed Attributes slot
// instead of a raw wrapper.
func buildDefine(c *synt.Complex, scope *BuildScope) {
	if len(c.Values) != 3 {
		scope.Diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "define expects exactly 3 values")
		return
	}

	kind, ok := defineKind(c.Values[2].Text)
	if !ok {
		scope.Diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "unknown define type "+quote(c.Values[2].Text))
		return
	}

	scope.Defines.Declare(c.Values[1].Text, c.Values[0].Text, kind)
}

func defineKind(s string) (attr.BagKind, bool) {
	switch s {
	case "boolean":
		return attr.BagBool, true
	case "integer":
		return attr.BagInt, true
	case "float":
		return attr.BagFloat, true
	case "string":
		return attr.BagString, true
	default:
		return 0, false
	}
}
