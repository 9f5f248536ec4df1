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
	"github.com/afele/liberty/pkg/expr"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// Direction classifies a Pin's signal direction.
type Direction uint8

const (
	// DirectionInput is a cell input.
	DirectionInput Direction = iota
	// DirectionOutput is a cell output.
	DirectionOutput
	// DirectionInout is bidirectional.
	DirectionInout
	// DirectionInternal is an internal (non-terminal) node.
	DirectionInternal
)

func (d Direction) String() string {
	switch d {
	case DirectionOutput:
		return "output"
	case DirectionInout:
		return "inout"
	case DirectionInternal:
		return "internal"
	default:
		return "input"
	}
}

// ParseDirection parses the `direction` attribute's value.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "input":
		return DirectionInput, true
	case "output":
		return DirectionOutput, true
	case "inout":
		return DirectionInout, true
	case "internal":
		return DirectionInternal, true
	default:
		return 0, false
	}
}

// Pin is a cell's signal terminal (spec.md §3.1). Function/ThreeState are
// nil when the pin carries no such attribute, which is the common case for
// plain inputs.
type Pin struct {
	Name           string
	Direction      Direction
	Capacitance    value.Float
	MaxCapacitance value.Float
	MinCapacitance value.Float
	Function       *expr.BooleanExpression
	ThreeState     *expr.BooleanExpression
	Timings        *collection.GroupSet[*Timing, string]
	InternalPowers []*InternalPower

	Attributes *attr.Bag
}

// Id implements collection.Identifiable.
func (p *Pin) Id() string { return p.Name }

func buildPin(g *synt.Group, cell *CellScope, scope *BuildScope) *Pin {
	p := &Pin{
		Name:       titleString(g),
		Timings:    collection.NewGroupSet[*Timing, string](),
		Attributes: attr.NewBag(),
	}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			buildPinSimple(p, n, cell, scope)
		case *synt.Group:
			switch n.Name {
			case "timing":
				t := buildTiming(n, cell, scope)
				if !p.Timings.Insert(t) {
					scope.Diags.Report(diag.NewSpan(n.Line), diag.IdCollision,
						"duplicate timing arc for related_pin "+quote(t.RelatedPin))
				}
			case "internal_power":
				p.InternalPowers = append(p.InternalPowers, buildInternalPower(n, cell, scope))
			default:
				attr.StashUnknown(p.Attributes, n, scope.Defines, "pin")
			}
		default:
			attr.StashUnknown(p.Attributes, node, scope.Defines, "pin")
		}
	}

	return p
}

func buildPinSimple(p *Pin, n *synt.Simple, cell *CellScope, scope *BuildScope) {
	switch n.Name {
	case "direction":
		if d, ok := ParseDirection(n.Value.Text); ok {
			p.Direction = d
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, "invalid direction "+quote(n.Value.Text))
		}
	case "capacitance":
		p.Capacitance = parseFloatAttr(n, scope.Diags)
	case "max_capacitance":
		p.MaxCapacitance = parseFloatAttr(n, scope.Diags)
	case "min_capacitance":
		p.MinCapacitance = parseFloatAttr(n, scope.Diags)
	case "function":
		if e, err := expr.Parse(n.Value.Text, cell.Signal); err == nil {
			p.Function = &e
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.InvariantViolation,
				"pin "+quote(p.Name)+" function: "+err.Error())
			attr.StashUnknown(p.Attributes, n, scope.Defines, "pin")
		}
	case "three_state":
		if e, err := expr.Parse(n.Value.Text, cell.Signal); err == nil {
			p.ThreeState = &e
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.InvariantViolation,
				"pin "+quote(p.Name)+" three_state: "+err.Error())
			attr.StashUnknown(p.Attributes, n, scope.Defines, "pin")
		}
	default:
		attr.StashUnknown(p.Attributes, n, scope.Defines, "pin")
	}
}
