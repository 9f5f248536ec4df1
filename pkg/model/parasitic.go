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
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/formula"
	"github.com/afele/liberty/pkg/lut"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// IntrinsicParasitic is a cell-level `intrinsic_parasitic(related_pin)`
// group: the vectorized rise/fall resistance and capacitance figures
// spec.md §3.1 lists under Cell ownership without further detail.
type IntrinsicParasitic struct {
	RelatedPin      string
	RiseResistance  value.Float
	FallResistance  value.Float
	RiseCapacitance value.Float
	FallCapacitance value.Float

	Attributes *attr.Bag
}

func buildIntrinsicParasitic(g *synt.Group, scope *BuildScope) *IntrinsicParasitic {
	ip := &IntrinsicParasitic{RelatedPin: titleString(g), Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(ip.Attributes, node, scope.Defines, "intrinsic_parasitic")
			continue
		}

		switch s.Name {
		case "rise_resistance":
			ip.RiseResistance = parseFloatAttr(s, scope.Diags)
		case "fall_resistance":
			ip.FallResistance = parseFloatAttr(s, scope.Diags)
		case "rise_capacitance":
			ip.RiseCapacitance = parseFloatAttr(s, scope.Diags)
		case "fall_capacitance":
			ip.FallCapacitance = parseFloatAttr(s, scope.Diags)
		default:
			attr.StashUnknown(ip.Attributes, s, scope.Defines, "intrinsic_parasitic")
		}
	}

	return ip
}

// DynamicCurrent is a cell-level `dynamic_current` group: a related_pin /
// when-conditioned pair of current-waveform tables, reusing pkg/lut the
// same way InternalPower's rise_power/fall_power tables do.
type DynamicCurrent struct {
	RelatedPin        string
	When              string
	WhenAST           *formula.AST
	OutputCurrentRise *lut.TableLookUp
	OutputCurrentFall *lut.TableLookUp

	Attributes *attr.Bag
}

func buildDynamicCurrent(g *synt.Group, scope *BuildScope) *DynamicCurrent {
	dc := &DynamicCurrent{Attributes: attr.NewBag()}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			switch n.Name {
			case "related_pin":
				dc.RelatedPin = n.Value.Text
			case "when":
				dc.When = n.Value.Text

				if ast, err := formula.Parse(n.Value.Text); err == nil {
					dc.WhenAST = ast
				} else {
					scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, "when condition: "+err.Error())
				}
			default:
				attr.StashUnknown(dc.Attributes, n, scope.Defines, "dynamic_current")
			}
		case *synt.Group:
			switch n.Name {
			case "output_current_rise":
				tbl := buildResolvedTable(n, scope)
				dc.OutputCurrentRise = &tbl
			case "output_current_fall":
				tbl := buildResolvedTable(n, scope)
				dc.OutputCurrentFall = &tbl
			default:
				attr.StashUnknown(dc.Attributes, n, scope.Defines, "dynamic_current")
			}
		default:
			attr.StashUnknown(dc.Attributes, node, scope.Defines, "dynamic_current")
		}
	}

	return dc
}
