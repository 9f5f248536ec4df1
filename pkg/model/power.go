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

// InternalPower is scoped to a Pin: the switching-energy table(s) for one
// (optional related_pin, when) combination (spec.md §3.1, §2).
type InternalPower struct {
	RelatedPin string
	When       string
	WhenAST    *formula.AST
	Risepower  *lut.TableLookUp
	FallPower  *lut.TableLookUp

	Attributes *attr.Bag
}

func buildInternalPower(g *synt.Group, cell *CellScope, scope *BuildScope) *InternalPower {
	ip := &InternalPower{Attributes: attr.NewBag()}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			switch n.Name {
			case "related_pin":
				ip.RelatedPin = n.Value.Text
			case "when":
				ip.When = n.Value.Text

				if ast, err := formula.Parse(n.Value.Text); err == nil {
					ip.WhenAST = ast
				} else {
					scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, "when condition: "+err.Error())
				}
			default:
				attr.StashUnknown(ip.Attributes, n, scope.Defines, "internal_power")
			}
		case *synt.Group:
			switch n.Name {
			case "rise_power":
				tbl := buildResolvedTable(n, scope)
				ip.Risepower = &tbl
			case "fall_power":
				tbl := buildResolvedTable(n, scope)
				ip.FallPower = &tbl
			default:
				attr.StashUnknown(ip.Attributes, n, scope.Defines, "internal_power")
			}
		default:
			attr.StashUnknown(ip.Attributes, node, scope.Defines, "internal_power")
		}
	}

	return ip
}

// LeakagePower is scoped to a Cell: a standby-current table indexed by a
// `when` condition over the cell's state variables (spec.md §3.1, §6.1's
// Cell ownership list).
type LeakagePower struct {
	When      string
	WhenAST   *formula.AST
	Value     value.Float

	Attributes *attr.Bag
}

func buildLeakagePower(g *synt.Group, scope *BuildScope) *LeakagePower {
	lp := &LeakagePower{Attributes: attr.NewBag()}

	for _, node := range g.Body {
		s, ok := node.(*synt.Simple)
		if !ok {
			attr.StashUnknown(lp.Attributes, node, scope.Defines, "leakage_power")
			continue
		}

		switch s.Name {
		case "when":
			lp.When = s.Value.Text

			if ast, err := formula.Parse(s.Value.Text); err == nil {
				lp.WhenAST = ast
			} else {
				scope.Diags.Report(diag.NewSpan(s.Line), diag.TypedValue, "when condition: "+err.Error())
			}
		case "value":
			lp.Value = parseFloatAttr(s, scope.Diags)
		default:
			attr.StashUnknown(lp.Attributes, s, scope.Defines, "leakage_power")
		}
	}

	return lp
}
