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
	"strings"

	"github.com/afele/liberty/pkg/attr"
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/formula"
	"github.com/afele/liberty/pkg/lut"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// Timing is scoped to a Pin and identified by the tuple (related_pin,
// timing_sense?, timing_type?, when?) per spec.md §3.1. It carries the
// per-edge delay/transition/constraint tables named in spec.md §2's
// look-up-table engine row, plus a map of LVF/OCV statistical variants
// keyed by their Liberty attribute name (e.g. "ocv_sigma_cell_rise").
type Timing struct {
	RelatedPin  string
	TimingSense value.TimingSense
	HasSense    bool
	TimingType  value.TimingType
	HasType     bool
	When        string
	WhenAST     *formula.AST

	CellRise        *lut.TableLookUp
	CellFall        *lut.TableLookUp
	RiseTransition  *lut.TableLookUp
	FallTransition  *lut.TableLookUp
	RiseConstraint  *lut.TableLookUp
	FallConstraint  *lut.TableLookUp
	OcvTables       map[string]*lut.TableLookUp

	Attributes *attr.Bag
}

// Id implements collection.Identifiable: the composite (related_pin,
// timing_sense, timing_type, when) tuple of spec.md §3.1, flattened to a
// single ordering key since the GroupSet container needs a cmp.Ordered id.
func (t *Timing) Id() string {
	var sb strings.Builder

	sb.WriteString(t.RelatedPin)
	sb.WriteByte('|')

	if t.HasSense {
		sb.WriteString(t.TimingSense.String())
	}

	sb.WriteByte('|')

	if t.HasType {
		sb.WriteString(t.TimingType.String())
	}

	sb.WriteByte('|')
	sb.WriteString(t.When)

	return sb.String()
}

func buildTiming(g *synt.Group, cell *CellScope, scope *BuildScope) *Timing {
	t := &Timing{Attributes: attr.NewBag()}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			buildTimingSimple(t, n, scope)
		case *synt.Group:
			buildTimingTable(t, n, scope)
		default:
			attr.StashUnknown(t.Attributes, node, scope.Defines, "timing")
		}
	}

	return t
}

func buildTimingSimple(t *Timing, n *synt.Simple, scope *BuildScope) {
	switch n.Name {
	case "related_pin":
		t.RelatedPin = n.Value.Text
	case "timing_sense":
		if s, err := value.ParseTimingSense(n.Value.Text); err == nil {
			t.TimingSense, t.HasSense = s, true
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, err.Error())
		}
	case "timing_type":
		if ty, ok := value.ParseTimingType(n.Value.Text); ok {
			t.TimingType, t.HasType = ty, true
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, "invalid timing_type "+quote(n.Value.Text))
		}
	case "when":
		t.When = n.Value.Text

		if ast, err := formula.Parse(n.Value.Text); err == nil {
			t.WhenAST = ast
		} else {
			scope.Diags.Report(diag.NewSpan(n.Line), diag.TypedValue, "when condition: "+err.Error())
		}
	default:
		attr.StashUnknown(t.Attributes, n, scope.Defines, "timing")
	}
}

func buildTimingTable(t *Timing, n *synt.Group, scope *BuildScope) {
	switch n.Name {
	case "cell_rise":
		tbl := buildResolvedTable(n, scope)
		t.CellRise = &tbl
	case "cell_fall":
		tbl := buildResolvedTable(n, scope)
		t.CellFall = &tbl
	case "rise_transition":
		tbl := buildResolvedTable(n, scope)
		t.RiseTransition = &tbl
	case "fall_transition":
		tbl := buildResolvedTable(n, scope)
		t.FallTransition = &tbl
	case "rise_constraint":
		tbl := buildResolvedTable(n, scope)
		t.RiseConstraint = &tbl
	case "fall_constraint":
		tbl := buildResolvedTable(n, scope)
		t.FallConstraint = &tbl
	default:
		if strings.HasPrefix(n.Name, "ocv_") {
			tbl := buildResolvedTable(n, scope)

			if t.OcvTables == nil {
				t.OcvTables = make(map[string]*lut.TableLookUp)
			}

			t.OcvTables[n.Name] = &tbl
		} else {
			attr.StashUnknown(t.Attributes, n, scope.Defines, "timing")
		}
	}
}
