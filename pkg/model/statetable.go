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
	"github.com/afele/liberty/pkg/expr"
	"github.com/afele/liberty/pkg/logic"
	"github.com/afele/liberty/pkg/synt"
)

// StateTableRow is one row of a `statetable` group's `table` attribute:
// an input-value combination, the current internal-node values, and the
// resulting next-state value for each internal node, colon-separated in
// source order (e.g. `"L L : - : L"`).
type StateTableRow struct {
	Inputs   []logic.Static
	Internal []logic.Static
	Next     []logic.Static
}

// StateTable models a cell's `statetable(input_list, internal_list) {
// table : "..."; }` group: present-state x input-value combinations mapped
// to next internal-node states (spec.md §3's Cell ownership list,
// original_source's `library/items.rs` statetable group).
type StateTable struct {
	InputNodes    []string
	InternalNodes []string
	Rows          []StateTableRow

	Attributes *attr.Bag
}

func buildStateTable(g *synt.Group, scope *BuildScope) *StateTable {
	st := &StateTable{Attributes: attr.NewBag()}

	if len(g.Titles) > 0 {
		st.InputNodes = splitNames(g.Titles[0].Text)
	}

	if len(g.Titles) > 1 {
		st.InternalNodes = splitNames(g.Titles[1].Text)
	}

	for _, node := range g.Body {
		c, ok := node.(*synt.Complex)
		if !ok || c.Name != "table" {
			attr.StashUnknown(st.Attributes, node, scope.Defines, "statetable")
			continue
		}

		for _, v := range c.Values {
			if row, ok := parseStateTableRow(v.Text, c.Line, scope.Diags); ok {
				st.Rows = append(st.Rows, row)
			}
		}
	}

	return st
}

func splitNames(s string) []string {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	return fields
}

// parseStateTableRow parses one row text of the shape
// "<inputs> : <internal> : <next>", each segment a space-separated list of
// static-logic values (or "-" for don't-care, retained as logic.X).
func parseStateTableRow(text string, line int, diags *diag.Builder) (StateTableRow, bool) {
	segments := strings.Split(text, ":")
	if len(segments) != 3 {
		diags.Report(diag.NewSpan(line), diag.TypedValue, "statetable row must have 3 colon-separated fields: "+quote(text))
		return StateTableRow{}, false
	}

	return StateTableRow{
		Inputs:   parseStaticList(segments[0]),
		Internal: parseStaticList(segments[1]),
		Next:     parseStaticList(segments[2]),
	}, true
}

func parseStaticList(s string) []logic.Static {
	fields := strings.Fields(s)
	out := make([]logic.Static, 0, len(fields))

	for _, f := range fields {
		switch f {
		case "-":
			out = append(out, logic.X)
		case "L", "0":
			out = append(out, logic.L)
		case "H", "1":
			out = append(out, logic.H)
		case "Z":
			out = append(out, logic.Z)
		default:
			out = append(out, logic.X)
		}
	}

	return out
}

// Sensitization is an advisory (non-enforced, per spec.md's Non-goals)
// edge-sensitivity hint derived from an FF/Latch's governing boolean
// expression: every signal node the expression names is recorded here so
// timing-arc resolution has a cheap first-pass pin set without re-walking
// the AST. No edge polarity is inferred -- that is left to the analysis
// tools the core explicitly does not implement.
type Sensitization struct {
	Pin string
}

// sensitize collects the distinct variable names an AST references, in
// the AST's own first-occurrence order, for the Sensitization hints
// attached to FF/Latch.
func sensitize(n *expr.AST) []Sensitization {
	if n == nil {
		return nil
	}

	names := n.Vars()
	out := make([]Sensitization, len(names))

	for i, name := range names {
		out[i] = Sensitization{Pin: name}
	}

	return out
}
