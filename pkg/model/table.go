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
	"strconv"
	"strings"

	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/lut"
	"github.com/afele/liberty/pkg/synt"
)

// buildTemplate parses a library-level `lu_table_template` (or
// `power_lu_table_template`) group: a name plus 1..3 `variable_N` simple
// attributes and optional `index_N` default complex attributes (spec.md
// §4.5).
func buildTemplate(g *synt.Group, diags *diag.Builder) *lut.Template {
	t := &lut.Template{Name: titleString(g), GroupName: g.Name}

	indices := map[int][]float64{}

	for _, node := range g.Body {
		switch n := node.(type) {
		case *synt.Simple:
			if axis, ok := variableAxis(n.Name); ok {
				v, known := lut.ParseVariable(n.Value.Text)
				if !known {
					v = lut.Other
				}

				setAxis(&t.Variables, axis, v)
				setAxisText(&t.VariableText, axis, n.Value.Text)
			}
		case *synt.Complex:
			if axis, ok := indexAxis(n.Name); ok {
				indices[axis] = parseIndexRow(n, diags)
			}
		}
	}

	if len(indices) > 0 {
		t.DefaultIndices = make([][]float64, len(t.Variables))
		for axis, vals := range indices {
			if axis < len(t.DefaultIndices) {
				t.DefaultIndices[axis] = vals
			}
		}
	}

	return t
}

func setAxis(vars *[]lut.Variable, axis int, v lut.Variable) {
	for len(*vars) <= axis {
		*vars = append(*vars, lut.Other)
	}

	(*vars)[axis] = v
}

func setAxisText(texts *[]string, axis int, text string) {
	for len(*texts) <= axis {
		*texts = append(*texts, "")
	}

	(*texts)[axis] = text
}

func variableAxis(name string) (int, bool) {
	switch name {
	case "variable_1":
		return 0, true
	case "variable_2":
		return 1, true
	case "variable_3":
		return 2, true
	default:
		return 0, false
	}
}

func indexAxis(name string) (int, bool) {
	switch name {
	case "index_1":
		return 0, true
	case "index_2":
		return 1, true
	case "index_3":
		return 2, true
	default:
		return 0, false
	}
}

// parseIndexRow parses an `index_N("v1, v2, v3")` attribute: a single
// comma-separated string value.
func parseIndexRow(c *synt.Complex, diags *diag.Builder) []float64 {
	if len(c.Values) == 0 {
		return nil
	}

	return parseFloatCSV(c.Values[0].Text, c.Line, diags)
}

func parseFloatCSV(s string, line int, diags *diag.Builder) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			diags.Report(diag.NewSpan(line), diag.TypedValue, "invalid numeric value "+quote(p)+" in table row")
			continue
		}

		out = append(out, f)
	}

	return out
}

// buildResolvedTable parses a table-instance group such as
// `cell_rise(template_name) { index_1(...); values("1,2","3,4"); }`: each
// sibling `values` complex attribute becomes one flattened row-major chunk
// (spec.md §4.8's multi-row complex shape), and `index_N` overrides take
// precedence over the resolved template's defaults (spec.md §9 Open
// Questions: "the instance wins").
func buildResolvedTable(g *synt.Group, scope *BuildScope) lut.TableLookUp {
	name := titleString(g)

	var tmpl *lut.Template
	if name != "" {
		if t, ok := scope.Templates.Resolve(name); ok {
			tmpl = t
		} else {
			scope.Diags.Report(diag.NewSpan(g.Line), diag.Reference, "unresolved table template "+quote(name))
		}
	}

	instanceIndices := map[int][]float64{}

	var values []float64

	for _, node := range g.Body {
		c, ok := node.(*synt.Complex)
		if !ok {
			continue
		}

		if axis, ok := indexAxis(c.Name); ok {
			instanceIndices[axis] = parseIndexRow(c, scope.Diags)
			continue
		}

		if c.Name == "values" {
			for _, row := range c.Values {
				values = append(values, parseFloatCSV(row.Text, c.Line, scope.Diags)...)
			}
		}
	}

	maxAxis := 0
	for axis := range instanceIndices {
		if axis+1 > maxAxis {
			maxAxis = axis + 1
		}
	}

	indices := make([][]float64, maxAxis)
	for axis, vals := range instanceIndices {
		indices[axis] = vals
	}

	table := lut.Build(tmpl, indices, values)
	if !table.Valid {
		scope.Diags.Report(diag.NewSpan(g.Line), diag.InvariantViolation,
			"table "+quote(g.Name)+": "+table.Validate().Error())
	}

	return table
}
