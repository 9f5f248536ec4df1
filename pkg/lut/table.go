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

import "fmt"

// TableLookUp is a resolved N-dimensional lookup: one sorted index vector
// per variable and a row-major values array in variable order (spec.md
// §3.1, §4.5). Invalid tables (where values.len() != product(|indices|))
// are retained with Valid=false rather than dropped, per spec.md §4.5 and
// §7 (InvariantViolation is diagnosed, not fatal).
type TableLookUp struct {
	TemplateName string
	Variables    []Variable
	VariableText []string
	Indices      [][]float64
	Values       []float64
	Valid        bool
}

// VariableName returns the canonical or raw text for axis i, preferring
// the known enum's canonical spelling and falling back to the raw
// variable_N text captured at parse time for an Other axis.
func (t TableLookUp) VariableName(i int) string {
	if i < len(t.Variables) && t.Variables[i] != Other {
		return t.Variables[i].String()
	}

	if i < len(t.VariableText) {
		return t.VariableText[i]
	}

	return "other"
}

// Build resolves a table instance against an optional template. Per
// spec.md §9 Open Questions, an index_i given on the instance overrides the
// template's default for that axis; the template supplies variable roles
// and any axis the instance didn't override.
func Build(tmpl *Template, instanceIndices [][]float64, values []float64) TableLookUp {
	var vars []Variable

	var varText []string

	var indices [][]float64

	if tmpl != nil {
		vars = append(vars, tmpl.Variables...)
		varText = append(varText, tmpl.VariableText...)
		indices = make([][]float64, len(tmpl.Variables))

		for i := range indices {
			if i < len(tmpl.DefaultIndices) {
				indices[i] = tmpl.DefaultIndices[i]
			}
		}
	}

	for i, idx := range instanceIndices {
		for len(indices) <= i {
			indices = append(indices, nil)
			vars = append(vars, Other)
			varText = append(varText, "")
		}

		if idx != nil {
			indices[i] = idx
		}
	}

	expected := 1
	for _, idx := range indices {
		expected *= len(idx)
	}

	valid := expected > 0 && expected == len(values)

	return TableLookUp{
		TemplateName: templateNameOf(tmpl),
		Variables:    vars,
		VariableText: varText,
		Indices:      indices,
		Values:       values,
		Valid:        valid,
	}
}

func templateNameOf(t *Template) string {
	if t == nil {
		return ""
	}

	return t.Name
}

// Validate re-checks the table's shape invariant, returning an error
// describing the mismatch if any (spec.md §4.5: "values.len() ==
// product(indices[i].len())").
func (t TableLookUp) Validate() error {
	expected := 1
	for _, idx := range t.Indices {
		expected *= len(idx)
	}

	if expected != len(t.Values) {
		return fmt.Errorf("table shape invalid: expected %d values for indices %v, got %d",
			expected, shapeOf(t.Indices), len(t.Values))
	}

	return nil
}

func shapeOf(indices [][]float64) []int {
	shape := make([]int, len(indices))
	for i, idx := range indices {
		shape[i] = len(idx)
	}

	return shape
}
