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
package format

import "github.com/afele/liberty/pkg/lut"

// WriteTemplate emits one `lu_table_template`/`power_lu_table_template`
// group: its variable_N roles in axis order, then any default index_N rows
// (spec.md §4.5).
func WriteTemplate(w *Writer, t *lut.Template) {
	w.GroupOpen(t.GroupName, t.Name)

	for i := range t.Variables {
		w.Simple(variableAttrName(i), templateVariableName(t, i))
	}

	for i, idx := range t.DefaultIndices {
		if len(idx) == 0 {
			continue
		}

		w.Complex(indexAttrName(i), quoteIfNeeded(formatFloatSlice(idx)))
	}

	w.GroupClose()
}

// WriteTable emits one resolved table-instance group (e.g.
// `cell_rise(template_name) { ... }`): index_N overrides first, then the
// values rows (spec.md §4.8's multi-row complex shape).
func WriteTable(w *Writer, groupName string, t lut.TableLookUp) {
	if t.TemplateName != "" {
		w.GroupOpen(groupName, t.TemplateName)
	} else {
		w.GroupOpen(groupName)
	}

	for i, idx := range t.Indices {
		if len(idx) == 0 {
			continue
		}

		w.Complex(indexAttrName(i), quoteIfNeeded(formatFloatSlice(idx)))
	}

	writeValuesRows(w, t)

	w.GroupClose()
}

// writeValuesRows splits a flattened row-major Values array back into one
// row per outermost-axis slice, matching how multi-row `values(...)`
// complex attributes are written on input.
func writeValuesRows(w *Writer, t lut.TableLookUp) {
	if len(t.Indices) == 0 || len(t.Values) == 0 {
		if len(t.Values) > 0 {
			w.Complex("values", quoteIfNeeded(formatFloatSlice(t.Values)))
		}

		return
	}

	rowWidth := 1
	for _, idx := range t.Indices[1:] {
		rowWidth *= len(idx)
	}

	if rowWidth == 0 {
		return
	}

	var rows []string

	for off := 0; off < len(t.Values); off += rowWidth {
		end := off + rowWidth
		if end > len(t.Values) {
			end = len(t.Values)
		}

		rows = append(rows, quoteIfNeeded(formatFloatSlice(t.Values[off:end])))
	}

	w.ComplexRows("values", rows...)
}

// templateVariableName mirrors lut.TableLookUp.VariableName for a
// Template's own variable_N attribute text.
func templateVariableName(t *lut.Template, i int) string {
	if i < len(t.Variables) && t.Variables[i] != lut.Other {
		return t.Variables[i].String()
	}

	if i < len(t.VariableText) {
		return t.VariableText[i]
	}

	return "other"
}

func variableAttrName(axis int) string {
	switch axis {
	case 0:
		return "variable_1"
	case 1:
		return "variable_2"
	default:
		return "variable_3"
	}
}

func indexAttrName(axis int) string {
	switch axis {
	case 0:
		return "index_1"
	case 1:
		return "index_2"
	default:
		return "index_3"
	}
}
