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

import (
	"strings"

	"github.com/afele/liberty/pkg/logic"
	"github.com/afele/liberty/pkg/model"
)

// WriteStateTable emits a cell's `statetable(input_list, internal_list) {
// table ( "<inputs> : <internal> : <next>", … ); }` group, one row per
// parsed StateTableRow (spec.md §3's Cell ownership list).
func WriteStateTable(w *Writer, st *model.StateTable) {
	w.GroupOpen("statetable", strings.Join(st.InputNodes, ", "), strings.Join(st.InternalNodes, ", "))

	rows := make([]string, len(st.Rows))
	for i, row := range st.Rows {
		text := joinStatics(row.Inputs) + " : " + joinStatics(row.Internal) + " : " + joinStatics(row.Next)
		rows[i] = quoteIfNeeded(text)
	}

	if len(rows) > 0 {
		w.ComplexRows("table", rows...)
	}

	WriteBag(w, st.Attributes)
	w.GroupClose()
}

func joinStatics(vals []logic.Static) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}

	return strings.Join(parts, " ")
}
