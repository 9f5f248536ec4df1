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
	"sort"

	"github.com/afele/liberty/pkg/lut"
	"github.com/afele/liberty/pkg/model"
)

// WriteTiming emits one pin-level `timing` group: identifying simple
// attributes first, then the six named delay/transition/constraint tables,
// then any LVF/OCV variants sorted by attribute name (a set slot keyed by
// name, per spec.md §4.8).
func WriteTiming(w *Writer, t *model.Timing) {
	w.GroupOpen("timing")

	if t.RelatedPin != "" {
		w.Simple("related_pin", t.RelatedPin)
	}

	if t.HasSense {
		w.Simple("timing_sense", t.TimingSense.String())
	}

	if t.HasType {
		w.Simple("timing_type", t.TimingType.String())
	}

	if t.When != "" {
		w.Simple("when", quoteIfNeeded(whenText(t.When, t.WhenAST)))
	}

	writeTimingTable(w, "cell_rise", t.CellRise)
	writeTimingTable(w, "cell_fall", t.CellFall)
	writeTimingTable(w, "rise_transition", t.RiseTransition)
	writeTimingTable(w, "fall_transition", t.FallTransition)
	writeTimingTable(w, "rise_constraint", t.RiseConstraint)
	writeTimingTable(w, "fall_constraint", t.FallConstraint)

	for _, name := range sortedOcvNames(t.OcvTables) {
		writeTimingTable(w, name, t.OcvTables[name])
	}

	WriteBag(w, t.Attributes)
	w.GroupClose()
}

func writeTimingTable(w *Writer, name string, t *lut.TableLookUp) {
	if t == nil {
		return
	}

	WriteTable(w, name, *t)
}

func sortedOcvNames(m map[string]*lut.TableLookUp) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
