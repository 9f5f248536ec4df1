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

import "github.com/afele/liberty/pkg/model"

// WritePin emits one `pin` group: direction and capacitance simples, the
// function/three_state boolean attributes, then the timing set slot
// (sorted by composite id) and internal_power vec slot (insertion order),
// per spec.md §4.8.
func WritePin(w *Writer, p *model.Pin) {
	w.GroupOpen("pin", p.Name)

	w.Simple("direction", p.Direction.String())

	if p.Capacitance.Value() != 0 {
		w.Simple("capacitance", formatFloat(p.Capacitance))
	}

	if p.MaxCapacitance.Value() != 0 {
		w.Simple("max_capacitance", formatFloat(p.MaxCapacitance))
	}

	if p.MinCapacitance.Value() != 0 {
		w.Simple("min_capacitance", formatFloat(p.MinCapacitance))
	}

	writeBooleanAttr(w, "function", p.Function)
	writeBooleanAttr(w, "three_state", p.ThreeState)

	for _, t := range p.Timings.ByID() {
		WriteTiming(w, t)
	}

	for _, ip := range p.InternalPowers {
		WriteInternalPower(w, ip)
	}

	WriteBag(w, p.Attributes)
	w.GroupClose()
}
