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

// WriteIntrinsicParasitic emits one cell-level `intrinsic_parasitic` group.
func WriteIntrinsicParasitic(w *Writer, ip *model.IntrinsicParasitic) {
	w.GroupOpen("intrinsic_parasitic", ip.RelatedPin)

	w.Simple("rise_resistance", formatFloat(ip.RiseResistance))
	w.Simple("fall_resistance", formatFloat(ip.FallResistance))
	w.Simple("rise_capacitance", formatFloat(ip.RiseCapacitance))
	w.Simple("fall_capacitance", formatFloat(ip.FallCapacitance))

	WriteBag(w, ip.Attributes)
	w.GroupClose()
}

// WriteDynamicCurrent emits one cell-level `dynamic_current` group.
func WriteDynamicCurrent(w *Writer, dc *model.DynamicCurrent) {
	w.GroupOpen("dynamic_current")

	if dc.RelatedPin != "" {
		w.Simple("related_pin", dc.RelatedPin)
	}

	if dc.When != "" {
		w.Simple("when", quoteIfNeeded(whenText(dc.When, dc.WhenAST)))
	}

	if dc.OutputCurrentRise != nil {
		WriteTable(w, "output_current_rise", *dc.OutputCurrentRise)
	}

	if dc.OutputCurrentFall != nil {
		WriteTable(w, "output_current_fall", *dc.OutputCurrentFall)
	}

	WriteBag(w, dc.Attributes)
	w.GroupClose()
}
