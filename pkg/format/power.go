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

// WriteInternalPower emits one pin-level `internal_power` group.
func WriteInternalPower(w *Writer, ip *model.InternalPower) {
	w.GroupOpen("internal_power")

	if ip.RelatedPin != "" {
		w.Simple("related_pin", ip.RelatedPin)
	}

	if ip.When != "" {
		w.Simple("when", quoteIfNeeded(whenText(ip.When, ip.WhenAST)))
	}

	if ip.Risepower != nil {
		WriteTable(w, "rise_power", *ip.Risepower)
	}

	if ip.FallPower != nil {
		WriteTable(w, "fall_power", *ip.FallPower)
	}

	WriteBag(w, ip.Attributes)
	w.GroupClose()
}

// WriteLeakagePower emits one cell-level `leakage_power` group.
func WriteLeakagePower(w *Writer, lp *model.LeakagePower) {
	w.GroupOpen("leakage_power")

	if lp.When != "" {
		w.Simple("when", quoteIfNeeded(whenText(lp.When, lp.WhenAST)))
	}

	w.Simple("value", formatFloat(lp.Value))

	WriteBag(w, lp.Attributes)
	w.GroupClose()
}
