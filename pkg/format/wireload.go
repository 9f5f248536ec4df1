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
	"strconv"

	"github.com/afele/liberty/pkg/model"
)

// WriteWireLoad emits one library-level `wire_load` group, in
// wireLoadSchema's declared order: simple attributes then the
// fanout_length vec slot in insertion order (spec.md §4.8).
func WriteWireLoad(w *Writer, wl *model.WireLoad) {
	w.GroupOpen("wire_load", wl.Name)

	w.Simple("resistance", formatFloat(wl.Resistance))
	w.Simple("capacitance", formatFloat(wl.Capacitance))
	w.Simple("slope", formatFloat(wl.Slope))

	for _, e := range wl.FanoutLengths {
		w.Complex("fanout_length", strconv.Itoa(e.Fanout), formatFloat(e.Length))
	}

	WriteBag(w, wl.Attributes)
	w.GroupClose()
}
