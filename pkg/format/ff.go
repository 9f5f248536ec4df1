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

// WriteFF emits one cell-level `ff(IQ, IQN) { ... }` group.
func WriteFF(w *Writer, f *model.FF) {
	w.GroupOpen("ff", f.StateVar, f.StateVarN)

	writeBooleanAttr(w, "clocked_on", f.ClockedOn)
	writeBooleanAttr(w, "next_state", f.NextState)
	writeBooleanAttr(w, "clear", f.Clear)
	writeBooleanAttr(w, "preset", f.Preset)

	WriteBag(w, f.Attributes)
	w.GroupClose()
}

// WriteLatch emits one cell-level `latch(IQ, IQN) { ... }` group.
func WriteLatch(w *Writer, l *model.Latch) {
	w.GroupOpen("latch", l.StateVar, l.StateVarN)

	writeBooleanAttr(w, "enable_on", l.EnableOn)
	writeBooleanAttr(w, "data_in", l.DataIn)
	writeBooleanAttr(w, "clear", l.Clear)
	writeBooleanAttr(w, "preset", l.Preset)

	WriteBag(w, l.Attributes)
	w.GroupClose()
}
