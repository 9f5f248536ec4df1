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

// WriteBus emits one `bus` group: its bus_type reference, then member pins
// sorted by name (a set slot).
func WriteBus(w *Writer, b *model.Bus) {
	w.GroupOpen("bus", b.Name)

	if b.BusTypeName != "" {
		w.Simple("bus_type", b.BusTypeName)
	}

	for _, p := range b.Pins.ByID() {
		WritePin(w, p)
	}

	WriteBag(w, b.Attributes)
	w.GroupClose()
}
