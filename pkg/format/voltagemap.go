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

// WriteVoltageMap emits the library's `voltage_map` complex attributes, one
// per entry, in source order.
func WriteVoltageMap(w *Writer, vm *model.VoltageMap) {
	if vm == nil {
		return
	}

	for _, e := range vm.Entries {
		w.Complex("voltage_map", e.SupplyName, formatFloat(e.Voltage))
	}
}
