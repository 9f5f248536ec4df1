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

// WriteOperatingConditions emits one library-level `operating_conditions`
// group.
func WriteOperatingConditions(w *Writer, oc *model.OperatingConditions) {
	w.GroupOpen("operating_conditions", oc.Name)

	w.Simple("process", formatFloat(oc.Process))
	w.Simple("voltage", formatFloat(oc.Voltage))
	w.Simple("temperature", formatFloat(oc.Temperature))

	if oc.TreeType != "" {
		w.Simple("tree_type", oc.TreeType)
	}

	WriteBag(w, oc.Attributes)
	w.GroupClose()
}
