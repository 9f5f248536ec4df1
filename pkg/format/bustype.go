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

// WriteBusType emits one library-level `type` group, in the schema order
// busTypeSchema declares (spec.md §4.8).
func WriteBusType(w *Writer, t *model.BusType) {
	w.GroupOpen("type", t.Name)

	if t.BaseType != "" {
		w.Simple("base_type", t.BaseType)
	}

	if t.DataType != "" {
		w.Simple("data_type", t.DataType)
	}

	if t.BitWidth != 0 {
		w.Simple("bit_width", strconv.Itoa(t.BitWidth))
	}

	if t.BitFrom != 0 {
		w.Simple("bit_from", strconv.Itoa(t.BitFrom))
	}

	if t.BitTo != 0 {
		w.Simple("bit_to", strconv.Itoa(t.BitTo))
	}

	WriteBag(w, t.Attributes)
	w.GroupClose()
}
