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

// WritePgPin emits one cell-level `pg_pin` group.
func WritePgPin(w *Writer, p *model.PgPin) {
	w.GroupOpen("pg_pin", p.Name)

	if p.PgType != "" {
		w.Simple("pg_type", p.PgType)
	}

	if p.VoltageName != "" {
		w.Simple("voltage_name", p.VoltageName)
	}

	WriteBag(w, p.Attributes)
	w.GroupClose()
}
