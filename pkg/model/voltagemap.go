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
package model

import (
	"github.com/afele/liberty/pkg/diag"
	"github.com/afele/liberty/pkg/synt"
	"github.com/afele/liberty/pkg/value"
)

// VoltageMapEntry is one `voltage_map(supply_name, voltage)` complex
// attribute instance.
type VoltageMapEntry struct {
	SupplyName string
	Voltage    value.Float
}

// VoltageMap is the library-level table of named supply voltages, used to
// resolve `voltage(NAME)` operands in SDF/voltage-formula fragments
// (pkg/formula).
type VoltageMap struct {
	Entries []VoltageMapEntry
}

// Lookup returns the voltage registered for a supply name.
func (v *VoltageMap) Lookup(name string) (value.Float, bool) {
	for _, e := range v.Entries {
		if e.SupplyName == name {
			return e.Voltage, true
		}
	}

	return value.Float{}, false
}

func buildVoltageMapEntry(c *synt.Complex, diags *diag.Builder) (VoltageMapEntry, bool) {
	if len(c.Values) != 2 {
		diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "voltage_map expects exactly two values")
		return VoltageMapEntry{}, false
	}

	f, err := value.ParseFloat(c.Values[1].Text)
	if err != nil {
		diags.Report(diag.NewSpan(c.Line), diag.TypedValue, "invalid voltage in voltage_map")
		return VoltageMapEntry{}, false
	}

	return VoltageMapEntry{SupplyName: c.Values[0].Text, Voltage: f}, true
}
