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

// WriteLibrary emits the top-level `library` group: units and nominal
// operating-point simples, the voltage map, then the post-build pointer
// tables (bus types, templates, wire loads, operating conditions) ahead of
// the cell set, per spec.md §4.8's schema/set/vec ordering rule.
func WriteLibrary(w *Writer, lib *model.Library) {
	w.GroupOpen("library", lib.Name)

	writeUnits(w, &lib.Units)

	if lib.DelayModel != "" {
		w.Simple("delay_model", lib.DelayModel)
	}

	if lib.DefaultWireLoad != "" {
		w.Simple("default_wire_load", lib.DefaultWireLoad)
	}

	if lib.NomProcess.Value() != 0 {
		w.Simple("nom_process", formatFloat(lib.NomProcess))
	}

	if lib.NomVoltage.Value() != 0 {
		w.Simple("nom_voltage", formatFloat(lib.NomVoltage))
	}

	if lib.NomTemperature.Value() != 0 {
		w.Simple("nom_temperature", formatFloat(lib.NomTemperature))
	}

	WriteVoltageMap(w, lib.VoltageMap)

	for _, bt := range lib.TypeTable.ByID() {
		WriteBusType(w, bt)
	}

	if lib.Templates != nil {
		for _, t := range lib.Templates.All() {
			WriteTemplate(w, t)
		}
	}

	for _, wl := range lib.WireLoads.ByID() {
		WriteWireLoad(w, wl)
	}

	for _, oc := range lib.OpConds.ByID() {
		WriteOperatingConditions(w, oc)
	}

	for _, c := range lib.Cells.ByID() {
		WriteCell(w, c)
	}

	WriteBag(w, lib.Attributes)
	w.GroupClose()
}

func writeUnits(w *Writer, u *model.Units) {
	if u.TimeUnit != "" {
		w.Simple("time_unit", u.TimeUnit)
	}

	if u.VoltageUnit != "" {
		w.Simple("voltage_unit", u.VoltageUnit)
	}

	if u.CurrentUnit != "" {
		w.Simple("current_unit", u.CurrentUnit)
	}

	if u.PullingResistanceUnit != "" {
		w.Simple("pulling_resistance_unit", u.PullingResistanceUnit)
	}

	if u.LeakagePowerUnit != "" {
		w.Simple("leakage_power_unit", u.LeakagePowerUnit)
	}

	if u.CapacitiveLoadUnit != "" {
		w.Simple("capacitive_load_unit", u.CapacitiveLoadUnit)
	}
}
