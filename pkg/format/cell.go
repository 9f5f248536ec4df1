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

// WriteCell emits one library-level `cell` group, in the order CellCore's
// fields are declared: pins/buses/bundles as set slots (sorted by id), then
// ff/latch/leakage_power/statetable/intrinsic_parasitic/dynamic_current as
// vec slots (insertion order), with pg_pin and test_cell appended last
// since neither lives in CellCore (spec.md §4.8).
func WriteCell(w *Writer, c *model.Cell) {
	w.GroupOpen("cell", c.Name)

	if c.Area.Value() != 0 {
		w.Simple("area", formatFloat(c.Area))
	}

	if c.CellFootprint != "" {
		w.Simple("cell_footprint", c.CellFootprint)
	}

	if c.CellLeakagePower.Value() != 0 {
		w.Simple("cell_leakage_power", formatFloat(c.CellLeakagePower))
	}

	writeCellCore(w, &c.CellCore)

	for _, p := range c.PgPins.ByID() {
		WritePgPin(w, p)
	}

	if c.TestCell != nil {
		w.GroupOpen("test_cell")
		writeCellCore(w, &c.TestCell.CellCore)
		w.GroupClose()
	}

	WriteBag(w, c.Attributes)
	w.GroupClose()
}

func writeCellCore(w *Writer, core *model.CellCore) {
	for _, p := range core.Pins.ByID() {
		WritePin(w, p)
	}

	for _, b := range core.Buses.ByID() {
		WriteBus(w, b)
	}

	for _, b := range core.Bundles.ByID() {
		WriteBundle(w, b)
	}

	for _, f := range core.FFs {
		WriteFF(w, f)
	}

	for _, l := range core.Latches {
		WriteLatch(w, l)
	}

	for _, lp := range core.LeakagePowers {
		WriteLeakagePower(w, lp)
	}

	if core.StateTable != nil {
		WriteStateTable(w, core.StateTable)
	}

	for _, ip := range core.IntrinsicParasitics {
		WriteIntrinsicParasitic(w, ip)
	}

	for _, dc := range core.DynamicCurrents {
		WriteDynamicCurrent(w, dc)
	}

	WriteBag(w, core.Attributes)
}
