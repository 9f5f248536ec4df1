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

// Units holds the library-level measurement-unit declarations. Most of
// these are free-form strings in the Liberty format ("1pf", "1mA");
// voltage_unit has a small closed enumeration (value.VoltageUnit), used
// elsewhere when resolving voltage-formula fragments, and time_unit is
// shape-validated (magnitude + recognized suffix) since a malformed
// time_unit is the canonical TypedValueError example (spec.md §8 S5).
type Units struct {
	TimeUnit              string
	VoltageUnit           string
	CurrentUnit           string
	PullingResistanceUnit string
	LeakagePowerUnit      string
	CapacitiveLoadUnit    string
}
