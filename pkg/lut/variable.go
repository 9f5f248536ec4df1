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

// Package lut implements the multi-dimensional look-up-table engine:
// template resolution, index/value arrays, and linear/bilinear
// interpolation with shared-template deduplication (spec.md §4.5).
package lut

import "fmt"

// Variable names the semantic role of one table axis.
type Variable uint8

const (
	// InputNetTransition is the driving pin's transition time axis.
	InputNetTransition Variable = iota
	// TotalOutputNetCapacitance is the load capacitance axis.
	TotalOutputNetCapacitance
	// RelatedPinTransition is the related (clock/data) pin's transition axis.
	RelatedPinTransition
	// ConstrainedPinTransition is the constrained pin's own transition axis.
	ConstrainedPinTransition
	// DriverSlew is the driver's slew-rate axis, used by some current tables.
	DriverSlew
	// TimeValue is the waveform time axis, used by output-current tables.
	TimeValue
	// InputVoltage is a voltage axis, used by some receiver-capacitance tables.
	InputVoltage
	// OutputVoltage is a voltage axis, used by some receiver-capacitance tables.
	OutputVoltage
	// Other is any axis name not enumerated above; the raw text travels
	// alongside it in the owning Template/TableLookUp.
	Other
)

var variableNames = map[string]Variable{
	"input_net_transition":          InputNetTransition,
	"total_output_net_capacitance":  TotalOutputNetCapacitance,
	"related_pin_transition":        RelatedPinTransition,
	"constrained_pin_transition":    ConstrainedPinTransition,
	"driver_slew":                   DriverSlew,
	"time":                          TimeValue,
	"input_voltage":                 InputVoltage,
	"output_voltage":                OutputVoltage,
}

// ParseVariable parses a variable_N attribute's value. ok is false for any
// name not in the known set, in which case the caller should retain the
// raw string (Other).
func ParseVariable(s string) (Variable, bool) {
	v, ok := variableNames[s]
	return v, ok
}

func (v Variable) String() string {
	for k, val := range variableNames {
		if val == v {
			return k
		}
	}

	return "other"
}

func (v Variable) mustString() string {
	s := v.String()
	if s == "other" {
		panic(fmt.Sprintf("liberty/lut: variable %d has no canonical name", v))
	}

	return s
}
