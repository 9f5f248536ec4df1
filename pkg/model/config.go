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

// Package model implements the Liberty group data model of spec.md §3 and
// §4.7: Library, Cell, Pin, Bus, Bundle, Timing, InternalPower,
// LeakagePower, FF, Latch, OperatingConditions, WireLoad, VoltageMap and
// their smaller companions, each following the Raw(builder) ->
// before_build -> Resolving -> after_build -> Final lifecycle.
package model

// ParseConfig carries the dialect flags spec.md §9's Open Questions leave
// as documented options rather than hardcoded behavior.
type ParseConfig struct {
	// LegacyStarComment enables treating a first-column '*' as a line
	// comment (default true: "treat as always-on but gate behind a single
	// documented flag").
	LegacyStarComment bool
	// WarnOnOverwrite is the overwrite-warning setting (default false). No
	// build step reads it: a `default`-slot simple or complex attribute
	// written more than once is silent last-writer-wins whatever its value.
	WarnOnOverwrite bool
}

// DefaultConfig returns the documented defaults for both open-question
// flags.
func DefaultConfig() ParseConfig {
	return ParseConfig{LegacyStarComment: true, WarnOnOverwrite: false}
}
