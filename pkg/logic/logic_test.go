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
package logic

import "testing"

func TestLutMatchesCombine_And(t *testing.T) {
	for _, a := range All {
		for _, b := range All {
			if got, want := LutAnd(a, b), CombineAnd(a, b); got != want {
				t.Errorf("AND(%s,%s): lut=%s combine=%s", a, b, got, want)
			}
		}
	}
}

func TestLutMatchesCombine_Or(t *testing.T) {
	for _, a := range All {
		for _, b := range All {
			if got, want := LutOr(a, b), CombineOr(a, b); got != want {
				t.Errorf("OR(%s,%s): lut=%s combine=%s", a, b, got, want)
			}
		}
	}
}

func TestLutMatchesCombine_Xor(t *testing.T) {
	for _, a := range All {
		for _, b := range All {
			if got, want := LutXor(a, b), CombineXor(a, b); got != want {
				t.Errorf("XOR(%s,%s): lut=%s combine=%s", a, b, got, want)
			}
		}
	}
}

func TestLutMatchesCombine_Not(t *testing.T) {
	for _, a := range All {
		if got, want := LutNot(a), CombineNot(a); got != want {
			t.Errorf("NOT(%s): lut=%s combine=%s", a, got, want)
		}
	}
}

func TestStableStatesAreIdempotent(t *testing.T) {
	for _, s := range []State{StateL, StateH, StateX, StateZ} {
		if s.Bgn() != s.End() {
			t.Errorf("%s: expected stable bgn==end", s)
		}
	}
}

func TestAndIsCommutative(t *testing.T) {
	for _, a := range All {
		for _, b := range All {
			if LutAnd(a, b) != LutAnd(b, a) {
				t.Errorf("AND(%s,%s) != AND(%s,%s)", a, b, b, a)
			}
		}
	}
}
