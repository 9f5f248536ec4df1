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

import "github.com/bits-and-blooms/bitset"

// andTable, orTable and xorTable are the precomputed 14x14 lookup tables,
// built once at init() from the law-derived CombineOp rule so the runtime
// cost of AND/OR/XOR drops to an O(1) array index (spec.md §4.6: "The
// 14x14 table for AND/OR/XOR is precomputed at compile/init time... to
// make runtime O(1)"). notTable is the corresponding 14-entry table for
// NOT.
var (
	andTable [14][14]State
	orTable  [14][14]State
	xorTable [14][14]State
	notTable [14]State
)

func init() {
	// filled tracks which (i,j) cells have been populated, guarding against
	// accidentally leaving a cell at its zero value (which would silently
	// alias StateL) if a future edit to All skips an index.
	filled := bitset.New(14 * 14)

	for i, a := range All {
		notTable[i] = CombineNot(a)

		for j, b := range All {
			andTable[i][j] = CombineAnd(a, b)
			orTable[i][j] = CombineOr(a, b)
			xorTable[i][j] = CombineXor(a, b)
			filled.Set(uint(i*14 + j))
		}
	}

	if filled.Count() != 14*14 {
		panic("liberty/logic: incomplete 14x14 table construction")
	}
}

func stateIndex(s State) int {
	for i, v := range All {
		if v == s {
			return i
		}
	}

	return 0
}

// LutAnd, LutOr, LutXor and LutNot are the tabulated forms, used
// interchangeably with CombineAnd/CombineOr/CombineXor/CombineNot — a test
// proves they always agree (spec.md §8 property 4).
func LutAnd(a, b State) State { return andTable[stateIndex(a)][stateIndex(b)] }
func LutOr(a, b State) State  { return orTable[stateIndex(a)][stateIndex(b)] }
func LutXor(a, b State) State { return xorTable[stateIndex(a)][stateIndex(b)] }
func LutNot(a State) State    { return notTable[stateIndex(a)] }
