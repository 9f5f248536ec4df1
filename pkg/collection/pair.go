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
package collection

// Pair is a generic two-tuple, used throughout the model for things like
// (bgn, end) logic-state decompositions and (name, value) attribute
// instances.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// NewPair constructs a pair.
func NewPair[A, B any](l A, r B) Pair[A, B] {
	return Pair[A, B]{l, r}
}
